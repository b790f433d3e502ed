package models

// Результаты четырёх вызовов Gemini-фасада. Отсутствующие необязательные
// поля заполняются дефолтами ещё в фасаде — рендеринг не должен падать.

type ResearchResult struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

type Prediction struct {
	Recap           string   `json:"recap"`
	Predictions     []string `json:"predictions"`
	ViabilityRating float64  `json:"viabilityRating"`
	Recommendations []string `json:"recommendations"`
}

type RoadmapPhase struct {
	Name     string   `json:"name"`
	Tasks    []string `json:"tasks"`
	Duration string   `json:"duration"`
}

type Roadmap struct {
	Title          string         `json:"title"`
	Phases         []RoadmapPhase `json:"phases"`
	RiskAssessment string         `json:"riskAssessment"`
}

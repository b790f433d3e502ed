package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"

	"google.golang.org/genai"

	"github.com/sunjoe508/inteligent-munga/internal/models"
)

const (
	defaultResearchModel   = "gemini-3-flash-preview"
	defaultImageModel      = "gemini-2.5-flash-image"
	defaultPredictionModel = "gemini-3-pro-preview"
)

// Client — узкий фасад над Gemini: четыре одиночных вызова без ретраев.
// Loading-state и показ ошибок — ответственность вызывающих экранов.
type Client struct {
	client *genai.Client

	researchModel   string
	imageModel      string
	predictionModel string
}

func NewClient(ctx context.Context, apiKey, researchModel, imageModel, predictionModel string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client init: %w", err)
	}
	if researchModel == "" {
		researchModel = defaultResearchModel
	}
	if imageModel == "" {
		imageModel = defaultImageModel
	}
	if predictionModel == "" {
		predictionModel = defaultPredictionModel
	}
	return &Client{
		client:          client,
		researchModel:   researchModel,
		imageModel:      imageModel,
		predictionModel: predictionModel,
	}, nil
}

// PerformResearch — текстовый ответ с grounding через Google Search.
// Sources может быть пустым; пропущенные поля источников дефолтятся.
func (c *Client) PerformResearch(ctx context.Context, query, systemInstruction string) (*models.ResearchResult, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.researchModel, genai.Text(query),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		})
	if err != nil {
		return nil, fmt.Errorf("research call: %w", err)
	}

	text := resp.Text()
	if text == "" {
		text = "No response generated."
	}
	return &models.ResearchResult{
		Text:    text,
		Sources: extractSources(resp),
	}, nil
}

// GenerateStrategicImage — первая inline-картинка из ответа как data-URL;
// пустая строка, если модель картинку не вернула.
func (c *Client) GenerateStrategicImage(ctx context.Context, prompt string) (string, error) {
	fullPrompt := fmt.Sprintf("High-quality, professional conceptual image for: %s. Cinematic, detailed, corporate style, 16:9.", prompt)
	resp, err := c.client.Models.GenerateContent(ctx, c.imageModel, genai.Text(fullPrompt),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		})
	if err != nil {
		return "", fmt.Errorf("image call: %w", err)
	}
	return extractInlineImage(resp), nil
}

// PredictOutcomes — строго схематизированный JSON. Транспортная ошибка
// уходит наружу, непарсящееся тело — (nil, nil): «прогноза нет».
func (c *Client) PredictOutcomes(ctx context.Context, stats string) (*models.Prediction, error) {
	prompt := fmt.Sprintf("Analyze these statistics and provide a structured recap, predictions, and viability analysis: %s", stats)
	resp, err := c.client.Models.GenerateContent(ctx, c.predictionModel, genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText("You are a world-class data scientist and strategist. Provide data-driven insights.", genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    predictionSchema(),
		})
	if err != nil {
		return nil, fmt.Errorf("prediction call: %w", err)
	}
	return decodePrediction([]byte(resp.Text())), nil
}

// GenerateRoadmap — та же политика деградации, что и у прогнозов.
func (c *Client) GenerateRoadmap(ctx context.Context, objective string) (*models.Roadmap, error) {
	prompt := fmt.Sprintf("Generate a detailed strategic roadmap for: %s", objective)
	resp, err := c.client.Models.GenerateContent(ctx, c.researchModel, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   roadmapSchema(),
		})
	if err != nil {
		return nil, fmt.Errorf("roadmap call: %w", err)
	}
	return decodeRoadmap([]byte(resp.Text())), nil
}

func predictionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recap": {Type: genai.TypeString},
			"predictions": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "A list of predicted outcomes as strings.",
			},
			"viabilityRating": {Type: genai.TypeNumber},
			"recommendations": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "A list of strategic recommendations as strings.",
			},
		},
		Required: []string{"recap", "predictions", "viabilityRating", "recommendations"},
	}
}

func roadmapSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {Type: genai.TypeString},
			"phases": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":     {Type: genai.TypeString},
						"tasks":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"duration": {Type: genai.TypeString},
					},
				},
			},
			"riskAssessment": {Type: genai.TypeString},
		},
	}
}

func extractSources(resp *genai.GenerateContentResponse) []models.Source {
	sources := []models.Source{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return sources
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = "Source"
		}
		uri := chunk.Web.URI
		if uri == "" {
			uri = "#"
		}
		sources = append(sources, models.Source{Title: title, URI: uri})
	}
	return sources
}

func extractInlineImage(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return "data:image/png;base64," + base64.StdEncoding.EncodeToString(part.InlineData.Data)
		}
	}
	return ""
}

func decodePrediction(raw []byte) *models.Prediction {
	var p models.Prediction
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Printf("[gemini][predict] unparseable response: %v", err)
		return nil
	}
	if p.Predictions == nil {
		p.Predictions = []string{}
	}
	if p.Recommendations == nil {
		p.Recommendations = []string{}
	}
	return &p
}

func decodeRoadmap(raw []byte) *models.Roadmap {
	var r models.Roadmap
	if err := json.Unmarshal(raw, &r); err != nil {
		log.Printf("[gemini][roadmap] unparseable response: %v", err)
		return nil
	}
	if r.Phases == nil {
		r.Phases = []models.RoadmapPhase{}
	}
	for i := range r.Phases {
		if r.Phases[i].Tasks == nil {
			r.Phases[i].Tasks = []string{}
		}
	}
	return &r
}

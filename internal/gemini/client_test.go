package gemini

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestDecodePrediction(t *testing.T) {
	p := decodePrediction([]byte(`{"recap":"r","predictions":["a"],"viabilityRating":7.5,"recommendations":["b","c"]}`))
	require.NotNil(t, p)
	assert.Equal(t, "r", p.Recap)
	assert.Equal(t, 7.5, p.ViabilityRating)
	assert.Len(t, p.Recommendations, 2)
}

func TestDecodePredictionDefaultsSlices(t *testing.T) {
	p := decodePrediction([]byte(`{"recap":"r","viabilityRating":1}`))
	require.NotNil(t, p)
	assert.NotNil(t, p.Predictions)
	assert.Empty(t, p.Predictions)
	assert.NotNil(t, p.Recommendations)
}

func TestDecodePredictionMalformed(t *testing.T) {
	assert.Nil(t, decodePrediction([]byte("not json")))
	assert.Nil(t, decodePrediction(nil))
}

func TestDecodeRoadmap(t *testing.T) {
	r := decodeRoadmap([]byte(`{"title":"t","phases":[{"name":"p1","duration":"2w"}],"riskAssessment":"low"}`))
	require.NotNil(t, r)
	assert.Equal(t, "t", r.Title)
	require.Len(t, r.Phases, 1)
	assert.NotNil(t, r.Phases[0].Tasks, "у фазы без задач пустой список, не nil")
	assert.Equal(t, "low", r.RiskAssessment)
}

func TestDecodeRoadmapMalformed(t *testing.T) {
	assert.Nil(t, decodeRoadmap([]byte("{broken")))
}

func TestExtractSources(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			GroundingMetadata: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					{Web: &genai.GroundingChunkWeb{Title: "Feed", URI: "https://example.com"}},
					{Web: &genai.GroundingChunkWeb{}},
					{},
					nil,
				},
			},
		}},
	}

	sources := extractSources(resp)
	require.Len(t, sources, 2)
	assert.Equal(t, "Feed", sources[0].Title)
	assert.Equal(t, "Source", sources[1].Title, "пустой заголовок дефолтится")
	assert.Equal(t, "#", sources[1].URI, "пустой URI дефолтится")
}

func TestExtractSourcesEmpty(t *testing.T) {
	assert.Empty(t, extractSources(nil))
	assert.Empty(t, extractSources(&genai.GenerateContentResponse{}))
	assert.Empty(t, extractSources(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}))
}

func TestExtractInlineImage(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{
					{Text: "caption"},
					{InlineData: &genai.Blob{MIMEType: "image/png", Data: raw}},
				},
			},
		}},
	}

	url := extractInlineImage(resp)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(raw), url)
}

func TestExtractInlineImageAbsent(t *testing.T) {
	assert.Empty(t, extractInlineImage(nil))
	assert.Empty(t, extractInlineImage(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: "only text"}}}}},
	}))
}

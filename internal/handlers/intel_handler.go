package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunjoe508/inteligent-munga/internal/models"
)

const marketInstruction = "You are INTELIGENT MUNGA's Market Analysis Core. Provide sharp, data-driven market insights."

// IntelFacade — полный Gemini-фасад для интеллект-экранов.
type IntelFacade interface {
	PerformResearch(ctx context.Context, query, systemInstruction string) (*models.ResearchResult, error)
	PredictOutcomes(ctx context.Context, stats string) (*models.Prediction, error)
	GenerateRoadmap(ctx context.Context, objective string) (*models.Roadmap, error)
}

// IntelHandler — экраны Market/Analytics/Roadmap. Каждый вызывает фасад
// напрямую, общего состояния между экранами нет; сбой деградирует в
// null-результат, а не в 5xx.
type IntelHandler struct {
	intel IntelFacade
}

func NewIntelHandler(intel IntelFacade) *IntelHandler {
	return &IntelHandler{intel: intel}
}

// @Summary      Market scan
// @Tags         Intel
// @Accept       json
// @Produce      json
// @Param        scan  body      object  true  "prompt"
// @Success      200   {object}  map[string]interface{}
// @Router       /market/scan [post]
func (h *IntelHandler) MarketScan(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.intel.PerformResearch(c.Request.Context(), req.Prompt, marketInstruction)
	if err != nil {
		log.Printf("[intel][market] scan failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"result": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (h *IntelHandler) Predict(c *gin.Context) {
	var req struct {
		Stats string `json:"stats" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prediction, err := h.intel.PredictOutcomes(c.Request.Context(), req.Stats)
	if err != nil {
		log.Printf("[intel][predict] failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"result": nil})
		return
	}
	// nil и при непарсящемся ответе: «прогноза нет»
	c.JSON(http.StatusOK, gin.H{"result": prediction})
}

func (h *IntelHandler) Roadmap(c *gin.Context) {
	var req struct {
		Objective string `json:"objective" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roadmap, err := h.intel.GenerateRoadmap(c.Request.Context(), req.Objective)
	if err != nil {
		log.Printf("[intel][roadmap] failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"result": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": roadmap})
}

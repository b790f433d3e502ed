package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sunjoe508/inteligent-munga/internal/export"
	"github.com/sunjoe508/inteligent-munga/internal/models"
	"github.com/sunjoe508/inteligent-munga/internal/services"
)

type VaultHandler struct {
	vault    services.VaultStore
	exporter *export.Exporter
}

func NewVaultHandler(vault services.VaultStore, exporter *export.Exporter) *VaultHandler {
	return &VaultHandler{vault: vault, exporter: exporter}
}

func (h *VaultHandler) Get(c *gin.Context) {
	doc, err := h.vault.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load vault"})
		return
	}
	if doc == nil {
		doc = &models.VaultDocument{}
	}
	c.JSON(http.StatusOK, gin.H{"vault": doc})
}

func (h *VaultHandler) Put(c *gin.Context) {
	var doc models.VaultDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc.UpdatedAt = time.Now().UnixMilli()
	if err := h.vault.Save(&doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save vault"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vault": doc})
}

type exportRequest struct {
	Format  string `json:"format" binding:"required"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Export — отдаёт содержимое vault (или переданный контент) файлом.
// Имя файла из заголовка, пустой заголовок получает дефолт.
func (h *VaultHandler) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, content := req.Title, req.Content
	if content == "" {
		doc, err := h.vault.Get()
		if err != nil || doc == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to export"})
			return
		}
		content = doc.Content
		if title == "" {
			title = doc.Title
		}
	}

	var (
		payload     []byte
		contentType string
		err         error
	)
	switch req.Format {
	case "txt":
		payload = h.exporter.Text(content)
		contentType = "text/plain"
	case "md":
		payload = h.exporter.Markdown(content)
		contentType = "text/markdown"
	case "pdf":
		payload, err = h.exporter.PDF(content, title)
		contentType = "application/pdf"
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF generation failed"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported export format"})
		return
	}

	filename := export.Filename(title, req.Format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, payload)
}

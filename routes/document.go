package routes

import (
	"net/http"
	"path/filepath"
	"strings"

	"arguecoach/models"

	"github.com/gin-gonic/gin"
)

// AnalyzeDocument accepts a single PDF upload and forwards it to the external
// document-analysis service. Non-PDF selections are rejected before any
// request is issued.
func (sr *SessionRouter) AnalyzeDocument(c *gin.Context) {
	session, ok := sr.session(c)
	if !ok {
		return
	}
	if sr.Analyzer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Document analysis is not configured"})
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A document file is required"})
		return
	}
	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are supported"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	result, err := sr.Analyzer.Analyze(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to analyze document"})
		return
	}

	// The selection is only remembered once it analyzed successfully, and only
	// in document mode.
	if session.Mode() == models.ModeDocument {
		session.SetDocument(fileHeader.Filename)
	}

	c.JSON(http.StatusOK, gin.H{"results": result})
}

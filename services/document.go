package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"arguecoach/models"
)

// DocumentAnalyzer forwards an uploaded PDF to the external document-analysis
// service. Its result conforms to the same ScoreResult shape as training
// scoring so it flows through the same rendering path.
type DocumentAnalyzer struct {
	URL    string
	Client *http.Client
}

func NewDocumentAnalyzer(url string, timeout time.Duration) *DocumentAnalyzer {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &DocumentAnalyzer{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

// Analyze uploads the document and returns its validated scoring result.
func (d *DocumentAnalyzer) Analyze(ctx context.Context, filename string, file io.Reader) (models.ScoreResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return models.ScoreResult{}, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return models.ScoreResult{}, fmt.Errorf("failed to read document: %w", err)
	}
	if err := writer.Close(); err != nil {
		return models.ScoreResult{}, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.URL, &buf)
	if err != nil {
		return models.ScoreResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := d.Client.Do(req)
	if err != nil {
		return models.ScoreResult{}, fmt.Errorf("document analysis request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ScoreResult{}, fmt.Errorf("failed to read analysis response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.ScoreResult{}, fmt.Errorf("document analysis error (%d): %s", resp.StatusCode, string(body))
	}

	return models.ParseScoreResult(body)
}

package pipeline

import (
	"context"

	"github.com/joseph-ayodele/doc-renamer/internal/llm"
	"github.com/joseph-ayodele/doc-renamer/internal/ocr"
)

// PDFTextSource produces raw text for one PDF file.
type PDFTextSource interface {
	PDFText(ctx context.Context, path string) (string, error)
}

// ImageTextSource produces raw text for one screenshot. Which implementation
// runs is chosen by configuration at startup, never per file.
type ImageTextSource interface {
	ImageText(ctx context.Context, path string) (string, error)
}

// OCRTextSource backs both source kinds with local subprocess extraction
// (pdftotext, tesseract).
type OCRTextSource struct {
	Extractor *ocr.Extractor
}

func (s OCRTextSource) PDFText(ctx context.Context, path string) (string, error) {
	res, err := s.Extractor.Extract(ctx, path)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

func (s OCRTextSource) ImageText(ctx context.Context, path string) (string, error) {
	res, err := s.Extractor.Extract(ctx, path)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// VisionTextSource transcribes screenshots through the vision-capable model
// instead of local OCR.
type VisionTextSource struct {
	Transcriber llm.ImageTranscriber
}

func (s VisionTextSource) ImageText(ctx context.Context, path string) (string, error) {
	return s.Transcriber.TranscribeImage(ctx, path)
}

package llm

import (
	"context"

	"github.com/joseph-ayodele/doc-renamer/internal/metadata"
)

// BibliographicExtractor turns PDF text into a populated BibliographicInfo.
// The raw JSON emitted by the model is returned alongside for journaling.
type BibliographicExtractor interface {
	ExtractBibliographic(ctx context.Context, text string) (metadata.BibliographicInfo, []byte, error)
}

// ScreenshotExtractor turns screenshot text into a populated ScreenshotInfo.
type ScreenshotExtractor interface {
	ExtractScreenshot(ctx context.Context, text string) (metadata.ScreenshotInfo, []byte, error)
}

// ImageTranscriber reads the visible text off a raster image. It is the
// vision-mode alternative to local tesseract OCR; which one runs is a
// configuration choice, not a per-file decision.
type ImageTranscriber interface {
	TranscribeImage(ctx context.Context, path string) (string, error)
}

package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/joseph-ayodele/doc-renamer/constants"
)

func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	text, pages, warns, err := e.pdfToText(ctx, path)
	if err != nil {
		return ExtractionResult{SourceType: constants.PDF, Warnings: warns}, err
	}
	text = Normalize(text)
	if strings.TrimSpace(text) == "" {
		return ExtractionResult{SourceType: constants.PDF, Pages: pages, Warnings: warns},
			fmt.Errorf("no text extracted from %d page(s)", pages)
	}
	return ExtractionResult{
		Text:       text,
		Pages:      pages,
		SourceType: constants.PDF,
		Method:     "pdf-text",
		Warnings:   warns,
	}, nil
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	// pdftotext -f 1 -l <max> -layout -enc UTF-8 -eol unix <path> -
	args := []string{
		"-f", "1", "-l", fmt.Sprintf("%d", e.cfg.MaxPages),
		"-layout", "-enc", "UTF-8", "-eol", "unix",
		path, "-",
	}
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, args...)
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}
	text = string(out)
	// A form-feed \f is used as page separator by default
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil, nil
}

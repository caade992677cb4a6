package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/joseph-ayodele/doc-renamer/internal/common"
	"github.com/joseph-ayodele/doc-renamer/internal/export"
	"github.com/joseph-ayodele/doc-renamer/internal/history"
	"github.com/joseph-ayodele/doc-renamer/internal/llm/anthropic"
	"github.com/joseph-ayodele/doc-renamer/internal/metadata"
	"github.com/joseph-ayodele/doc-renamer/internal/ocr"
	"github.com/joseph-ayodele/doc-renamer/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func usage() {
	printError("Usage: doc-renamer <directory> [flags]\n\n")
	flag.PrintDefaults()
}

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	var (
		output       = flag.String("output", "", "output directory for renamed files (default: input directory)")
		dryRun       = flag.Bool("dry-run", false, "show what would be done without touching the filesystem")
		move         = flag.Bool("move", false, "remove the source file after successful placement")
		recursive    = flag.Bool("recursive", false, "descend into subdirectories")
		pdfTemplate  = flag.String("pdf-template", "", "PDF filename template (overrides PDF_FILENAME_TEMPLATE)")
		shotTemplate = flag.String("screenshot-template", "", "screenshot filename template (overrides SCREENSHOT_FILENAME_TEMPLATE)")
		ocrMethod    = flag.String("ocr-method", "", "screenshot text source: tesseract or claude (overrides OCR_METHOD)")
		reportPath   = flag.String("report", "", "write an XLSX run report to this path")
		journalPath  = flag.String("journal", "", "append outcomes to this SQLite journal (overrides JOURNAL_PATH)")
		verbose      = flag.Bool("verbose", false, "debug logging")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	inputDir := flag.Arg(0)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *pdfTemplate != "" {
		cfg.Renaming.PDFTemplate = *pdfTemplate
	}
	if *shotTemplate != "" {
		cfg.Renaming.ScreenshotTemplate = *shotTemplate
	}
	if *ocrMethod != "" {
		cfg.OCR.Method = *ocrMethod
	}
	if *journalPath != "" {
		cfg.Journal.Path = *journalPath
	}

	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if err := metadata.ValidatePDFTemplate(cfg.Renaming.PDFTemplate); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	if err := metadata.ValidateScreenshotTemplate(cfg.Renaming.ScreenshotTemplate); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	client := anthropic.NewClient(anthropic.Config{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:   cfg.OCR.Pdftotext,
		Tesseract:   cfg.OCR.Tesseract,
		TessdataDir: cfg.OCR.TessdataDir,
		MaxPages:    cfg.OCR.MaxPages,
	}, logger)

	ocrSource := pipeline.OCRTextSource{Extractor: extractor}
	var imgSource pipeline.ImageTextSource = ocrSource
	if cfg.OCR.Method == "claude" {
		imgSource = pipeline.VisionTextSource{Transcriber: client}
	}
	logger.Info("screenshot text source selected", "method", cfg.OCR.Method)

	processor := pipeline.NewProcessor(logger, ocrSource, imgSource, client, client,
		os.Stdout, pipeline.Options{
			OutputDir:          *output,
			PDFTemplate:        cfg.Renaming.PDFTemplate,
			ScreenshotTemplate: cfg.Renaming.ScreenshotTemplate,
			DryRun:             *dryRun,
			Move:               *move,
			Recursive:          *recursive,
		})

	if cfg.Journal.Path != "" {
		journal, err := history.Open(cfg.Journal.Path, logger)
		if err != nil {
			printError("Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = journal.Close() }()
		processor.SetJournal(journal)
	}

	summary, err := processor.Run(ctx, inputDir)
	if err != nil {
		logger.Error("run failed", "error", err)
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	if *reportPath != "" {
		xlsx, err := export.RunReportXLSX(summary, logger)
		if err != nil {
			logger.Error("report generation failed", "error", err)
			printError("Error: failed to write report: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*reportPath, xlsx, 0o644); err != nil {
			printError("Error: failed to write report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", *reportPath)
	}

	// Per-file skips are normal partial success, not a failed run.
	fmt.Printf("Processing complete: %d placed, %d skipped\n",
		summary.Placed, summary.SkippedTotal())
}

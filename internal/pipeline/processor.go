// Package pipeline drives discovered files through extraction, rendering,
// collision resolution and placement, one file at a time.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/doc-renamer/constants"
	"github.com/joseph-ayodele/doc-renamer/internal/common"
	"github.com/joseph-ayodele/doc-renamer/internal/history"
	"github.com/joseph-ayodele/doc-renamer/internal/ingest"
	"github.com/joseph-ayodele/doc-renamer/internal/llm"
	"github.com/joseph-ayodele/doc-renamer/internal/metadata"
)

// Options configure one batch run.
type Options struct {
	OutputDir          string // empty -> the input directory
	PDFTemplate        string
	ScreenshotTemplate string
	DryRun             bool
	Move               bool // remove the source after successful placement
	Recursive          bool
}

// Processor coordinates text extraction, structured extraction, filename
// rendering and placement for a whole directory.
type Processor struct {
	logger  *slog.Logger
	pdfText PDFTextSource
	imgText ImageTextSource
	bib     llm.BibliographicExtractor
	shot    llm.ScreenshotExtractor
	journal *history.Journal
	out     io.Writer
	opts    Options
}

func NewProcessor(logger *slog.Logger, pdfText PDFTextSource, imgText ImageTextSource,
	bib llm.BibliographicExtractor, shot llm.ScreenshotExtractor,
	progress io.Writer, opts Options) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Processor{
		logger:  logger,
		pdfText: pdfText,
		imgText: imgText,
		bib:     bib,
		shot:    shot,
		out:     progress,
		opts:    opts,
	}
}

// SetJournal attaches the optional run journal. Journal rows are skipped in
// dry-run mode; dry runs perform no filesystem mutation at all.
func (p *Processor) SetJournal(j *history.Journal) { p.journal = j }

// Run processes every candidate file under inputDir: the PDF batch first,
// then the screenshot batch, each in lexicographic order. Per-file failures
// skip the file and continue; only configuration-class errors abort.
func (p *Processor) Run(ctx context.Context, inputDir string) (*Summary, error) {
	if err := metadata.ValidatePDFTemplate(p.opts.PDFTemplate); err != nil {
		return nil, err
	}
	if err := metadata.ValidateScreenshotTemplate(p.opts.ScreenshotTemplate); err != nil {
		return nil, err
	}

	outputDir := p.opts.OutputDir
	if outputDir == "" {
		outputDir = inputDir
	}
	if !p.opts.DryRun {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return nil, common.ConfigError("cannot create output directory "+outputDir, err)
		}
	}

	pdfs, images, stats, err := ingest.DiscoverFiles(inputDir, p.opts.Recursive)
	if err != nil {
		return nil, err
	}

	summary := &Summary{RunID: uuid.New(), DryRun: p.opts.DryRun}
	p.logger.Info("pipeline.run.start",
		"run_id", summary.RunID,
		"input_dir", inputDir,
		"output_dir", outputDir,
		"pdfs", stats.PDFs,
		"images", stats.Images,
		"ignored", stats.Ignored,
		"dry_run", p.opts.DryRun,
	)
	fmt.Fprintf(p.out, "Found %d PDF file(s) and %d screenshot(s) in %s\n",
		len(pdfs), len(images), inputDir)

	registry := NewNameRegistry(outputDir)

	for _, path := range pdfs {
		o, err := p.processPDF(ctx, path, outputDir, registry)
		if err != nil {
			return summary, err
		}
		p.finish(ctx, summary, o)
	}
	for _, path := range images {
		o, err := p.processImage(ctx, path, outputDir, registry)
		if err != nil {
			return summary, err
		}
		p.finish(ctx, summary, o)
	}

	p.logger.Info("pipeline.run.done",
		"run_id", summary.RunID,
		"placed", summary.Placed,
		"skipped", summary.SkippedTotal(),
	)
	p.printSummary(summary)
	return summary, nil
}

func (p *Processor) processPDF(ctx context.Context, path, outputDir string, reg *NameRegistry) (Outcome, error) {
	o := Outcome{Source: path, Format: constants.PDF}
	fmt.Fprintf(p.out, "Processing: %s\n", filepath.Base(path))

	text, err := p.pdfText.PDFText(ctx, path)
	if err != nil {
		return p.skip(o, constants.ReasonExtractionFailed, err), nil
	}

	info, _, err := p.bib.ExtractBibliographic(ctx, text)
	if err != nil {
		return p.skip(o, constants.ReasonAIExtractionFailed, err), nil
	}

	name, err := info.Render(p.opts.PDFTemplate)
	if err != nil {
		return o, err // unknown template variable: configuration error, abort
	}

	o.Fields = fmt.Sprintf("%s | %s | %s",
		info.AuthorOrEditor(), yearOrUnknown(info.Year), info.Title)
	fmt.Fprintf(p.out, "  Author/Editor: %s\n", info.AuthorOrEditor())
	fmt.Fprintf(p.out, "  Year: %s\n", yearOrUnknown(info.Year))
	fmt.Fprintf(p.out, "  Title: %s\n", info.Title)

	return p.place(o, path, name, outputDir, reg), nil
}

func (p *Processor) processImage(ctx context.Context, path, outputDir string, reg *NameRegistry) (Outcome, error) {
	o := Outcome{Source: path, Format: constants.IMAGE}
	fmt.Fprintf(p.out, "Processing: %s\n", filepath.Base(path))

	text, err := p.imgText.ImageText(ctx, path)
	if err != nil {
		return p.skip(o, constants.ReasonExtractionFailed, err), nil
	}

	info, _, err := p.shot.ExtractScreenshot(ctx, text)
	if err != nil {
		return p.skip(o, constants.ReasonAIExtractionFailed, err), nil
	}

	name, err := info.Render(p.opts.ScreenshotTemplate)
	if err != nil {
		return o, err
	}

	app := info.Application
	if app == "" {
		app = metadata.UnknownSentinel
	}
	o.Fields = fmt.Sprintf("%s | %s | %s", app, info.DateTime(), info.MainSubject)
	fmt.Fprintf(p.out, "  Application: %s\n", app)
	fmt.Fprintf(p.out, "  Date/Time: %s\n", info.DateTime())
	fmt.Fprintf(p.out, "  Subject: %s\n", info.MainSubject)

	return p.place(o, path, name, outputDir, reg), nil
}

// place resolves collisions, reserves the destination name, and copies or
// moves the file (or records the planned path in dry-run).
func (p *Processor) place(o Outcome, src, rendered, outputDir string, reg *NameRegistry) Outcome {
	final := metadata.Finalize(rendered, filepath.Ext(src))
	resolved := reg.Reserve(final)
	dest := filepath.Join(outputDir, resolved)

	o.NewName = resolved
	o.DestPath = dest
	fmt.Fprintf(p.out, "  New filename: %s\n", resolved)

	if p.opts.DryRun {
		o.Status = constants.StatusPlaced
		fmt.Fprintf(p.out, "  [DRY RUN] Would copy to: %s\n", dest)
		p.logger.Info("pipeline.place.planned", "source", src, "dest", dest)
		return o
	}

	if err := placeFile(src, dest, p.opts.Move); err != nil {
		return p.skip(o, constants.ReasonFilesystemError, err)
	}
	o.Status = constants.StatusPlaced
	action := "Copied"
	if p.opts.Move {
		action = "Moved"
	}
	fmt.Fprintf(p.out, "  %s to: %s\n", action, dest)
	p.logger.Info("pipeline.place.ok", "source", src, "dest", dest, "moved", p.opts.Move)
	return o
}

func (p *Processor) skip(o Outcome, reason constants.SkipReason, err error) Outcome {
	o.Status = constants.StatusSkipped
	o.Reason = reason
	o.Detail = err.Error()
	fmt.Fprintf(p.out, "  Skipped (%s): %v\n", reason, err)
	p.logger.Error("pipeline.file.skipped", "source", o.Source, "reason", reason, "error", err)
	return o
}

func (p *Processor) finish(ctx context.Context, summary *Summary, o Outcome) {
	summary.record(o)
	if p.journal == nil || p.opts.DryRun {
		return
	}
	if err := p.journal.Record(ctx, summary.RunID, o); err != nil {
		p.logger.Warn("pipeline.journal.write_failed", "source", o.Source, "error", err)
	}
}

func (p *Processor) printSummary(s *Summary) {
	fmt.Fprintf(p.out, "\nProcessed: %d placed, %d skipped\n", s.Placed, s.SkippedTotal())
	for reason, n := range s.Skipped {
		fmt.Fprintf(p.out, "  %s: %d\n", reason, n)
	}
}

func yearOrUnknown(year string) string {
	if year == "" {
		return metadata.UnknownSentinel
	}
	return year
}

package pipeline

import (
	"github.com/google/uuid"

	"github.com/joseph-ayodele/doc-renamer/constants"
)

// Outcome is the terminal record for one discovered file.
type Outcome struct {
	Source   string
	Format   constants.Format
	Status   constants.FileStatus
	Reason   constants.SkipReason // set when Status is SKIPPED
	Detail   string               // failure detail for reporting
	NewName  string               // resolved filename (collision suffix included)
	DestPath string               // full destination path (planned, in dry-run)
	Fields   string               // short human-readable extracted-field summary
}

// JournalRow satisfies history.Recordable.
func (o Outcome) JournalRow() (sourcePath, format, status, reason, newName, destPath string) {
	return o.Source, string(o.Format), string(o.Status), string(o.Reason), o.NewName, o.DestPath
}

// Summary aggregates one batch run. Outcomes preserve processing order:
// the PDF batch first, then the screenshot batch.
type Summary struct {
	RunID    uuid.UUID
	DryRun   bool
	Outcomes []Outcome
	Placed   int
	Skipped  map[constants.SkipReason]int
}

func (s *Summary) record(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	switch o.Status {
	case constants.StatusPlaced:
		s.Placed++
	case constants.StatusSkipped:
		if s.Skipped == nil {
			s.Skipped = make(map[constants.SkipReason]int)
		}
		s.Skipped[o.Reason]++
	}
}

// SkippedTotal sums the per-reason skip counts.
func (s *Summary) SkippedTotal() int {
	total := 0
	for _, n := range s.Skipped {
		total += n
	}
	return total
}

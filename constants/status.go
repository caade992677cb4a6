package constants

// FileStatus is the terminal state of one file within a batch run.
type FileStatus string

// Stable values (journal rows and reports store these exact strings).
const (
	StatusPlaced  FileStatus = "PLACED"  // renamed copy written (or planned, in dry-run)
	StatusSkipped FileStatus = "SKIPPED" // pipeline gave up on the file; batch continues
)

// SkipReason says which stage rejected a file.
type SkipReason string

const (
	ReasonExtractionFailed   SkipReason = "EXTRACTION_FAILED"
	ReasonAIExtractionFailed SkipReason = "AI_EXTRACTION_FAILED"
	ReasonFilesystemError    SkipReason = "FS_ERROR"
)

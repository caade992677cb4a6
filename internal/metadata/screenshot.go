package metadata

// ScreenshotContentTypes is the open classification vocabulary suggested to
// the model; values outside it are kept as-is.
var ScreenshotContentTypes = []string{
	"email", "chat", "error", "website", "document", "terminal", "other",
}

// ScreenshotInfo is the structured result of classifying a screenshot.
// Empty string means the field was absent.
type ScreenshotInfo struct {
	Application string `json:"application,omitempty"`
	Date        string `json:"date,omitempty"` // YYYY-MM-DD
	Time        string `json:"time,omitempty"` // HH:MM, 24h
	ContentType string `json:"content_type,omitempty"`
	MainSubject string `json:"main_subject"`
}

// DateTime combines date and time when both are present, degrades to
// whichever one exists, and falls back to the Unknown-Date sentinel.
func (s ScreenshotInfo) DateTime() string {
	switch {
	case s.Date != "" && s.Time != "":
		return s.Date + " " + s.Time
	case s.Date != "":
		return s.Date
	case s.Time != "":
		return s.Time
	default:
		return UnknownDateSentinel
	}
}

// Render substitutes the screenshot variable vocabulary into template.
func (s ScreenshotInfo) Render(template string) (string, error) {
	return render(template, map[string]string{
		"application":  clean(orSentinel(s.Application, UnknownSentinel)),
		"date":         clean(orSentinel(s.Date, UnknownDateSentinel)),
		"time":         clean(s.Time),
		"datetime":     clean(s.DateTime()),
		"content_type": clean(orSentinel(s.ContentType, "Screenshot")),
		"main_subject": clean(s.MainSubject),
	})
}

package metadata

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/joseph-ayodele/doc-renamer/internal/common"
)

var rePlaceholder = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// render substitutes every {variable} occurrence from vars. A placeholder
// outside the model's vocabulary is a configuration error, not a silent
// no-op; the caller gets CONFIG_ERROR and no partial output.
func render(template string, vars map[string]string) (string, error) {
	var unknown []string
	out := rePlaceholder.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := vars[name]
		if !ok {
			unknown = append(unknown, name)
			return m
		}
		return v
	})
	if len(unknown) > 0 {
		return "", common.ConfigError(
			fmt.Sprintf("unknown template variable(s): %s", strings.Join(unknown, ", ")),
			common.ErrUnknownVariable)
	}
	return tidy(out), nil
}

// ValidatePDFTemplate rejects templates referencing variables outside the
// bibliographic vocabulary. Run before processing starts.
func ValidatePDFTemplate(template string) error {
	_, err := (BibliographicInfo{Title: "x"}).Render(template)
	return err
}

// ValidateScreenshotTemplate is the screenshot counterpart of
// ValidatePDFTemplate.
func ValidateScreenshotTemplate(template string) error {
	_, err := (ScreenshotInfo{MainSubject: "x"}).Render(template)
	return err
}

package metadata

import (
	"strings"
	"unicode/utf8"

	"github.com/joseph-ayodele/doc-renamer/constants"
)

const (
	// MaxFilenameBytes is the whole-filename ceiling shared by the common
	// filesystems (ext4, APFS, NTFS all cap the name component at 255 bytes).
	MaxFilenameBytes = 255

	// FallbackStem replaces a stem that sanitization or truncation emptied out.
	FallbackStem = "untitled"

	// maxFieldLen caps a single substituted field so one runaway value cannot
	// consume the entire filename length on its own.
	maxFieldLen = 200
)

// clean makes a single field value safe for use inside a filename:
// illegal characters and control bytes are stripped, whitespace runs are
// collapsed, and overlong values are clipped at a word boundary.
func clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			// dropped, never replaced with a substitute character
		default:
			if r < 0x20 || r == 0x7f {
				continue
			}
			b.WriteRune(r)
		}
	}
	text = strings.Join(strings.Fields(b.String()), " ")
	if len(text) > maxFieldLen {
		clipped := text[:maxFieldLen]
		if i := strings.LastIndex(clipped, " "); i > 0 {
			clipped = clipped[:i]
		}
		text = clipped + "..."
	}
	return strings.TrimSpace(text)
}

// tidy is the whole-filename pass after substitution: collapse whitespace
// introduced between fields and trim leading/trailing whitespace and dots.
func tidy(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	return strings.Trim(name, " .")
}

// Finalize enforces the source file's extension and the filesystem length
// ceiling on a rendered name. The extension is normalized to lowercase and
// appended unless the template already ends with it; truncation preserves
// the extension and never cuts inside a UTF-8 sequence. An empty stem
// (pathological template or aggressive truncation) falls back to a fixed
// placeholder so the result is always a usable filename.
func Finalize(name, srcExt string) string {
	suffix := ""
	if e := constants.NormalizeExt(srcExt); e != "" {
		suffix = "." + e
		if strings.HasSuffix(strings.ToLower(name), suffix) {
			name = name[:len(name)-len(suffix)]
		}
	}

	stem := strings.Trim(name, " .")
	maxStem := MaxFilenameBytes - len(suffix)
	if len(stem) > maxStem {
		stem = stem[:maxStem]
		for len(stem) > 0 && !utf8.ValidString(stem) {
			stem = stem[:len(stem)-1]
		}
		stem = strings.Trim(stem, " .")
	}
	if stem == "" {
		stem = FallbackStem
	}
	return stem + suffix
}

package metadata

import "strings"

// surname particles that travel with the rightmost token ("van Gogh",
// "de la Cruz"). Matching is a best-effort heuristic, not a name parser.
var surnameParticles = map[string]struct{}{
	"van": {}, "von": {}, "de": {}, "da": {}, "del": {}, "della": {},
	"der": {}, "den": {}, "di": {}, "du": {}, "la": {}, "le": {},
	"ter": {}, "ten": {}, "st.": {}, "mac": {},
}

// LastName extracts a best-effort surname from a full name: the rightmost
// whitespace-delimited token, pulling in leading lowercase particles so
// "Vincent van Gogh" yields "van Gogh". Apostrophe surnames ("O'Brien")
// are single tokens and pass through unchanged. Returns "" for "".
func LastName(full string) string {
	fields := strings.Fields(strings.TrimSpace(full))
	if len(fields) == 0 {
		return ""
	}
	i := len(fields) - 1
	for i > 0 {
		if _, ok := surnameParticles[strings.ToLower(fields[i-1])]; !ok {
			break
		}
		i--
	}
	return strings.Join(fields[i:], " ")
}

// formatLastNames renders a separator-delimited list of last names as up to
// three comma-separated names, with "et al" once the list is longer.
func formatLastNames(nameString string) string {
	if strings.TrimSpace(nameString) == "" {
		return UnknownSentinel
	}

	names := []string{nameString}
	for _, sep := range []string{" and ", ", ", " & ", ";"} {
		var split []string
		for _, name := range names {
			for _, part := range strings.Split(name, sep) {
				if p := strings.TrimSpace(part); p != "" {
					split = append(split, p)
				}
			}
		}
		names = split
	}

	seen := make(map[string]struct{}, len(names))
	unique := names[:0]
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}

	switch {
	case len(unique) == 0:
		return UnknownSentinel
	case len(unique) <= 3:
		return strings.Join(unique, ", ")
	default:
		return strings.Join(unique[:3], ", ") + " et al"
	}
}

// Package textutils normalizes free-form model replies before they are
// parsed as structured data.
package textutils

import "strings"

// StripCodeFence removes Markdown code-fence wrappers (``` or ```json) and
// surrounding whitespace from a model reply. Models regularly ignore the
// "no fences" instruction, so the extractor never trusts the raw text.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			// Single-line fence with no content to keep.
			return strings.TrimSpace(strings.Trim(s, "`"))
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}

// ExtractJSONObject returns the substring between the first '{' and the
// last '}' when stray prose surrounds the JSON payload. If no braces are
// found the input is returned unchanged and left to the JSON parser to
// reject.
func ExtractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return s
	}
	return strings.TrimSpace(s[start : end+1])
}

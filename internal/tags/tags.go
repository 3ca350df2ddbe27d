// Package tags converts between the comma-delimited tag string stored on a
// feedback row and the ordered tag list used for filtering and display.
package tags

import "strings"

// Known tag ids and their display labels. The vocabulary is closed; ids
// outside it still round-trip through Decode/Encode but render as UnknownLabel.
const (
	Communication = "communication"
	Quality       = "quality"
	Punctuality   = "punctuality"
	Value         = "value"
	Support       = "support"
)

// UnknownLabel is the display label for ids outside the vocabulary.
const UnknownLabel = "Unknown Tag"

var labels = map[string]string{
	Communication: "Communication",
	Quality:       "Quality",
	Punctuality:   "Punctuality",
	Value:         "Value for Money",
	Support:       "Support",
}

// Vocabulary returns the known tag ids in display order.
func Vocabulary() []string {
	return []string{Communication, Quality, Punctuality, Value, Support}
}

// Label returns the display label for a tag id, or UnknownLabel for ids
// outside the vocabulary. Matching is case-insensitive.
func Label(id string) string {
	if l, ok := labels[strings.ToLower(id)]; ok {
		return l
	}
	return UnknownLabel
}

// Decode splits a stored tag string into its ordered tag ids. Segments are
// trimmed and empty segments dropped, so "" and strings of bare commas decode
// to an empty list. Decode never fails.
func Decode(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	decoded := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			decoded = append(decoded, t)
		}
	}
	return decoded
}

// Encode joins an ordered tag list into the stored comma-delimited form.
// An empty list encodes to the empty string.
func Encode(ids []string) string {
	return strings.Join(ids, ",")
}

// Contains reports whether the stored tag string includes the given tag id.
func Contains(raw, id string) bool {
	for _, t := range Decode(raw) {
		if t == id {
			return true
		}
	}
	return false
}

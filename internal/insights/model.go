package insights

import "strings"

// Insight is one market prediction that survived boundary validation.
// Until a raw candidate passes the validator it must not be treated as
// structurally sound or on-topic.
type Insight struct {
	Event      string   `json:"event"`
	Type       string   `json:"type"`
	Surge      string   `json:"surge"`
	Categories []string `json:"categories"`
	Insight    string   `json:"insight"`
}

// blob flattens the fields the boundary rules inspect into one lowercase
// string. Missing fields contribute nothing.
func (i Insight) blob() string {
	parts := []string{i.Type, i.Event, i.Insight}
	parts = append(parts, i.Categories...)
	return strings.ToLower(strings.Join(parts, " "))
}

package skillset

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse decodes the stored text form, a JSON array of strings.
// Empty input yields an empty set.
func Parse(text string) (Set, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == "null" {
		return New(), nil
	}
	var names []string
	if err := json.Unmarshal([]byte(text), &names); err != nil {
		return New(), fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return New(names...), nil
}

// Decode is Parse for batch reads: a bad record becomes an empty set.
func Decode(text *string) (Set, bool) {
	if text == nil {
		return New(), true
	}
	s, err := Parse(*text)
	if err != nil {
		return New(), false
	}
	return s, true
}

func Encode(s Set) string {
	b, err := json.Marshal(s.Names())
	if err != nil {
		return "[]"
	}
	return string(b)
}

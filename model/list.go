package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StringList decodes either a JSON array of strings or a single
// comma-separated string. The API is not consistent between endpoints.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("failed to decode string list: %w", err)
	}
	*l = SplitList(joined)
	return nil
}

// Join renders the list the way the edit forms show it.
func (l StringList) Join() string {
	return strings.Join(l, ", ")
}

// SplitList splits a comma-separated value, dropping empty entries.
func SplitList(s string) StringList {
	var out StringList
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

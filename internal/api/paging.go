package api

import (
	"bytes"
	"encoding/json"
)

// Page decodes list endpoints that return either a bare JSON array or
// the paginated envelope {results, count, next, previous}.
type Page[T any] struct {
	Results  []T    `json:"results"`
	Count    int    `json:"count"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
}

func (p *Page[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &p.Results); err != nil {
			return err
		}
		p.Count = len(p.Results)
		p.Next = ""
		p.Previous = ""
		return nil
	}

	type envelope Page[T]
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return err
	}
	*p = Page[T](env)
	return nil
}

// HasNext reports whether another page is available.
func (p *Page[T]) HasNext() bool { return p.Next != "" }

package types

import (
	"encoding/json"
	"math"
)

// Payload is a decoded upstream JSON object, either a single resource or a
// collection envelope with a results list.
type Payload map[string]any

// Results returns the collection results if the payload is an envelope.
func (p Payload) Results() ([]Payload, bool) {
	raw, ok := p["results"].([]any)
	if !ok {
		return nil, false
	}

	results := make([]Payload, 0, len(raw))
	for _, r := range raw {
		if m, ok := r.(map[string]any); ok {
			results = append(results, Payload(m))
		}
	}

	return results, true
}

func (p Payload) String(key string) string {
	s, _ := p[key].(string)
	return s
}

func (p Payload) Strings(key string) []string {
	raw, ok := p[key].([]any)
	if !ok {
		return []string{}
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}

	return values
}

// Int returns nil unless the value is present and integral.
func (p Payload) Int(key string) *int {
	switch v := p[key].(type) {
	case float64:
		if v == math.Trunc(v) {
			i := int(v)
			return &i
		}
	case json.Number:
		if i, err := v.Int64(); err == nil {
			n := int(i)
			return &n
		}
	case int:
		return &v
	}

	return nil
}

// Ref is a relationship element. It either references a related resource by
// its URL or holds the resolved, flat record of that resource.
type Ref[R any] struct {
	url    string
	record *R
}

func Reference[R any](url string) Ref[R] {
	return Ref[R]{url: url}
}

func Resolved[R any](record R) Ref[R] {
	return Ref[R]{record: &record}
}

func (r Ref[R]) URL() string {
	return r.url
}

func (r Ref[R]) Record() (R, bool) {
	if r.record == nil {
		var zero R
		return zero, false
	}
	return *r.record, true
}

func (r Ref[R]) IsResolved() bool {
	return r.record != nil
}

func (r Ref[R]) MarshalJSON() ([]byte, error) {
	if r.record != nil {
		return json.Marshal(r.record)
	}
	return json.Marshal(r.url)
}

// References wraps every url in a reference, keeping the original order.
func References[R any](urls []string) []Ref[R] {
	refs := make([]Ref[R], len(urls))
	for i, u := range urls {
		refs[i] = Reference[R](u)
	}
	return refs
}

// OptionalReference returns nil for an empty url.
func OptionalReference[R any](url string) *Ref[R] {
	if url == "" {
		return nil
	}
	ref := Reference[R](url)
	return &ref
}

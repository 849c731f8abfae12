package admin

import (
	"bytes"
	"encoding/json"
	"errors"
)

// NormalizeCollection extracts a list of T from the envelopes the backend
// has used over time, trying in order:
//
//  1. {"<key>": [...]}
//  2. [...]
//  3. {"data": [...]}
//  4. {"data": {"<key>": [...]}}
//
// Items that are not JSON objects are skipped. An object with a field of the
// wrong type is kept with that field left at its zero value. Anything else
// yields an empty, non-nil slice.
func NormalizeCollection[T any](raw json.RawMessage, key string) []T {
	items, ok := firstArray(raw, key)
	out := make([]T, 0, len(items))
	if !ok {
		return out
	}
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			continue
		}
		var v T
		var te *json.UnmarshalTypeError
		if err := json.Unmarshal(item, &v); err != nil && !errors.As(err, &te) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func firstArray(raw json.RawMessage, key string) ([]json.RawMessage, bool) {
	paths := [][]string{{key}, {}, {"data"}, {"data", key}}
	for _, p := range paths {
		if items, ok := arrayAt(raw, p...); ok {
			return items, true
		}
	}
	return nil, false
}

// arrayAt walks object keys and reports whether the final value is an array.
func arrayAt(raw json.RawMessage, path ...string) ([]json.RawMessage, bool) {
	cur := bytes.TrimSpace(raw)
	for _, k := range path {
		if len(cur) == 0 || cur[0] != '{' {
			return nil, false
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(cur, &obj); err != nil {
			return nil, false
		}
		next, ok := obj[k]
		if !ok {
			return nil, false
		}
		cur = bytes.TrimSpace(next)
	}
	if len(cur) == 0 || cur[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(cur, &items); err != nil {
		return nil, false
	}
	return items, true
}

package guard

import (
	"encoding/json"
)

// Optional is a field of a partial update payload.
//
// A JSON key that is absent leaves Set false. A present key sets Set, and a
// literal null additionally sets Null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) Blank() bool {
	return !o.Set || o.Null || isBlank(o.Value)
}

// Entry is one named Optional, erased to any.
type Entry struct {
	Key   string
	Set   bool
	Null  bool
	Value any
}

func Pick[T any](key string, o Optional[T]) Entry {
	e := Entry{Key: key, Set: o.Set, Null: o.Null}
	if o.Set && !o.Null {
		e.Value = o.Value
	}
	return e
}

// PickDefined returns the entries that were set in the payload. Explicit
// nulls are kept with a nil value; absent keys are dropped.
func PickDefined(entries ...Entry) map[string]any {
	out := make(map[string]any, len(entries))
	for _, e := range entries {
		if e.Set {
			out[e.Key] = e.Value
		}
	}
	return out
}

// NotNull fails with 400 when any entry was set to an explicit null.
func NotNull(message string, entries ...Entry) error {
	for _, e := range entries {
		if e.Set && e.Null {
			return BadRequest(message)
		}
	}
	return nil
}

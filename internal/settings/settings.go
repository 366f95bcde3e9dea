// Package settings holds the answers of one wizard run and the collector
// that gathers them.
package settings

import "strings"

// Value is one resolved answer.
type Value struct {
	// Text is the free-text answer or the chosen option label.
	Text string
	// Index is the chosen option index, -1 when the answer is free text
	// or was stored by label.
	Index int
}

func TextValue(s string) Value {
	return Value{Text: s, Index: -1}
}

func ChoiceValue(index int, label string) Value {
	return Value{Text: label, Index: index}
}

// Settings maps setting keys to answers and remembers insertion order.
type Settings struct {
	values map[string]Value
	keys   []string
}

func New() Settings {
	return Settings{values: map[string]Value{}}
}

func (s *Settings) Set(key string, v Value) {
	if s.values == nil {
		s.values = map[string]Value{}
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

func (s Settings) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s Settings) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the keys in the order they were first set.
func (s Settings) Keys() []string {
	return append([]string(nil), s.keys...)
}

func (s Settings) Text(key string) (string, bool) {
	v, ok := s.values[key]
	return v.Text, ok
}

// Flag reads a Yes/No choice: option 0 ("Yes") is true.
// ok is false when the key is absent or was not answered by index.
func (s Settings) Flag(key string) (on bool, ok bool) {
	v, found := s.values[key]
	if !found || v.Index < 0 {
		return false, false
	}
	return v.Index == 0, true
}

// Is reports whether key holds label, ignoring case.
func (s Settings) Is(key, label string) bool {
	v, ok := s.values[key]
	return ok && strings.EqualFold(v.Text, label)
}


package formstate

import (
	"fmt"
	"strings"
	"sync"
)

// FormFields lists the thirteen measurements collected by the prediction form
// in display order.
var FormFields = []string{
	"age", "sex", "cp", "trestbps", "chol", "fbs", "restecg",
	"thalach", "exang", "oldpeak", "slope", "ca", "thal",
}

// ChangeFunc observes a single field mutation.
type ChangeFunc func(name, value string)

// State holds the live value of every form field keyed by name. The key set is
// fixed at construction: SetField replaces exactly one entry and never adds or
// removes keys.
type State struct {
	mu       sync.RWMutex
	names    []string
	values   map[string]string
	onChange []ChangeFunc
}

// New seeds a state with the given field names, each initialised to "".
// Duplicate and blank names are ignored.
func New(names ...string) *State {
	s := &State{values: make(map[string]string, len(names))}
	for _, name := range names {
		key := strings.TrimSpace(name)
		if key == "" {
			continue
		}
		if _, exists := s.values[key]; exists {
			continue
		}
		s.names = append(s.names, key)
		s.values[key] = ""
	}
	return s
}

// NewDefault seeds a state with FormFields.
func NewDefault() *State {
	return New(FormFields...)
}

// FromValues seeds a state with names and copies matching entries from values.
// Entries in values that are not part of names are ignored.
func FromValues(names []string, values map[string]string) *State {
	s := New(names...)
	for _, name := range s.names {
		if value, ok := values[name]; ok {
			s.values[name] = value
		}
	}
	return s
}

// Names returns the field names in form order.
func (s *State) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.names...)
}

// Values returns a copy of the current mapping. Callers may mutate the copy
// freely; the state is unaffected.
func (s *State) Values() map[string]string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.values))
	for key, value := range s.values {
		out[key] = value
	}
	return out
}

// Get returns the value stored for name.
func (s *State) Get(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[name]
	return value, ok
}

// SetField replaces the value of name. Any string is accepted; unknown names
// return ErrUnknownField and leave the state untouched.
func (s *State) SetField(name, value string) error {
	if s == nil {
		return ErrNilState
	}

	s.mu.Lock()
	if _, ok := s.values[name]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	s.values[name] = value
	observers := append([]ChangeFunc(nil), s.onChange...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(name, value)
	}
	return nil
}

// OnChange registers fn to run after every successful SetField. Observers run
// outside the state lock, in registration order.
func (s *State) OnChange(fn ChangeFunc) {
	if s == nil || fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Missing returns the names whose value is empty or whitespace, in form order.
// It stands in for the browser's required-field gate in non-browser clients.
func (s *State) Missing() []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var missing []string
	for _, name := range s.names {
		if strings.TrimSpace(s.values[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Complete reports whether every field holds a value.
func (s *State) Complete() bool {
	return len(s.Missing()) == 0
}

package render

import (
	"strings"

	"github.com/goliatone/go-heartform/pkg/model"
)

// RequiredMessage is attached to every field left blank at submit time.
const RequiredMessage = "This field is required"

// MissingErrors turns the names reported by formstate.State.Missing into the
// per-field error map consumed by renderers. Names unknown to form are dropped.
func MissingErrors(form model.FormModel, missing []string) map[string][]string {
	if len(missing) == 0 {
		return nil
	}
	known := make(map[string]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		known[field.Name] = struct{}{}
	}

	out := make(map[string][]string, len(missing))
	for _, name := range missing {
		key := strings.TrimSpace(name)
		if _, ok := known[key]; !ok {
			continue
		}
		out[key] = []string{RequiredMessage}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

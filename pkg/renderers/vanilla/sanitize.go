package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	descriptionPolicy     *bluemonday.Policy
	descriptionPolicyOnce sync.Once
)

// sanitizeDescription keeps inline formatting in contract field descriptions
// (emphasis, code, abbreviations) and drops every other tag and attribute.
// The result is emitted unescaped as help text under the control.
func sanitizeDescription(description string) string {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return ""
	}
	return descriptionSanitizer().Sanitize(trimmed)
}

func descriptionSanitizer() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("b", "strong", "i", "em", "code", "sub", "sup", "abbr")
		p.AllowAttrs("title").OnElements("abbr")
		descriptionPolicy = p
	})
	return descriptionPolicy
}

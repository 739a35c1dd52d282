package vanilla

import "strings"

func fieldControlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "hf-" + trimmed
}

func fieldErrorID(name string) string {
	controlID := fieldControlID(name)
	if controlID == "" {
		return ""
	}
	return controlID + "-error"
}

package parser

import "strings"

const extensionNamespace = "x-heartform"

// extractExtensions keeps the x-heartform namespace (either as a nested object
// or as x-heartform-* keys) and drops every other vendor extension.
func extractExtensions(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	result := make(map[string]any)
	for key, value := range raw {
		switch {
		case key == extensionNamespace:
			mapped, ok := cloneMap(value)
			if !ok {
				continue
			}
			for nestedKey, nestedValue := range mapped {
				result[extensionNamespace+"-"+nestedKey] = nestedValue
			}
		case strings.HasPrefix(key, extensionNamespace+"-"):
			if value != nil {
				result[key] = value
			}
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func cloneMap(value any) (map[string]any, bool) {
	mapped, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	cloned := make(map[string]any, len(mapped))
	for k, v := range mapped {
		cloned[k] = v
	}
	return cloned, true
}

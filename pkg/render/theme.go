package render

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-theme"
)

// DefaultThemeTokens are the colours used when no theme is configured.
var DefaultThemeTokens = map[string]string{
	"surface":        "#ffffff",
	"text":           "#1f2937",
	"border":         "#d1d5db",
	"accent":         "#2563eb",
	"danger":         "#b91c1c",
	"danger-bg":      "#fee2e2",
	"success":        "#15803d",
	"success-bg":     "#dcfce7",
	"radius":         "6px",
	"font-family":    "system-ui, sans-serif",
	"form-max-width": "40rem",
}

// ThemeConfig resolves manifest plus an optional variant into the renderer
// configuration: variant tokens override base tokens, every token becomes a
// "--name" CSS variable, and asset keys resolve under the manifest prefix.
// A nil manifest yields DefaultThemeTokens under the name "default".
func ThemeConfig(manifest *theme.Manifest, variant string) *theme.RendererConfig {
	if manifest == nil {
		manifest = &theme.Manifest{Name: "default", Tokens: DefaultThemeTokens}
	}

	tokens := make(map[string]string, len(DefaultThemeTokens)+len(manifest.Tokens))
	for key, value := range DefaultThemeTokens {
		tokens[key] = value
	}
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	partials := copyStrings(manifest.Templates)
	prefix := manifest.Assets.Prefix
	files := copyStrings(manifest.Assets.Files)

	variant = strings.TrimSpace(variant)
	if v, ok := manifest.Variants[variant]; ok {
		for key, value := range v.Tokens {
			tokens[key] = value
		}
		for key, value := range v.Templates {
			if partials == nil {
				partials = make(map[string]string)
			}
			partials[key] = value
		}
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
		for key, value := range v.Assets.Files {
			if files == nil {
				files = make(map[string]string)
			}
			files[key] = value
		}
	}

	return &theme.RendererConfig{
		Theme:    manifest.Name,
		Variant:  variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  CSSVars(tokens),
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if prefix == "" {
				return file
			}
			return path.Join(prefix, file)
		},
	}
}

// CSSVars prefixes every token name with "--".
func CSSVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		out[name] = value
	}
	return out
}

// Stylesheet renders the CSS variables of cfg as a :root rule, keys sorted.
func Stylesheet(cfg *theme.RendererConfig) string {
	if cfg == nil {
		return ":root {}\n"
	}
	vars := cfg.CSSVars
	if len(vars) == 0 {
		vars = CSSVars(cfg.Tokens)
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "  %s: %s;\n", key, vars[key])
	}
	b.WriteString("}\n")
	return b.String()
}

func copyStrings(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

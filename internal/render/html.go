package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"go-writing-services/internal/ui"
	"go-writing-services/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"paletteCSS": paletteCSS,
	"toneClass":  toneClass,
	"lower":      strings.ToLower,
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// paletteCSS exposes a palette as CSS custom properties.
func paletteCSS(p ui.Palette) template.CSS {
	var b strings.Builder
	b.WriteString(":root{")
	for _, kv := range [][2]string{
		{"bg", p.Background},
		{"paper", p.Paper},
		{"text", p.Text},
		{"muted", p.Muted},
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"success", p.Success},
		{"warning", p.Warning},
		{"error", p.Error},
		{"info", p.Info},
	} {
		fmt.Fprintf(&b, "--%s:%s;", kv[0], kv[1])
	}
	b.WriteString("}")
	return template.CSS(b.String())
}

func toneClass(t view.Tone) string {
	if t == view.ToneNone {
		return "tone-none"
	}
	return "tone-" + string(t)
}

package report

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"
)

//go:embed templates/report.html
var templateFS embed.FS

// Write renders the report to a transient HTML file and returns its path.
// The artifact is fully self-contained (inline CSS, no external assets).
// Failing to write it is the one fatal error class in the tool.
func Write(data Data) (string, error) {
	tmpl, err := parseTemplate()
	if err != nil {
		return "", fmt.Errorf("parsing report template: %w", err)
	}

	f, err := os.CreateTemp("", "claude-code-costs-*.html")
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}

	if err := tmpl.ExecuteTemplate(f, "report.html", data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("rendering report: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing report file: %w", err)
	}

	return f.Name(), nil
}

func parseTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"cost":  func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		"cost4": func(v float64) string { return fmt.Sprintf("$%.4f", v) },
		"cost6": func(v float64) string { return fmt.Sprintf("$%.6f", v) },
		"barPct": func(v, max float64) int {
			if max <= 0 {
				return 0
			}
			pct := int(v / max * 100)
			if v > 0 && pct < 2 {
				pct = 2 // keep non-zero days visible
			}
			return pct
		},
		"shortDay": func(key string) string {
			// "2025-06-01" -> "06-01"
			if i := strings.Index(key, "-"); i >= 0 {
				return key[i+1:]
			}
			return key
		},
		"inc": func(i int) int { return i + 1 },
	}

	return template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/report.html")
}

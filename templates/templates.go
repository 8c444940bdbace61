// Package templates embeds the page templates and the helpers they call.
package templates

import (
	"embed"
	"html/template"
	"strings"

	"influencer-trust/filters"
	"influencer-trust/models"
	"influencer-trust/slug"
)

//go:embed *.html
var files embed.FS

// Parse returns every page template plus the "claims" fragment used by the
// live endpoint.
func Parse() (*template.Template, error) {
	return template.New("pages").Funcs(Funcs()).ParseFS(files, "*.html")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"slug":        slug.FromName,
		"title":       slug.ToName,
		"initials":    Initials,
		"trustClass":  TrustClass,
		"statusClass": StatusClass,
		"trendIcon":   TrendIcon,
		"formatDate":  FormatDate,
		"percent":     Percent,
	}
}

// Initials returns the first letter of every word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r := []rune(w)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// TrustClass buckets a trust score: 90 and above is good, below 80 is bad.
func TrustClass(score int) string {
	switch {
	case score >= 90:
		return "good"
	case score < 80:
		return "bad"
	default:
		return "warn"
	}
}

func StatusClass(status string) string {
	switch s := strings.ToLower(strings.TrimSpace(status)); s {
	case "verified", "questionable", "debunked":
		return s
	default:
		return "unknown"
	}
}

func TrendIcon(t models.Trend) string {
	switch t {
	case models.TrendUp:
		return "▲"
	case models.TrendDown:
		return "▼"
	default:
		return "–"
	}
}

// FormatDate renders a claim date as "Jan 2, 2006", or as given when it does
// not parse.
func FormatDate(s string) string {
	if t, ok := filters.ParseDate(s); ok {
		return t.Format("Jan 2, 2006")
	}
	return s
}

// Percent appends a percent sign unless value already ends in one.
func Percent(value string) string {
	if value == "" || strings.HasSuffix(value, "%") {
		return value
	}
	return value + "%"
}

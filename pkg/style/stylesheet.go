package style

import (
	"bytes"
	"embed"
	"errors"
	"math"
	"strconv"
	"text/template"
)

// Stable identifiers shared with the browser side.
const (
	// ElementID marks the injected <style> element.
	ElementID = "os-zoom-styles"

	// FactorProperty is the custom property holding the scale factor.
	FactorProperty = "--os-zoom-factor"
)

//go:embed templates/zoom.css.tmpl
var templatesFS embed.FS

var cssTemplate = template.Must(template.ParseFS(templatesFS, "templates/zoom.css.tmpl"))

// Options tune the rendered stylesheet.
type Options struct {
	BaseFontSize string // default "16px"
	BaseSpacing  string // default "8px"
	// ApplyToDocument also emits rules for html and h1-h3, not just the
	// custom properties.
	ApplyToDocument bool
}

// DefaultOptions applies the formulas to the document root and headings.
func DefaultOptions() Options {
	return Options{BaseFontSize: "16px", BaseSpacing: "8px", ApplyToDocument: true}
}

type templateData struct {
	Property        string
	Factor          string
	BaseFontSize    string
	BaseSpacing     string
	ApplyToDocument bool
}

// Render renders the stylesheet for factor.
func Render(factor float64, opts Options) (string, error) {
	if !validFactor(factor) {
		return "", ErrInvalidFactor
	}
	if opts.BaseFontSize == "" {
		opts.BaseFontSize = "16px"
	}
	if opts.BaseSpacing == "" {
		opts.BaseSpacing = "8px"
	}

	var buf bytes.Buffer
	err := cssTemplate.Execute(&buf, templateData{
		Property:        FactorProperty,
		Factor:          FormatFactor(factor),
		BaseFontSize:    opts.BaseFontSize,
		BaseSpacing:     opts.BaseSpacing,
		ApplyToDocument: opts.ApplyToDocument,
	})
	if err != nil {
		return "", errors.Join(ErrRender, err)
	}
	return buf.String(), nil
}

// Stylesheet renders with DefaultOptions. Invalid factors render as 1.
func Stylesheet(factor float64) string {
	if !validFactor(factor) {
		factor = 1
	}
	css, err := Render(factor, DefaultOptions())
	if err != nil {
		panic(err) // template is parsed at init
	}
	return css
}

// FormatFactor prints a factor without trailing zeros, e.g. "0.8", "1".
func FormatFactor(factor float64) string {
	return strconv.FormatFloat(factor, 'f', -1, 64)
}

func validFactor(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Package view renders the server-side HTML pages.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"time"

	"perkpass/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates
var templateFS embed.FS

const layoutTemplate = "layout"

// Renderer implements echo.Renderer. Every page is parsed into its own set together with
// the layout, so each page can define "content" independently.
type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// NewRenderer parses the embedded templates.
func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	return newRenderer(templateFS, logger)
}

func newRenderer(fsys fs.FS, logger *slog.Logger) (*Renderer, error) {
	base, err := template.New(layoutTemplate).Funcs(Funcs()).ParseFS(fsys, "templates/layout.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse layout")
	}

	files, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		set, err := base.Clone()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if _, err := set.ParseFS(fsys, file); err != nil {
			return nil, errors.Wrapf(err, "parse page %s", file)
		}

		pages[strings.TrimSuffix(path.Base(file), ".html")] = set
	}

	return &Renderer{pages: pages, logger: logger}, nil
}

// Render executes the named page inside the layout. The page is rendered to a buffer first
// so a template failure never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	set, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, layoutTemplate, data); err != nil {
		r.logger.Error("Template execution failed",
			slog.String("page", name),
			slog.Any("error", err),
		)

		return errors.WithStack(err)
	}

	_, err := buf.WriteTo(w)

	return errors.WithStack(err)
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money": Money,
		"date":  Date,
		"dateInput": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}

			return t.Format(time.DateOnly)
		},
	}
}

// Money formats an amount in cents as dollars with thousands separators.
func Money(cents int64) string {
	return util.FormatCents(cents)
}

// Date formats a timestamp for display; the zero time renders as a dash.
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format("Jan 2, 2006")
}

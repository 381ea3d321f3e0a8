package shared

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Markup writes HTML and keeps the first write error, so components can emit
// a sequence of fragments and check once at the end.
type Markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func NewMarkup(ctx context.Context, w io.Writer) *Markup {
	return &Markup{ctx: ctx, w: w}
}

// Raw writes trusted HTML as is.
func (m *Markup) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Text writes escaped text content.
func (m *Markup) Text(s string) { m.Raw(templ.EscapeString(s)) }

// Attr writes ` name="value"` with the value escaped. Empty values are skipped.
func (m *Markup) Attr(name, value string) {
	if value == "" {
		return
	}
	m.Raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

// Href writes a sanitized URL attribute.
func (m *Markup) Href(name, url string) {
	m.Raw(" " + name + "=\"" + templ.EscapeString(string(templ.URL(url))) + "\"")
}

// Flag writes a boolean attribute when on is true.
func (m *Markup) Flag(name string, on bool) {
	if on {
		m.Raw(" " + name)
	}
}

// Component renders a child component in place.
func (m *Markup) Component(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

func (m *Markup) Err() error { return m.err }

// Classes joins the non-empty class names.
func Classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}

// Render builds a component from a markup-writing function.
func Render(fn func(m *Markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := NewMarkup(ctx, w)
		fn(m)
		return m.Err()
	})
}

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so component bodies can be
// written as straight-line markup.
type writer struct {
	w   io.Writer
	err error
}

func (hw *writer) raw(parts ...string) {
	for _, s := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, s)
	}
}

func (hw *writer) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *writer) attr(name, value string) {
	hw.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (hw *writer) component(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// Text returns a component rendering s as escaped text.
func Text(s string) templ.Component {
	return templ.Raw(templ.EscapeString(s))
}

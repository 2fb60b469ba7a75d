// Package components bridges gomponents nodes and templ components and
// holds the small building blocks shared by the layout and the pages.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Component wraps a node builder as a templ.Component. The builder runs on
// every render so it can read request-scoped values from ctx.
func Component(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// Static wraps a prebuilt node as a templ.Component.
func Static(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// Embed renders a templ.Component (or any view with the same method) as a
// node inside a gomponents tree.
func Embed(ctx context.Context, v interface {
	Render(ctx context.Context, w io.Writer) error
}) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return v.Render(ctx, w)
	})
}

// Section is the standard page section wrapper.
func Section(children ...g.Node) g.Node {
	return h.Section(h.Class("section"), g.Group(children))
}

// Eyebrow is the small uppercase label above a headline.
func Eyebrow(text string) g.Node {
	return h.H2(h.Class("eyebrow"), g.Text(text))
}

// Headline renders a page heading with an emphasised tail.
func Headline(lead, emphasis string) g.Node {
	return h.H1(h.Class("headline"), g.Text(lead+" "), h.Em(g.Text(emphasis)))
}

// Lead is the introductory paragraph under a headline.
func Lead(text string) g.Node {
	return h.P(h.Class("lead"), g.Text(text))
}

// HX sets an htmx attribute, e.g. HX("get", "/pages/about").
func HX(name, value string) g.Node {
	return g.Attr("hx-"+name, value)
}

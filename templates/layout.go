// Package templates renders the persistent site chrome: the navigation bar,
// the page slot holding the mounted page views, and the footer.
package templates

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"settleedge_web/config"
	"settleedge_web/middleware"
	"settleedge_web/services/shell"
	"settleedge_web/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	gc "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// LayoutProps carries everything the chrome needs for one full page render.
type LayoutProps struct {
	Title      string
	Navigation *config.Navigation
	Current    shell.Route
	Menu       shell.MenuState
	Transition time.Duration
	// Slot is the page slot content: normally MountNode for the active mount
	Slot g.Node
}

// Layout renders a complete HTML document around the page slot.
func Layout(props LayoutProps) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		nonce := middleware.GetNonce(ctx)
		return gc.HTML5(gc.HTML5Props{
			Title:    props.Title,
			Language: "en",
			Head: []g.Node{
				h.Meta(h.Name("csrf-token"), h.Content(middleware.CSRFTokenFromContext(ctx))),
				h.Link(h.Rel("stylesheet"), h.Href(middleware.AssetURL(ctx, middleware.SiteCSSPath))),
				h.Script(h.Src(middleware.HTMXScriptURL), h.Defer(), g.Attr("nonce", nonce)),
				h.Script(h.Src(middleware.AssetURL(ctx, middleware.ShellJSPath)), h.Defer(), g.Attr("nonce", nonce)),
			},
			Body: []g.Node{
				NavBar(props.Navigation, props.Current, props.Menu, false),
				h.Main(
					h.Div(
						h.ID("page-slot"),
						h.Data("route", props.Current.Name()),
						h.Data("transition-ms", strconv.FormatInt(props.Transition.Milliseconds(), 10)),
						g.Attr("style", fmt.Sprintf("--transition: %dms", props.Transition.Milliseconds())),
						props.Slot,
					),
				),
				ModalSlot(false),
				Footer(props.Navigation, time.Now().Year()),
			},
		})
	})
}

// MountNode wraps a page view in its transition container. An entering
// mount plays the enter animation once and reports its end to the shell;
// the markup carries no phase after that.
func MountNode(ctx context.Context, m shell.Mount) g.Node {
	return h.Div(
		h.ID("mount-"+m.ID),
		gc.Classes{"page-mount": true, "enter": m.Phase == shell.PhaseEntering},
		h.Data("route", m.Route.Name()),
		g.If(m.Phase == shell.PhaseEntering, g.Group{
			components.HX("post", "/shell/mounts/"+m.ID+"/complete"),
			components.HX("trigger", "animationend once"),
			components.HX("swap", "none"),
		}),
		components.Embed(ctx, m.View),
	)
}

// PagePartial is the response to a fragment navigation: the new mount for
// the page slot, plus out-of-band swaps refreshing the navigation and
// closing any open modal.
func PagePartial(nav *config.Navigation, current shell.Route, menu shell.MenuState, m shell.Mount) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return g.Group{
			MountNode(ctx, m),
			NavBar(nav, current, menu, true),
			ModalSlot(true),
		}
	})
}

// ModalSlot is the container the service detail modal is swapped into.
func ModalSlot(oob bool) g.Node {
	return h.Div(h.ID("modal-slot"), g.If(oob, components.HX("swap-oob", "true")))
}

// Footer renders the site footer with the configured link columns.
func Footer(nav *config.Navigation, year int) g.Node {
	return h.Footer(h.Class("site-footer"),
		h.Div(h.Class("footer-grid"),
			h.Div(
				h.H3(g.Text("SettleEdge "), h.Span(h.Class("legal"), g.Text("Legal"))),
				h.P(h.Class("disclaimer"), g.Text("A structured, transparent consultancy for financial resolution. Empowering individuals and businesses through informed decision-making and professional documentation.")),
			),
			g.Map(nav.Footer, func(col config.FooterColumn) g.Node {
				return h.Div(
					h.H4(g.Text(col.Title)),
					h.Ul(g.Map(col.Links, func(l shell.NavLink) g.Node {
						return h.Li(h.A(h.Href(l.Route.Fragment()), g.Text(l.Label)))
					})),
				)
			}),
			h.Div(
				h.H4(g.Text("Legal & Compliance")),
				h.P(h.Class("disclaimer"), g.Text("Disclaimer: SettleEdge Legal operates strictly as a consultancy. We are not a lender, recovery agency, or a substitute for professional legal advice in litigation matters.")),
				h.P(h.Class("disclaimer"), g.Text("For legal representation and compliance matters, SettleEdge Legal works with experienced advocates on panel.")),
			),
		),
		h.Div(h.Class("footer-base"),
			h.P(g.Textf("© %d SettleEdge Legal Services Pvt Ltd.", year)),
		),
	)
}

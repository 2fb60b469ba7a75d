package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type ctxKey string

func TestComponentReadsContext(t *testing.T) {
	comp := Component(func(ctx context.Context) g.Node {
		name, _ := ctx.Value(ctxKey("name")).(string)
		return h.P(g.Text(name))
	})

	var buf bytes.Buffer
	ctx := context.WithValue(context.Background(), ctxKey("name"), "SettleEdge")
	require.NoError(t, comp.Render(ctx, &buf))
	assert.Equal(t, "<p>SettleEdge</p>", buf.String())
}

func TestStaticAndEmbedRoundTrip(t *testing.T) {
	inner := Static(h.Span(g.Text("inner")))
	outer := h.Div(h.ID("outer"), Embed(context.Background(), inner))

	var buf strings.Builder
	require.NoError(t, outer.Render(&buf))
	assert.Equal(t, `<div id="outer"><span>inner</span></div>`, buf.String())
}

func TestHelpers(t *testing.T) {
	var buf strings.Builder
	node := Section(Eyebrow("Consultation"), Headline("Request a Confidential", "Evaluation."), HX("get", "/pages/faq"))
	require.NoError(t, node.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, `<section class="section" hx-get="/pages/faq">`)
	assert.Contains(t, out, `<h2 class="eyebrow">Consultation</h2>`)
	assert.Contains(t, out, `<h1 class="headline">Request a Confidential <em>Evaluation.</em></h1>`)
}

func TestMarkdown(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Markdown("Expect a call within **24-48 working hours**.").Render(&buf))
	assert.Equal(t, "<p>Expect a call within <strong>24-48 working hours</strong>.</p>", strings.TrimSpace(buf.String()))

	buf.Reset()
	require.NoError(t, Markdown("hi <script>alert(1)</script>").Render(&buf))
	assert.NotContains(t, buf.String(), "<script")
	assert.Contains(t, buf.String(), "hi")
}

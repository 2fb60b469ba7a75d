package components

import (
	"bytes"
	"log"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	g "maragu.dev/gomponents"
)

var (
	markdown       = goldmark.New()
	markdownPolicy = bluemonday.UGCPolicy()
)

// Markdown renders trusted copy written in Markdown. The output still goes
// through the UGC policy so a stray tag in the copy cannot inject script.
func Markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		log.Printf("[WARNING] Failed to render markdown: %v", err)
		return g.Text(src)
	}
	return g.Raw(string(markdownPolicy.SanitizeBytes(buf.Bytes())))
}

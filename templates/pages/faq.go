package pages

import (
	"settleedge_web/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var faqEntries = []struct{ q, a string }{
	{"Is SettleEdge Legal a lender or recovery agency?", "No. We operate **strictly as a consultancy**. We do not lend money, collect dues, or act for lenders."},
	{"Who is loan settlement suitable for?", "Settlement is typically pursued in cases of genuine, documented financial hardship where regular repayment is no longer possible."},
	{"Will a settlement affect my credit score?", "A settled account is reported differently from a closed one. We explain the long-term credit impact before you choose a path, and offer credit rebuilding guidance afterwards."},
	{"Do you represent clients in court?", "We are *not* a substitute for litigation counsel. For representation, we work with experienced advocates on our panel."},
	{"How soon will I hear back after submitting an evaluation?", "Expect a call within **24-48 working hours** for a preliminary discussion."},
	{"Is my information kept confidential?", "Yes. Your financial information is treated with the highest degree of privacy and professional ethics."},
}

// FAQ answers common queries. Answers are Markdown.
func FAQ() templ.Component {
	return components.Static(components.Section(
		components.Eyebrow("Common Queries"),
		components.Headline("Answers before you", "begin."),
		h.Dl(h.Class("faq"),
			g.Map(faqEntries, func(e struct{ q, a string }) g.Node {
				return g.Group{h.Dt(g.Text(e.q)), h.Dd(components.Markdown(e.a))}
			}),
		),
	))
}

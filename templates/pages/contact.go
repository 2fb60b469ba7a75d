package pages

import (
	"context"
	"strings"

	"settleedge_web/middleware"
	"settleedge_web/models"
	"settleedge_web/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Contact is the evaluation request page. The form posts through htmx and
// the response replaces the panel; without JavaScript it is a plain POST.
func Contact() templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return components.Section(
			h.Div(h.Class("grid"),
				h.Div(
					components.Eyebrow("Consultation"),
					components.Headline("Request a Confidential", "Evaluation."),
					components.Lead("Every resolution journey begins with understanding. Share your details in confidence, and one of our advisors will reach out to understand your options."),
					h.H4(g.Text("Confidentiality Assured")),
					h.P(g.Text("Your financial information is treated with the highest degree of privacy and professional ethics.")),
					h.H4(g.Text("Professional Response")),
					h.P(g.Text("Expect a call from us within 24-48 working hours for a preliminary discussion.")),
				),
				h.Div(h.ID("contact-panel"), h.Class("card"),
					contactForm(ctx, models.ContactInquiry{LoanType: models.LoanTypes[0]}, nil),
				),
			),
		)
	})
}

// ContactForm renders the form alone, optionally prefilled and with the
// names of missing required fields.
func ContactForm(in models.ContactInquiry, missing []string) templ.Component {
	return components.Component(func(ctx context.Context) g.Node {
		return contactForm(ctx, in, missing)
	})
}

func contactForm(ctx context.Context, in models.ContactInquiry, missing []string) g.Node {
	return h.Form(
		h.Class("contact-form"),
		h.Method("post"),
		h.Action("/contact"),
		components.HX("post", "/contact"),
		components.HX("target", "#contact-panel"),
		g.If(len(missing) > 0,
			h.Div(h.Class("form-error"), h.Role("alert"), g.Text("Please fill in: "+strings.Join(missing, ", "))),
		),
		h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(middleware.CSRFTokenFromContext(ctx))),
		textField("Full Name", "name", "text", "John Doe", in.Name),
		textField("Phone Number", "phone", "tel", "+91 00000 00000", in.Phone),
		h.Div(h.Class("field"),
			h.Label(h.For("loan_type"), g.Text("Loan Type")),
			h.Select(h.ID("loan_type"), h.Name("loan_type"),
				g.Map(models.LoanTypes, func(opt string) g.Node {
					return h.Option(h.Value(opt), g.If(opt == in.LoanType, h.Selected()), g.Text(opt))
				}),
			),
		),
		textField("Lender Bank", "lender", "text", "e.g. HDFC, ICICI", in.Lender),
		textField("City", "city", "text", "e.g. Mumbai", in.City),
		h.Div(h.Class("field"),
			h.Label(h.For("details"), g.Text("Context (Optional)")),
			h.Textarea(h.ID("details"), h.Name("details"), h.Placeholder("Briefly describe your current situation..."), g.Text(in.Details)),
		),
		h.Button(h.Type("submit"), h.Class("button"), g.Text("Submit Evaluation")),
	)
}

func textField(label, name, kind, placeholder, value string) g.Node {
	return h.Div(h.Class("field"),
		h.Label(h.For(name), g.Text(label)),
		h.Input(h.ID(name), h.Name(name), h.Type(kind), h.Placeholder(placeholder), h.Value(value), h.Required()),
	)
}

// InquiryReceived replaces the form after a successful submission.
func InquiryReceived() templ.Component {
	return components.Static(h.Div(h.Class("inquiry-received"),
		h.H2(g.Text("Inquiry Received")),
		h.P(g.Text("Your case details are safe with us. An advisor will contact you shortly.")),
		h.Button(h.Type("button"), h.Class("button ghost"),
			components.HX("get", "/contact/form"),
			components.HX("target", "#contact-panel"),
			g.Text("Submit another inquiry"),
		),
	))
}

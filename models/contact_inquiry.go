package models

// Loan type options offered by the contact form
const (
	LoanTypeCreditCard   = "Credit Card"
	LoanTypePersonalLoan = "Personal Loan"
	LoanTypeMSME         = "MSME Business Loan"
	LoanTypeOther        = "Other"
)

// LoanTypes lists the options in form order. The first is the default.
var LoanTypes = []string{LoanTypeCreditCard, LoanTypePersonalLoan, LoanTypeMSME, LoanTypeOther}

// ContactInquiry is a free evaluation request. It is logged, never stored.
type ContactInquiry struct {
	Name     string `form:"name" json:"name"`
	Phone    string `form:"phone" json:"phone"`
	LoanType string `form:"loan_type" json:"loan_type"`
	Lender   string `form:"lender" json:"lender"`
	City     string `form:"city" json:"city"`
	Details  string `form:"details" json:"details,omitempty"`
}

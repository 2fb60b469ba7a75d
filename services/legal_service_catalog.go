package services

import (
	"errors"

	"settleedge_web/models"
)

var ErrServiceNotFound = errors.New("service not found")

// ServiceCatalog is the fixed list of consultancy services, in display order.
var ServiceCatalog = []models.ServiceDetail{
	{
		ID:        "loan-settlement",
		Title:     "Loan Settlement",
		ShortDesc: "Strategic resolution for individuals and SMEs facing documented debt stress.",
		LongDesc:  "Loan settlement is a structured negotiation process where we help you reach an agreement with your lender to pay off a debt for less than the total balance. This is typically pursued in cases of genuine financial hardship. We audit your case, draft hardship reports, and provide a professional framework for dialogue with the bank's resolution desk.",
		Features:  []string{"Credit Card Resolution", "Unsecured Personal Loans", "SME/MSME Debt Strategy", "Hardship Case Documentation"},
		Featured:  true,
	},
	{
		ID:        "ipr-registration",
		Title:     "IPR Registration",
		ShortDesc: "Comprehensive protection for your brand, creative output, and innovations.",
		LongDesc:  "Our Intellectual Property Rights services ensure that your commercial and creative assets are legally safeguarded. From searching for trademark availability to filing copyright applications, we handle the complex documentation required to secure your competitive edge in the market.",
		Features:  []string{"Trademark Filing & Prosecution", "Copyright Registration", "Design & Patent Advisory", "Brand Protection Strategy"},
	},
	{
		ID:        "property-registration",
		Title:     "Property Registration",
		ShortDesc: "Expert documentary support for real estate transactions and statutory compliance.",
		LongDesc:  "Navigating property laws in India requires extreme precision. We provide end-to-end consultancy for the registration of various property-related documents. This includes verifying title chains, calculating appropriate stamp duty, and ensuring all statutory requirements are met at the sub-registrar's office.",
		Features:  []string{"Sale & Conveyance Deeds", "Gift & Relinquishment Deeds", "Lease & Rent Agreements", "Stamp Duty Advisory", "Property Document Audits"},
	},
	{
		ID:        "professional-documents",
		Title:     "Document Drafting",
		ShortDesc: "Precision drafting for commercial contracts and banking correspondence.",
		LongDesc:  "Clear, document-backed communication is the cornerstone of professional resolution. We specialize in drafting formal letters to banks, commercial contracts for SMEs, and legal declarations that hold weight in administrative and banking protocols.",
		Features:  []string{"Bank Correspondence Drafting", "Commercial Service Agreements", "Hardship Reports", "Affidavits & Declarations"},
	},
	{
		ID:        "insurance-claims",
		Title:     "Insurance Claims",
		ShortDesc: "Advisory for policy-related grievances and claim resolution support.",
		LongDesc:  "If your insurance claim has been unfairly rejected or delayed, we help you understand the policy fine print and draft formal representations to the insurance provider or the Ombudsman, ensuring your case is presented factually.",
		Features:  []string{"Claim Document Review", "Ombudsman Representations", "Rejected Claim Advisory"},
	},
	{
		ID:        "credit-rebuilding",
		Title:     "Credit Rebuilding",
		ShortDesc: "Strategic post-settlement guidance focused on financial recovery.",
		LongDesc:  "Resolution is the first step toward health. We provide actionable advisory on how to rebuild your CIBIL score and credit profile after a settlement, focusing on disciplined credit habits and secure financial products.",
		Features:  []string{"CIBIL Score Analysis", "Financial Recovery Roadmap", "Secured Credit Advisory"},
	},
}

// GetServiceDetail looks up a catalog entry by id
func GetServiceDetail(id string) (*models.ServiceDetail, error) {
	for i := range ServiceCatalog {
		if ServiceCatalog[i].ID == id {
			detail := ServiceCatalog[i]
			return &detail, nil
		}
	}
	return nil, ErrServiceNotFound
}

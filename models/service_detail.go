package models

// ServiceDetail is one entry of the service catalog shown on the services page.
type ServiceDetail struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	ShortDesc string   `json:"short_desc"`
	LongDesc  string   `json:"long_desc"`
	Features  []string `json:"features"`
	// Featured cards use the dark accent
	Featured bool `json:"featured"`
}

// PreviewFeatures returns the features shown on the catalog card.
func (s ServiceDetail) PreviewFeatures() []string {
	if len(s.Features) > 3 {
		return s.Features[:3]
	}
	return s.Features
}

package models

// Founder represents the primary founder attached to a startup record.
// The directory supports at most one founder per company in practice.
type Founder struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Batch       string `json:"batch,omitempty"`
	ImageURL    string `json:"imageUrl"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`
}

// Company is the startup view model served to the directory pages.
// IDs are only unique within a single listing call.
type Company struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Website            string    `json:"website,omitempty"`
	Summary            string    `json:"summary,omitempty"`
	Description        string    `json:"description,omitempty"`
	LogoURL            string    `json:"logoUrl"`
	FoundingYear       int       `json:"foundingYear"`
	Category           []string  `json:"category"`
	Founders           []Founder `json:"founders"`
	TotalRaised        string    `json:"totalRaised,omitempty"`
	Employees          string    `json:"employees,omitempty"`
	InvestmentRound    string    `json:"investmentRound,omitempty"`
	Milestones         string    `json:"milestones,omitempty"`
	SupportingPrograms string    `json:"supportingPrograms,omitempty"`
	IsSpotlight        bool      `json:"isSpotlight"`
	IsYCombinator      bool      `json:"isYCombinator"`
}

// StartupUpsertRequest is the flat form-shaped payload accepted by the
// create and update endpoints. Image fields carry either a base64 data URI
// (fresh upload) or an already-hosted URL (unchanged attachment).
type StartupUpsertRequest struct {
	Name               string `json:"name" binding:"required"`
	Website            string `json:"website"`
	Summary            string `json:"summary"`
	Description        string `json:"description"`
	CompanyLogo        string `json:"companyLogo"`
	FoundingYear       string `json:"foundingYear"`
	Category           string `json:"category"`
	FounderName        string `json:"founderName"`
	FounderRole        string `json:"founderRole"`
	FounderBatch       string `json:"founderBatch"`
	FounderImage       string `json:"founderImage"`
	FounderLinkedin    string `json:"founderLinkedin"`
	TotalRaised        string `json:"totalRaised"`
	Employees          string `json:"employees"`
	InvestmentRound    string `json:"investmentRound"`
	Milestones         string `json:"milestones"`
	SupportingPrograms string `json:"supportingPrograms"`
	IsSpotlight        bool   `json:"isSpotlight"`
	IsYCombinator      bool   `json:"isYCombinator"`
}

package models

// Member is a directory entry parsed from the members CSV file.
// The ID is the row index within the file.
type Member struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Batch        string   `json:"batch"`
	Role         string   `json:"role"`
	Company      string   `json:"company,omitempty"`
	LinkedinURL  string   `json:"linkedinUrl,omitempty"`
	ImageURL     string   `json:"imageUrl"`
	Bio          string   `json:"bio,omitempty"`
	Expertise    []string `json:"expertise"`
	Achievements string   `json:"achievements,omitempty"`
}

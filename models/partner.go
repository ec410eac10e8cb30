package models

// Partner is the partner view model served to the partners page.
// Only records whose Show flag is truthy ever leave the API.
type Partner struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	LogoURL  string `json:"logoUrl"`
	Featured bool   `json:"featured"`
}

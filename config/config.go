package config

import (
	"errors"
	"os"
)

const defaultNocoDBBaseURL = "https://app.nocodb.com"

// NocoDBBaseURL returns the NocoDB instance URL, defaulting to the hosted service.
func NocoDBBaseURL() string {
	if v := os.Getenv("NOCODB_BASE_URL"); v != "" {
		return v
	}
	return defaultNocoDBBaseURL
}

// NocoDBToken returns the API token for NocoDB. Empty means unconfigured.
func NocoDBToken() string {
	return os.Getenv("NOCODB_API_TOKEN")
}

// StartupsTableID returns the NocoDB table id holding startup records.
func StartupsTableID() string {
	return os.Getenv("NOCODB_STARTUPS_TABLE_ID")
}

// PartnersTableID returns the NocoDB table id holding partner records.
func PartnersTableID() string {
	return os.Getenv("NOCODB_PARTNERS_TABLE_ID")
}

// LumaAPIKey returns the Luma calendar API key. Empty means unconfigured.
func LumaAPIKey() string {
	return os.Getenv("LUMA_API_KEY")
}

// RequireStartupsConfig checks the credentials needed by the startup routes.
// Routes fail closed with this error before any network call is attempted.
func RequireStartupsConfig() error {
	if NocoDBToken() == "" || StartupsTableID() == "" {
		return errors.New("NocoDB credentials are not configured")
	}
	return nil
}

// RequirePartnersConfig checks the credentials needed by the partners route.
func RequirePartnersConfig() error {
	if NocoDBToken() == "" || PartnersTableID() == "" {
		return errors.New("NocoDB credentials are not configured")
	}
	return nil
}

// RequireLumaConfig checks the credentials needed by the event routes.
func RequireLumaConfig() error {
	if LumaAPIKey() == "" {
		return errors.New("Luma API key is not configured")
	}
	return nil
}

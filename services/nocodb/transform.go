package nocodb

import (
	"strconv"
	"strings"
	"time"

	"startup-directory-api/models"
	"startup-directory-api/utils"
)

// Column names are provider-exact strings, misspellings included. Do not
// "fix" FieldCategory or FieldPartnerCategory: the NocoDB tables really
// spell them that way.
const (
	FieldName               = "Startup Name"
	FieldWebsite            = "Website"
	FieldSummary            = "Summary"
	FieldDescription        = "Description"
	FieldLogo               = "Company Logo"
	FieldFoundingYear       = "Founding Year"
	FieldCategory           = "Chategory"
	FieldFounderName        = "Founder Name"
	FieldFounderRole        = "Founder Role"
	FieldFounderBatch       = "Founder Batch"
	FieldFounderImage       = "Founder Image"
	FieldFounderLinkedin    = "Founder LinkedIn"
	FieldTotalRaised        = "Total Raised"
	FieldEmployees          = "Employees"
	FieldInvestmentRound    = "Investment Round"
	FieldMilestones         = "Milestones"
	FieldSupportingPrograms = "Supporting Programs"
	FieldSpotlight          = "Spotlight"
	FieldYCombinator        = "Y Combinator"

	FieldPartnerName     = "Name"
	FieldPartnerCategory = "Categrory"
	FieldPartnerLogo     = "Logo"
	FieldPartnerFeatured = "Featured"
	FieldPartnerShow     = "Show"
)

// CompanyFromRecord maps one NocoDB startup row onto the shared Company
// shape. baseURL prefixes attachment signed paths.
func CompanyFromRecord(rec map[string]any, baseURL string) models.Company {
	name := str(rec, FieldName)

	c := models.Company{
		ID:                 recordID(rec),
		Name:               name,
		Website:            utils.StripScheme(str(rec, FieldWebsite)),
		Summary:            str(rec, FieldSummary),
		Description:        str(rec, FieldDescription),
		LogoURL:            attachmentURL(rec, FieldLogo, baseURL, name),
		FoundingYear:       foundingYear(rec[FieldFoundingYear]),
		Category:           categoryList(str(rec, FieldCategory)),
		Founders:           []models.Founder{},
		TotalRaised:        str(rec, FieldTotalRaised),
		Employees:          str(rec, FieldEmployees),
		InvestmentRound:    str(rec, FieldInvestmentRound),
		Milestones:         str(rec, FieldMilestones),
		SupportingPrograms: str(rec, FieldSupportingPrograms),
		IsSpotlight:        YesNoFromText(rec[FieldSpotlight]).Bool(),
		IsYCombinator:      YesNoFromText(rec[FieldYCombinator]).Bool(),
	}
	if c.Description == "" {
		c.Description = c.Summary
	}

	if founderName := strings.TrimSpace(str(rec, FieldFounderName)); founderName != "" {
		role := str(rec, FieldFounderRole)
		if role == "" {
			role = "Founder"
		}
		c.Founders = append(c.Founders, models.Founder{
			Name:        founderName,
			Role:        role,
			Batch:       str(rec, FieldFounderBatch),
			ImageURL:    attachmentURL(rec, FieldFounderImage, baseURL, founderName),
			LinkedinURL: str(rec, FieldFounderLinkedin),
		})
	}

	return c
}

// PartnerFromRecord maps one NocoDB partner row onto the Partner shape.
func PartnerFromRecord(rec map[string]any, baseURL string) models.Partner {
	name := str(rec, FieldPartnerName)

	category := strings.TrimSpace(str(rec, FieldPartnerCategory))
	if category == "" {
		category = "Other"
	}

	return models.Partner{
		ID:       recordID(rec),
		Name:     name,
		Category: category,
		LogoURL:  attachmentURL(rec, FieldPartnerLogo, baseURL, name),
		Featured: YesNoFromLoose(rec[FieldPartnerFeatured]).Bool(),
	}
}

// ShowPartner reports whether a partner row should leave the API at all.
// Filtering happens server-side.
func ShowPartner(rec map[string]any) bool {
	return YesNoFromLoose(rec[FieldPartnerShow]).Bool()
}

// str reads a field as display text. Numbers are formatted, everything
// else non-string collapses to "".
func str(rec map[string]any, key string) string {
	switch v := rec[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// recordID reads the provider's internal record id.
func recordID(rec map[string]any) int {
	if v, ok := rec["Id"].(float64); ok {
		return int(v)
	}
	return 0
}

// attachmentURL builds a servable image URL from a NocoDB attachment
// field: the first element's signedPath prefixed with the instance URL.
// Absent or malformed attachments fall back to a generated avatar keyed
// by the entity's display name.
func attachmentURL(rec map[string]any, key, baseURL, name string) string {
	if list, ok := rec[key].([]any); ok && len(list) > 0 {
		if first, ok := list[0].(map[string]any); ok {
			if signed, ok := first["signedPath"].(string); ok && signed != "" {
				return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(signed, "/")
			}
		}
	}
	return utils.AvatarURL(name)
}

func foundingYear(v any) int {
	switch t := v.(type) {
	case float64:
		if t > 0 {
			return int(t)
		}
	case string:
		if year, err := strconv.Atoi(strings.TrimSpace(t)); err == nil && year > 0 {
			return year
		}
	}
	return time.Now().Year()
}

func categoryList(raw string) []string {
	list := utils.SplitTrimmed(raw)
	if len(list) == 0 {
		return []string{"Other"}
	}
	return list
}

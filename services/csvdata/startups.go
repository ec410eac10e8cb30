package csvdata

import (
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"startup-directory-api/models"
	"startup-directory-api/utils"
)

// StartupsList.csv has no header contract; columns are mapped strictly
// by position.
const (
	colStartupName = iota
	colFounderName
	colFounderBatch
	colFounderLinkedin
	colWebsite
	colSummary
	colDescription
	colCategory
	colFoundingYear
	colTotalRaised
	colEmployees
	colInvestmentRound
	colMilestones
	colSupportingPrograms
	colLogoURL
)

// startupHeaderLiteral guards against a stray header row mid-file.
const startupHeaderLiteral = "Startup Name"

// spotlightNames marks startups featured on the landing page carousel.
// Keys are normalized names.
var spotlightNames = map[string]bool{
	"helix robotics": true,
	"paperlane":      true,
	"voltfield":      true,
}

// ycNames marks alumni whose batch predates the Supporting Programs column.
var ycNames = map[string]bool{
	"paperlane": true,
}

var ycKeyword = regexp.MustCompile(`(?i)\by[ -]?combinator\b|\byc\b`)

// ParseStartups decodes the positional startups CSV into Company records.
// Rows whose first column is empty or repeats the header literal are
// skipped; short rows yield empty fields rather than errors.
func ParseStartups(r io.Reader, images FounderImageResolver) ([]models.Company, error) {
	rows, err := PositionalRows(r)
	if err != nil {
		return nil, err
	}

	companies := make([]models.Company, 0, len(rows))
	for _, row := range rows {
		name := col(row, colStartupName)
		if strings.TrimSpace(name) == "" || name == startupHeaderLiteral {
			continue
		}

		c := models.Company{
			ID:                 len(companies),
			Name:               name,
			Website:            utils.StripScheme(col(row, colWebsite)),
			Summary:            col(row, colSummary),
			Description:        col(row, colDescription),
			FoundingYear:       parseFoundingYear(col(row, colFoundingYear)),
			Category:           categoryList(col(row, colCategory)),
			Founders:           []models.Founder{},
			TotalRaised:        col(row, colTotalRaised),
			Employees:          col(row, colEmployees),
			InvestmentRound:    col(row, colInvestmentRound),
			Milestones:         col(row, colMilestones),
			SupportingPrograms: col(row, colSupportingPrograms),
		}
		if c.Description == "" {
			c.Description = c.Summary
		}

		if logo := strings.TrimSpace(col(row, colLogoURL)); logo != "" {
			c.LogoURL = logo
		} else {
			c.LogoURL = utils.AvatarURL(c.Name)
		}

		if founderName := strings.TrimSpace(col(row, colFounderName)); founderName != "" {
			c.Founders = append(c.Founders, models.Founder{
				Name:        founderName,
				Role:        "Founder",
				Batch:       col(row, colFounderBatch),
				ImageURL:    images.Resolve(founderName),
				LinkedinURL: col(row, colFounderLinkedin),
			})
		}

		norm := utils.NormalizeName(c.Name)
		c.IsSpotlight = spotlightNames[norm]
		c.IsYCombinator = ycNames[norm] || ycKeyword.MatchString(c.SupportingPrograms)

		companies = append(companies, c)
	}

	return companies, nil
}

func parseFoundingYear(raw string) int {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || year <= 0 {
		return time.Now().Year()
	}
	return year
}

func categoryList(raw string) []string {
	list := utils.SplitTrimmed(raw)
	if len(list) == 0 {
		return []string{"Other"}
	}
	return list
}

package csvdata

import (
	"io"
	"strings"

	"startup-directory-api/models"
	"startup-directory-api/utils"
)

// memberImagePlaceholder is served when a member has no portrait on file.
const memberImagePlaceholder = "/images/members/placeholder.png"

// ParseMembers decodes the header-named members CSV. The first line names
// the columns: Name, Batch, Role, Company, LinkedIn, ImageUrl, Bio,
// Expertise, Achievements.
func ParseMembers(r io.Reader) ([]models.Member, error) {
	rows, err := HeaderNamedRows(r)
	if err != nil {
		return nil, err
	}

	members := make([]models.Member, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row["Name"])
		if name == "" {
			continue
		}

		m := models.Member{
			ID:           len(members),
			Name:         name,
			Batch:        row["Batch"],
			Role:         row["Role"],
			Company:      row["Company"],
			LinkedinURL:  row["LinkedIn"],
			ImageURL:     row["ImageUrl"],
			Bio:          row["Bio"],
			Expertise:    utils.SplitTrimmed(row["Expertise"]),
			Achievements: row["Achievements"],
		}
		if strings.TrimSpace(m.ImageURL) == "" {
			m.ImageURL = memberImagePlaceholder
		}

		members = append(members, m)
	}

	return members, nil
}

// Command csv-import performs the one-time migration of StartupsList.csv
// into the NocoDB startups table. The CSV stops being a live read path
// once imported; NocoDB is the system of record.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"startup-directory-api/config"
	"startup-directory-api/models"
	"startup-directory-api/services/csvdata"
	"startup-directory-api/services/nocodb"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var (
		file      string
		imagesDir string
		dryRun    bool
		limit     int
	)

	flag.StringVar(&file, "file", filepath.Join("public", "StartupsList.csv"), "path to the startups CSV file")
	flag.StringVar(&imagesDir, "images-dir", filepath.Join("public", "founders"), "directory with founder portrait files")
	flag.BoolVar(&dryRun, "dry-run", false, "parse and print without writing to NocoDB")
	flag.IntVar(&limit, "limit", 0, "maximum number of records to import (0 = all)")
	flag.Parse()

	resolver := csvdata.DirImageResolver{Dir: imagesDir, BaseURL: "/founders"}

	f, err := os.Open(file)
	if err != nil {
		log.Fatalf("opening %s: %v", file, err)
	}
	defer f.Close()

	companies, err := csvdata.ParseStartups(f, resolver)
	if err != nil {
		log.Fatalf("parsing %s: %v", file, err)
	}
	if limit > 0 && len(companies) > limit {
		companies = companies[:limit]
	}

	log.Printf("parsed %d startup records from %s", len(companies), file)

	if dryRun {
		for _, c := range companies {
			fmt.Printf("%-30s categories=%v founders=%d spotlight=%v yc=%v\n",
				c.Name, c.Category, len(c.Founders), c.IsSpotlight, c.IsYCombinator)
		}
		return
	}

	if err := config.RequireStartupsConfig(); err != nil {
		log.Fatal(err)
	}
	client, err := nocodb.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	tableID := config.StartupsTableID()

	imported := 0
	for _, c := range companies {
		fields := importFields(c)

		// Upload founder portraits that exist as local files; everything
		// else stays empty and the transformer falls back to an avatar.
		if len(c.Founders) > 0 {
			if path, ok := resolver.ResolveFile(c.Founders[0].Name); ok {
				if attachments, err := uploadLocalFile(ctx, client, path); err == nil {
					fields[nocodb.FieldFounderImage] = attachments
				} else {
					log.Printf("portrait upload for %s failed, importing without it: %v", c.Founders[0].Name, err)
				}
			}
		}

		recordID, err := client.Create(ctx, tableID, fields)
		if err != nil {
			log.Printf("import of %q failed: %v", c.Name, err)
			continue
		}
		imported++
		log.Printf("imported %q as record %d", c.Name, recordID)
	}

	log.Printf("done: %d/%d records imported", imported, len(companies))
}

// importFields maps a parsed Company back onto provider-exact columns.
func importFields(c models.Company) map[string]any {
	fields := map[string]any{
		nocodb.FieldName:               c.Name,
		nocodb.FieldWebsite:            c.Website,
		nocodb.FieldSummary:            c.Summary,
		nocodb.FieldDescription:        c.Description,
		nocodb.FieldFoundingYear:       fmt.Sprintf("%d", c.FoundingYear),
		nocodb.FieldCategory:           strings.Join(c.Category, ", "),
		nocodb.FieldTotalRaised:        c.TotalRaised,
		nocodb.FieldEmployees:          c.Employees,
		nocodb.FieldInvestmentRound:    c.InvestmentRound,
		nocodb.FieldMilestones:         c.Milestones,
		nocodb.FieldSupportingPrograms: c.SupportingPrograms,
		nocodb.FieldSpotlight:          yesNoText(c.IsSpotlight),
		nocodb.FieldYCombinator:        yesNoText(c.IsYCombinator),
	}
	if len(c.Founders) > 0 {
		f := c.Founders[0]
		fields[nocodb.FieldFounderName] = f.Name
		fields[nocodb.FieldFounderRole] = f.Role
		fields[nocodb.FieldFounderBatch] = f.Batch
		fields[nocodb.FieldFounderLinkedin] = f.LinkedinURL
	}
	return fields
}

func uploadLocalFile(ctx context.Context, client *nocodb.Client, path string) ([]nocodb.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return client.Upload(ctx, filepath.Base(path), data)
}

func yesNoText(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

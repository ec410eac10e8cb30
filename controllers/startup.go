// controllers/startup.go - startup directory CRUD proxied to NocoDB
package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"startup-directory-api/config"
	"startup-directory-api/models"
	"startup-directory-api/services/nocodb"
	"startup-directory-api/utils"

	"github.com/gin-gonic/gin"
)

// listLimit caps a directory listing call. The directory is small; no
// pagination is offered.
const listLimit = 1000

// GetStartups - list all startup records
func GetStartups(c *gin.Context) {
	if err := config.RequireStartupsConfig(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	client, err := nocodb.FromEnv()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records, err := client.List(c.Request.Context(), config.StartupsTableID(), listLimit)
	if err != nil {
		log.Printf("startup list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch startups"})
		return
	}

	companies := make([]models.Company, 0, len(records))
	for _, rec := range records {
		companies = append(companies, nocodb.CompanyFromRecord(rec, client.BaseURL()))
	}

	c.JSON(http.StatusOK, companies)
}

// GetStartup - fetch one startup record by id
func GetStartup(c *gin.Context) {
	id := c.Param("id")

	if err := config.RequireStartupsConfig(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	client, err := nocodb.FromEnv()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rec, err := client.Get(c.Request.Context(), config.StartupsTableID(), id)
	if err != nil {
		if strings.Contains(err.Error(), "status 404") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Startup not found"})
			return
		}
		log.Printf("startup fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch startup"})
		return
	}

	c.JSON(http.StatusOK, nocodb.CompanyFromRecord(rec, client.BaseURL()))
}

// CreateStartup - create a new startup record, uploading any fresh images first
func CreateStartup(c *gin.Context) {
	var req models.StartupUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.RequireStartupsConfig(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	client, err := nocodb.FromEnv()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	tableID := config.StartupsTableID()

	// Advisory duplicate-name guard: case-insensitive, whitespace-trimmed.
	// A listing failure here does not block the create.
	if records, err := client.List(ctx, tableID, listLimit); err == nil {
		want := utils.NormalizeName(req.Name)
		for _, rec := range records {
			if utils.NormalizeName(nocodb.CompanyFromRecord(rec, client.BaseURL()).Name) == want {
				c.JSON(http.StatusConflict, gin.H{"error": "A startup with this name already exists"})
				return
			}
		}
	} else {
		log.Printf("duplicate-name check skipped, listing failed: %v", err)
	}

	fields := startupFields(req)
	fields[nocodb.FieldLogo] = uploadImageField(ctx, client, req.CompanyLogo)
	fields[nocodb.FieldFounderImage] = uploadImageField(ctx, client, req.FounderImage)

	recordID, err := client.Create(ctx, tableID, fields)
	if err != nil {
		log.Printf("startup create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create startup"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Startup created successfully",
		"data":     fields,
		"recordId": recordID,
	})
}

// UpdateStartup - update an existing record. The current record is read
// first so an unchanged hosted-URL image keeps its stored attachment.
func UpdateStartup(c *gin.Context) {
	id := c.Param("id")
	recordID, err := strconv.Atoi(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startup id"})
		return
	}

	var req models.StartupUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.RequireStartupsConfig(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	client, err := nocodb.FromEnv()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	tableID := config.StartupsTableID()

	current, err := client.Get(ctx, tableID, id)
	if err != nil {
		log.Printf("startup update: fetching current record failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch current record"})
		return
	}

	fields := startupFields(req)
	fields[nocodb.FieldLogo] = resolveImageField(ctx, client, req.CompanyLogo, current[nocodb.FieldLogo])
	fields[nocodb.FieldFounderImage] = resolveImageField(ctx, client, req.FounderImage, current[nocodb.FieldFounderImage])

	if err := client.Update(ctx, tableID, recordID, fields); err != nil {
		log.Printf("startup update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update startup"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Startup updated successfully",
		"data":    fields,
	})
}

// DeleteStartup - delete a record by id. Uploaded files are not cleaned up.
func DeleteStartup(c *gin.Context) {
	recordID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startup id"})
		return
	}

	if err := config.RequireStartupsConfig(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	client, err := nocodb.FromEnv()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := client.Delete(c.Request.Context(), config.StartupsTableID(), recordID); err != nil {
		log.Printf("startup delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete startup"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Startup deleted successfully",
	})
}

// startupFields maps the form-shaped request onto provider-exact column
// names. Image fields are filled in separately.
func startupFields(req models.StartupUpsertRequest) map[string]any {
	return map[string]any{
		nocodb.FieldName:               req.Name,
		nocodb.FieldWebsite:            req.Website,
		nocodb.FieldSummary:            req.Summary,
		nocodb.FieldDescription:        req.Description,
		nocodb.FieldFoundingYear:       req.FoundingYear,
		nocodb.FieldCategory:           req.Category,
		nocodb.FieldFounderName:        req.FounderName,
		nocodb.FieldFounderRole:        req.FounderRole,
		nocodb.FieldFounderBatch:       req.FounderBatch,
		nocodb.FieldFounderLinkedin:    req.FounderLinkedin,
		nocodb.FieldTotalRaised:        req.TotalRaised,
		nocodb.FieldEmployees:          req.Employees,
		nocodb.FieldInvestmentRound:    req.InvestmentRound,
		nocodb.FieldMilestones:         req.Milestones,
		nocodb.FieldSupportingPrograms: req.SupportingPrograms,
		nocodb.FieldSpotlight:          yesNoText(req.IsSpotlight),
		nocodb.FieldYCombinator:        yesNoText(req.IsYCombinator),
	}
}

// uploadImageField uploads a fresh base64 image and returns the
// attachment value for the record field. Upload failure degrades the
// field to nil rather than failing the write.
func uploadImageField(ctx context.Context, client *nocodb.Client, value string) any {
	if !nocodb.IsDataURI(value) {
		return nil
	}
	attachments, err := client.UploadBase64(ctx, value)
	if err != nil {
		log.Printf("image upload failed, storing record without it: %v", err)
		return nil
	}
	return attachments
}

// resolveImageField decides between replacing, preserving and clearing an
// attachment on update. The payload alone cannot distinguish "unchanged"
// from "cleared", hence the read-before-write.
func resolveImageField(ctx context.Context, client *nocodb.Client, incoming string, current any) any {
	if nocodb.IsDataURI(incoming) {
		attachments, err := client.UploadBase64(ctx, incoming)
		if err != nil {
			log.Printf("image upload failed, clearing field: %v", err)
			return nil
		}
		return attachments
	}
	if strings.TrimSpace(incoming) == "" {
		return nil
	}
	// Hosted URL: the attachment was not touched in the form, keep the
	// stored value byte for byte.
	return current
}

func yesNoText(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// controllers/partner.go - partners listing proxied to NocoDB
package controllers

import (
	"log"
	"net/http"

	"startup-directory-api/config"
	"startup-directory-api/models"
	"startup-directory-api/services/nocodb"

	"github.com/gin-gonic/gin"
)

// GetPartners - list partner records whose Show flag is truthy.
// Filtering happens here, never on the client.
func GetPartners(c *gin.Context) {
	if err := config.RequirePartnersConfig(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	client, err := nocodb.FromEnv()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records, err := client.List(c.Request.Context(), config.PartnersTableID(), listLimit)
	if err != nil {
		log.Printf("partner list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch partners"})
		return
	}

	partners := make([]models.Partner, 0, len(records))
	for _, rec := range records {
		if !nocodb.ShowPartner(rec) {
			continue
		}
		partners = append(partners, nocodb.PartnerFromRecord(rec, client.BaseURL()))
	}

	c.JSON(http.StatusOK, partners)
}

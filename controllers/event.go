// controllers/event.go - Luma calendar proxy
package controllers

import (
	"log"
	"net/http"
	"time"

	"startup-directory-api/services/luma"

	"github.com/gin-gonic/gin"
)

// GetPastEvents - events from the last 18 months, strictly before now
func GetPastEvents(c *gin.Context) {
	client, err := luma.FromEnv()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events", "details": err.Error()})
		return
	}

	now := time.Now()
	after, before := luma.PastWindow(now)

	entries, err := client.ListEvents(c.Request.Context(), after, before)
	if err != nil {
		log.Printf("luma past events failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": luma.FilterPast(entries, now)})
}

// GetUpcomingEvents - events within the next 12 months, now included
func GetUpcomingEvents(c *gin.Context) {
	client, err := luma.FromEnv()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events", "details": err.Error()})
		return
	}

	now := time.Now()
	after, before := luma.UpcomingWindow(now)

	entries, err := client.ListEvents(c.Request.Context(), after, before)
	if err != nil {
		log.Printf("luma upcoming events failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": luma.FilterUpcoming(entries, now)})
}

// controllers/member.go - members listing from the CSV seed file
package controllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"startup-directory-api/services/csvdata"

	"github.com/gin-gonic/gin"
)

// membersCSVPath is re-read on every request; the file is the live
// source for members, which have no NocoDB table.
var membersCSVPath = filepath.Join("public", "MembersList.csv")

// GetMembers - list members parsed from the header-named CSV
func GetMembers(c *gin.Context) {
	f, err := os.Open(membersCSVPath)
	if err != nil {
		log.Printf("members csv open failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}
	defer f.Close()

	members, err := csvdata.ParseMembers(f)
	if err != nil {
		log.Printf("members csv parse failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

// controllers/contact.go - public contact form relayed over SMTP
package controllers

import (
	"fmt"
	"html"
	"log"
	"net/http"

	"startup-directory-api/config"
	"startup-directory-api/models"
	"startup-directory-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SendContactMessage - relay a visitor message to the org inbox
func SendContactMessage(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	inbox := config.ContactInbox()
	if inbox == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Contact inbox is not configured"})
		return
	}

	reference := uuid.NewString()
	subject := fmt.Sprintf("[Website contact] %s", utils.SanitizeInput(req.Subject))
	if req.Subject == "" {
		subject = "[Website contact] New message"
	}

	body := fmt.Sprintf(
		"<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p><p><small>Reference: %s</small></p>",
		html.EscapeString(utils.SanitizeInput(req.Name)),
		html.EscapeString(req.Email),
		html.EscapeString(utils.SanitizeInput(req.Message)),
		reference,
	)

	if err := config.SendMail([]string{inbox}, subject, body); err != nil {
		log.Printf("contact mail failed (ref %s): %v", reference, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Message sent",
		"reference": reference,
	})
}

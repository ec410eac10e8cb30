package routes

import (
	"startup-directory-api/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Startup Directory API is running",
			})
		})

		// Startup directory (NocoDB system of record)
		startups := api.Group("/startups")
		{
			startups.GET("", controllers.GetStartups)
			startups.POST("/add", controllers.CreateStartup)
			startups.GET("/:id", controllers.GetStartup)
			startups.PUT("/:id", controllers.UpdateStartup)
			startups.DELETE("/:id", controllers.DeleteStartup)
		}

		// Partners (Show-filtered server-side)
		api.GET("/partners", controllers.GetPartners)

		// Members (CSV seed file, re-read per request)
		api.GET("/members", controllers.GetMembers)

		// Luma calendar proxy
		lumaGroup := api.Group("/luma")
		{
			lumaGroup.GET("/past-events", controllers.GetPastEvents)
			lumaGroup.GET("/upcoming-events", controllers.GetUpcomingEvents)
		}

		// Contact form
		api.POST("/contact", controllers.SendContactMessage)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/quizforge/mcq-server/config"
	"github.com/quizforge/mcq-server/controllers"
	"github.com/quizforge/mcq-server/middleware"
)

// navEntries is what this service registers with a navigation/menu host:
// one human-readable label per routed destination.
var navEntries = []gin.H{
	{"label": "Add Question", "path": "/api/questions"},
}

func SetupRoutes(r *gin.Engine, cfg config.Config, qc *controllers.QuestionController) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":   "mcq-server",
			"endpoints": navEntries,
		})
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	submitLimiter := middleware.NewIPRateLimiter(cfg.SubmitPerMinute, cfg.SubmitBurst, cfg.SubmitTTL)

	api := r.Group("/api")
	{
		api.POST("/questions", middleware.RateLimitByIP(submitLimiter), qc.SubmitQuestion)
	}
}

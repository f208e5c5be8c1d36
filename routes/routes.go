package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/vnkhanh/podcast-site/controllers"
)

func SetupRouter(r *gin.Engine, db *gorm.DB, pc *controllers.PodcastController) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterPodcastRoutes(r, pc)
	return r
}

// RegisterPodcastRoutes tách riêng để test không cần database
func RegisterPodcastRoutes(r *gin.Engine, pc *controllers.PodcastController) {
	r.GET("/topics", pc.Topics)

	podcasts := r.Group("/podcasts")
	{
		podcasts.GET("", pc.Index)
		podcasts.GET("/:slug", pc.View)
		podcasts.GET("/:slug/feed.xml", pc.Feed)
	}
}

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savoria/restaurant-backend/controllers"
	"github.com/savoria/restaurant-backend/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 100).RateLimit())

	menuCtrl := controllers.NewMenuController(db)
	galleryCtrl := controllers.NewGalleryController(db)
	reviewCtrl := controllers.NewReviewController(db)
	reservationCtrl := controllers.NewReservationController(db)
	newsletterCtrl := controllers.NewNewsletterController(db)
	orderCtrl := controllers.NewOrderController(db)

	api := r.Group("/api")
	{
		api.GET("/menu", menuCtrl.GetMenu)
		api.GET("/gallery", galleryCtrl.GetGallery)

		api.GET("/reviews", reviewCtrl.GetReviews)
		api.POST("/reviews", reviewCtrl.CreateReview)

		api.POST("/reservations", reservationCtrl.CreateReservation)
		api.POST("/newsletter", newsletterCtrl.Subscribe)

		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders/:order_id", orderCtrl.GetOrderStatus)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "ok",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	}

	return r
}

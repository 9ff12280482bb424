package routes

import (
	"github.com/nafhansa/JobTracker-sub000/handlers/subscription"
	"github.com/nafhansa/JobTracker-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func SubscriptionRoutes(r *gin.Engine) {
	r.GET("/api/subscription", middleware.JWTAuth(), subscription.GetMySubscription)
	r.GET("/api/subscription/lifetime-slots", subscription.GetLifetimeSlots)
}

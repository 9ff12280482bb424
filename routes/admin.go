package routes

import (
	"github.com/nafhansa/JobTracker-sub000/handlers/admin"
	"github.com/nafhansa/JobTracker-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	adminRoutes := r.Group("/api/admin")
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.GET("/dashboard", admin.GetDashboard)
		adminRoutes.GET("/purchases", admin.GetPurchases)
	}
}

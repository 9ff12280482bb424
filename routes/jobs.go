package routes

import (
	"github.com/nafhansa/JobTracker-sub000/handlers/jobs"
	"github.com/nafhansa/JobTracker-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func JobsRoutes(r *gin.Engine) {
	jobRoutes := r.Group("/api/jobs")
	jobRoutes.Use(middleware.JWTAuth())
	{
		jobRoutes.GET("", jobs.GetJobs)
		jobRoutes.POST("", jobs.CreateJob)
		jobRoutes.PUT("/:jobId", jobs.UpdateJob)
		jobRoutes.DELETE("/:jobId", jobs.DeleteJob)
		jobRoutes.POST("/:jobId/cv", jobs.UploadJobCv)
	}

	r.GET("/api/streaks", middleware.JWTAuth(), jobs.GetMyStreak)
}

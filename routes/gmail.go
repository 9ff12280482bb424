package routes

import (
	"github.com/nafhansa/JobTracker-sub000/handlers/gmailimport"
	"github.com/nafhansa/JobTracker-sub000/middleware"

	"github.com/gin-gonic/gin"
)

func GmailRoutes(r *gin.Engine) {
	r.GET("/api/gmail/connect", middleware.JWTAuth(), gmailimport.Connect)
	// Google redirects here; the user id rides in the state parameter
	r.GET("/api/gmail/callback", gmailimport.Callback)
	r.POST("/api/gmail/import", middleware.JWTAuth(), gmailimport.Import)
}

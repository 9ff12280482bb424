package routes

import (
	"github.com/nafhansa/JobTracker-sub000/handlers/contacts"

	"github.com/gin-gonic/gin"
)

func ContactsRoutes(r *gin.Engine) {
	r.POST("/contact", contacts.CreateContact)
}

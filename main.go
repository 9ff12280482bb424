package main

import (
	"context"
	"log"

	"github.com/nafhansa/JobTracker-sub000/db"
	_ "github.com/nafhansa/JobTracker-sub000/docs"
	"github.com/nafhansa/JobTracker-sub000/routes"
	"github.com/nafhansa/JobTracker-sub000/store"
	"github.com/nafhansa/JobTracker-sub000/utils"

	"github.com/gin-gonic/gin"
)

// @title JobTracker API
// @version 1.0
// @description API for the JobTracker backend
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("CV uploads will not work correctly.")
	}

	// The Firestore mirror only runs during the migration window; a
	// missing project id means single-store mode.
	var jobMirror store.JobMirror
	if mirror, err := store.NewFirestoreMirror(context.Background()); err != nil {
		utils.LogError(err, "Firestore mirror initialization failed, continuing without it")
	} else if mirror != nil {
		jobMirror = mirror
	}
	store.Jobs = store.NewDualJobStore(db.DB, jobMirror)

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}

package jobs

import (
	"errors"
	"net/http"
	"time"

	"github.com/nafhansa/JobTracker-sub000/db"
	"github.com/nafhansa/JobTracker-sub000/models"
	"github.com/nafhansa/JobTracker-sub000/store"
	"github.com/nafhansa/JobTracker-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// @Summary List the user's job applications
// @Description Return all job applications of the connected user, newest first
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Job
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /api/jobs [get]
func GetJobs(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var jobs []models.Job
	err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error fetching jobs in GetJobs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching jobs"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// @Summary Create a job application
// @Description Log a new job application for the connected user
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body models.JobCreate true "Job information"
// @Security BearerAuth
// @Success 201 {object} models.Job
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/jobs [post]
func CreateJob(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.JobCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	job := models.Job{
		UserID:         userID.(string),
		Title:          input.Title,
		Company:        input.Company,
		Industry:       input.Industry,
		RecruiterEmail: input.RecruiterEmail,
		URL:            input.URL,
		Type:           input.Type,
		Location:       input.Location,
		Salary:         input.Salary,
		Currency:       input.Currency,
		Applied:        input.Applied,
	}
	job.NormalizeStages()

	if err := store.Jobs.CreateJob(c.Request.Context(), &job); err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating job in CreateJob")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the job"})
		return
	}

	bumpStreak(userID.(string))

	utils.LogSuccessWithUser(userID, "Job created successfully in CreateJob")
	c.JSON(http.StatusCreated, job)
}

// @Summary Update a job application
// @Description Update fields of a job application; pipeline stages are front-filled
// @Tags jobs
// @Accept json
// @Produce json
// @Param jobId path string true "ID of the job"
// @Param job body models.JobUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Job
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 403 {object} map[string]string "error: Not your job"
// @Failure 404 {object} map[string]string "error: Job not found"
// @Router /api/jobs/{jobId} [put]
func UpdateJob(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	job, ok := findOwnedJob(c, userID)
	if !ok {
		return
	}

	var input models.JobUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	applyJobUpdate(job, input)
	job.NormalizeStages()

	if err := store.Jobs.UpdateJob(c.Request.Context(), job); err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating job in UpdateJob")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the job"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// @Summary Delete a job application
// @Description Delete a job application of the connected user
// @Tags jobs
// @Accept json
// @Produce json
// @Param jobId path string true "ID of the job"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Job deleted successfully"
// @Failure 403 {object} map[string]string "error: Not your job"
// @Failure 404 {object} map[string]string "error: Job not found"
// @Router /api/jobs/{jobId} [delete]
func DeleteJob(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	job, ok := findOwnedJob(c, userID)
	if !ok {
		return
	}

	if err := store.Jobs.DeleteJob(c.Request.Context(), job); err != nil {
		utils.LogErrorWithUser(userID, err, "Error deleting job in DeleteJob")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting the job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// @Summary Upload a CV for a job application
// @Description Attach a CV/resume document to a job application
// @Tags jobs
// @Accept multipart/form-data
// @Produce json
// @Param jobId path string true "ID of the job"
// @Param cv formData file true "CV document (PDF, DOC, DOCX, ODT, RTF)"
// @Security BearerAuth
// @Success 200 {object} map[string]string "cvUrl: URL of the uploaded document"
// @Failure 400 {object} map[string]string "error: Invalid file"
// @Failure 404 {object} map[string]string "error: Job not found"
// @Router /api/jobs/{jobId}/cv [post]
func UploadJobCv(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	job, ok := findOwnedJob(c, userID)
	if !ok {
		return
	}

	file, err := c.FormFile("cv")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing cv file: " + err.Error()})
		return
	}

	url, err := utils.UploadCv(file)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error uploading CV in UploadJobCv")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job.CvURL = url
	if err := store.Jobs.UpdateJob(c.Request.Context(), job); err != nil {
		utils.LogErrorWithUser(userID, err, "Error saving CV URL in UploadJobCv")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving the job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cvUrl": url})
}

func findOwnedJob(c *gin.Context, userID interface{}) (*models.Job, bool) {
	jobID := c.Param("jobId")
	if _, err := uuid.Parse(jobID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return nil, false
	}

	var job models.Job
	if err := db.DB.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return nil, false
	}

	if job.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to access this job"})
		return nil, false
	}

	return &job, true
}

func applyJobUpdate(job *models.Job, input models.JobUpdate) {
	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Company != nil {
		job.Company = *input.Company
	}
	if input.Industry != nil {
		job.Industry = *input.Industry
	}
	if input.RecruiterEmail != nil {
		job.RecruiterEmail = *input.RecruiterEmail
	}
	if input.URL != nil {
		job.URL = *input.URL
	}
	if input.Type != nil {
		job.Type = *input.Type
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.Salary != nil {
		job.Salary = *input.Salary
	}
	if input.Currency != nil {
		job.Currency = *input.Currency
	}
	if input.Applied != nil {
		job.Applied = *input.Applied
	}
	if input.Emailed != nil {
		job.Emailed = *input.Emailed
	}
	if input.CvResponded != nil {
		job.CvResponded = *input.CvResponded
	}
	if input.InterviewEmail != nil {
		job.InterviewEmail = *input.InterviewEmail
	}
	if input.ContractEmail != nil {
		job.ContractEmail = *input.ContractEmail
	}
	if input.Rejected != nil {
		job.Rejected = *input.Rejected
	}
}

func bumpStreak(userID string) {
	var streak models.UserStreak
	err := db.DB.First(&streak, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		streak = models.UserStreak{UserID: userID}
		streak.Bump(time.Now())
		if err := db.DB.Create(&streak).Error; err != nil {
			utils.LogErrorWithUser(userID, err, "Error creating streak in bumpStreak")
		}
		return
	}
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error loading streak in bumpStreak")
		return
	}

	streak.Bump(time.Now())
	if err := db.DB.Save(&streak).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error saving streak in bumpStreak")
	}
}

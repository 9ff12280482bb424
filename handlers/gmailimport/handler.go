package gmailimport

import (
	"context"
	"encoding/json"
	"net/http"
	"os"

	"github.com/nafhansa/JobTracker-sub000/db"
	"github.com/nafhansa/JobTracker-sub000/models"
	"github.com/nafhansa/JobTracker-sub000/store"
	"github.com/nafhansa/JobTracker-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

func oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Scopes:       []string{gmail.GmailReadonlyScope},
		Endpoint:     google.Endpoint,
	}
}

// @Summary Start the Gmail connection flow
// @Description Return the Google consent URL for the connected user
// @Tags gmail
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "url: Google consent URL"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /api/gmail/connect [get]
func Connect(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	// The user id rides in the OAuth state so the callback can attach
	// the token to the right account.
	url := oauthConfig().AuthCodeURL(userID.(string), oauth2.AccessTypeOffline)
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// @Summary Gmail OAuth callback
// @Description Exchange the authorization code and store the token on the user
// @Tags gmail
// @Accept json
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "User id from the connect call"
// @Success 200 {object} map[string]string "message: Gmail connected"
// @Failure 400 {object} map[string]string "error: Exchange failed"
// @Router /api/gmail/callback [get]
func Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing code or state"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", state).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	token, err := oauthConfig().Exchange(c.Request.Context(), code)
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error exchanging the OAuth code in Callback")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error exchanging the authorization code"})
		return
	}

	raw, err := json.Marshal(token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error serializing the token"})
		return
	}

	if err := db.DB.Model(&user).Update("gmail_token", string(raw)).Error; err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error storing the Gmail token in Callback")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing the token"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "Gmail connected in Callback")
	c.JSON(http.StatusOK, gin.H{"message": "Gmail connected"})
}

// @Summary Import LinkedIn application emails
// @Description Scan the user's Gmail for LinkedIn "application sent" notifications and log them as jobs
// @Tags gmail
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "imported: number of created jobs"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 409 {object} map[string]string "error: Gmail not connected"
// @Router /api/gmail/import [post]
func Import(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.GmailToken == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "Gmail is not connected for this account"})
		return
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(user.GmailToken), &token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading the stored token"})
		return
	}

	ctx := c.Request.Context()
	srv, err := gmail.NewService(ctx, option.WithTokenSource(oauthConfig().TokenSource(ctx, &token)))
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the Gmail service in Import")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error connecting to Gmail"})
		return
	}

	imported, err := importApplications(ctx, srv, user.ID)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error importing applications in Import")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error importing applications"})
		return
	}

	utils.LogSuccessWithUser(userID, "LinkedIn import finished in Import")
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

func importApplications(ctx context.Context, srv *gmail.Service, userID string) (int, error) {
	query := `from:` + linkedInSender + ` subject:"your application was sent to"`
	list, err := srv.Users.Messages.List("me").Q(query).MaxResults(50).Do()
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, ref := range list.Messages {
		msg, err := srv.Users.Messages.Get("me", ref.Id).Format("metadata").MetadataHeaders("Subject").Do()
		if err != nil {
			utils.LogError(err, "Error fetching message "+ref.Id+" during the LinkedIn import")
			continue
		}

		subject := headerValue(msg, "Subject")
		title, company, ok := ParseLinkedInMessage(subject, msg.Snippet)
		if !ok {
			continue
		}

		// Re-importing the same application is a no-op
		var existing int64
		db.DB.Model(&models.Job{}).
			Where("user_id = ? AND title = ? AND company = ?", userID, title, company).
			Count(&existing)
		if existing > 0 {
			continue
		}

		job := models.Job{
			UserID:  userID,
			Title:   title,
			Company: company,
			Applied: true,
		}
		job.NormalizeStages()

		if err := store.Jobs.CreateJob(ctx, &job); err != nil {
			utils.LogErrorWithUser(userID, err, "Error creating an imported job")
			continue
		}
		imported++
	}

	return imported, nil
}

func headerValue(msg *gmail.Message, name string) string {
	if msg.Payload == nil {
		return ""
	}
	for _, h := range msg.Payload.Headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}

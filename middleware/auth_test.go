package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nafhansa/JobTracker-sub000/models"
	"github.com/nafhansa/JobTracker-sub000/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func protectedRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return r
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT(models.User{ID: "u1", Role: models.UserRole}, 1)
	assert.NoError(t, err)

	w := request(protectedRouter(JWTAuth()), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_TokenWithoutBearerPrefix(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT(models.User{ID: "u1", Role: models.UserRole}, 1)
	assert.NoError(t, err)

	w := request(protectedRouter(JWTAuth()), token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w := request(protectedRouter(JWTAuth()), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w := request(protectedRouter(JWTAuth()), "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateJWT(models.User{ID: "u1", Role: models.UserRole}, 1)
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	w := request(protectedRouter(JWTAuth()), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuth_AdminRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT(models.User{ID: "a1", Role: models.AdminRole}, 1)
	assert.NoError(t, err)

	w := request(protectedRouter(AdminAuth()), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuth_UserRoleForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT(models.User{ID: "u1", Role: models.UserRole}, 1)
	assert.NoError(t, err)

	w := request(protectedRouter(AdminAuth()), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

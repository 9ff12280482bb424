package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/nafhansa/JobTracker-sub000/testutils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	os.Exit(m.Run())
}

func setupRouter() *gin.Engine {
	r := testutils.SetupTestRouter()
	r.POST("/register", Register)
	r.POST("/login", Login)
	return r
}

func TestRegister_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1`).
		WithArgs("new@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u1"))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "subscriptions" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("s1"))
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]string{
		"email":    "new@example.com",
		"password": "Secret123",
		"username": "newuser",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "User created successfully", response["message"])
	assert.Equal(t, "new@example.com", response["email"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_EmailAlreadyUsed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1`).
		WithArgs("taken@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow("u1", "taken@example.com"))

	body, _ := json.Marshal(map[string]string{
		"email":    "taken@example.com",
		"password": "Secret123",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_WeakPassword(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	body, _ := json.Marshal(map[string]string{
		"email":    "new@example.com",
		"password": "alllowercase",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_InvalidEmail(t *testing.T) {
	_, _, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	body, _ := json.Marshal(map[string]string{
		"email":    "not-an-email",
		"password": "Secret123",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, err := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1`).
		WithArgs("user@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "role"}).
			AddRow("u1", "user@example.com", string(hash), "USER"))

	body, _ := json.Marshal(map[string]string{
		"email":    "user@example.com",
		"password": "Secret123",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["token"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_WrongPassword(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1`).
		WithArgs("user@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).
			AddRow("u1", "user@example.com", string(hash)))

	body, _ := json.Marshal(map[string]string{
		"email":    "user@example.com",
		"password": "WrongPass1",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = \$1`).
		WithArgs("ghost@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	body, _ := json.Marshal(map[string]string{
		"email":    "ghost@example.com",
		"password": "Secret123",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package admin

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nafhansa/JobTracker-sub000/testutils"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func setupRouter() *gin.Engine {
	r := testutils.SetupTestRouter()
	r.GET("/admin/dashboard", GetDashboard)
	r.GET("/admin/purchases", GetPurchases)
	return r
}

func TestGetDashboard(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(120))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "jobs"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3400))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions" WHERE plan = \$1 AND status = \$2`).
		WithArgs("monthly", "active").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions" WHERE plan = \$1`).
		WithArgs("lifetime").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "lifetime_access_purchases"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(120), response["totalUsers"])
	assert.Equal(t, float64(3400), response["totalJobs"])
	assert.Equal(t, float64(25), response["activeMonthly"])
	assert.Equal(t, float64(10), response["lifetimeUsers"])
	assert.Equal(t, float64(490), response["lifetimeSlotsRemaining"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPurchases(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "user_id", "provider", "order_id", "amount", "currency"}).
		AddRow("lp-2", "u2", "paddle", "txn_2", 9900, "USD").
		AddRow("lp-1", "u1", "midtrans", "order-1", 499000, "IDR")

	mock.ExpectQuery(`SELECT (.+) FROM "lifetime_access_purchases" ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(100).
		WillReturnRows(rows)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin/purchases", nil)
	setupRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var purchases []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &purchases))
	assert.Len(t, purchases, 2)
	assert.Equal(t, "paddle", purchases[0]["provider"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

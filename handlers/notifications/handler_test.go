package notifications

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DouglasReisofc/dashboard-sub002/models"
	"github.com/DouglasReisofc/dashboard-sub002/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func setAuthenticatedUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestGetUserNotifications(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	rows := mock.NewRows([]string{"id", "user_id", "type", "title", "body", "payload", "read_at", "created_at", "updated_at"}).
		AddRow("notif-2", "user-1", string(models.NotificationPlanApproved), "Assinatura ativada", "Pagamento do plano Plano Pro aprovado", []byte(`{}`), nil, time.Now(), time.Now()).
		AddRow("notif-1", "user-1", string(models.NotificationChargeApproved), "Pagamento aprovado", "Recarga de R$ 25.00 do cliente 5511999990000", []byte(`{}`), nil, time.Now().Add(-time.Hour), time.Now().Add(-time.Hour))

	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs("user-1").
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.GET("/notifications", setAuthenticatedUser("user-1"), GetUserNotifications)

	req, _ := http.NewRequest(http.MethodGet, "/notifications", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var listed []models.Notification
	err := json.Unmarshal(resp.Body.Bytes(), &listed)
	assert.NoError(t, err)
	if assert.Len(t, listed, 2) {
		assert.Equal(t, "notif-2", listed[0].ID)
		assert.Equal(t, models.NotificationPlanApproved, listed[0].Type)
		assert.Nil(t, listed[0].ReadAt)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserNotifications_Unauthenticated(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := testutils.SetupTestRouter()
	r.GET("/notifications", GetUserNotifications)

	req, _ := http.NewRequest(http.MethodGet, "/notifications", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkNotificationRead(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET .+ WHERE id = \$\d+ AND user_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/notifications/:id/read", setAuthenticatedUser("user-1"), MarkNotificationRead)

	req, _ := http.NewRequest(http.MethodPut, "/notifications/notif-1/read", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Notification marked as read")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkNotificationRead_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET .+ WHERE id = \$\d+ AND user_id = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/notifications/:id/read", setAuthenticatedUser("user-1"), MarkNotificationRead)

	req, _ := http.NewRequest(http.MethodPut, "/notifications/missing/read", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Notification not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

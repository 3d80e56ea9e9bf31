package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weatherly/weatherly-golang/internal/config"
	"github.com/weatherly/weatherly-golang/internal/handlers"
	"github.com/weatherly/weatherly-golang/internal/middleware"
	"github.com/weatherly/weatherly-golang/internal/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var suggestionTestColumns = []string{
	"suggestion_id", "name", "activity", "reason", "duration",
	"energy_level", "time_of_day", "category", "indoor", "condition", "status", "created_at",
}

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := &handlers.Handlers{
		DB: db,
		Config: &config.Config{
			Admin: config.AdminConfig{
				Username: "admin",
				Password: "hunter2",
				Token:    "test-token",
			},
			UploadDir:   t.TempDir(),
			FrontendURL: "http://localhost:3000",
		},
	}
	return SetupRouter(h), mock
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestAdminListRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodGet, "/suggestions", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized")
}

func TestPublicListIsOpen(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM suggestions WHERE status = \\?").
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows(suggestionTestColumns))

	w := serve(router, httptest.NewRequest(http.MethodGet, "/suggestions/public", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestMutatingImageRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/images"},
		{http.MethodPut, "/images/img-1"},
		{http.MethodPatch, "/images/img-1"},
		{http.MethodDelete, "/images/img-1"},
		{http.MethodPut, "/suggestions/id-1/status"},
		{http.MethodDelete, "/suggestions/id-1"},
	} {
		w := serve(router, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

// Submit → invisible publicly → approve → visible publicly.
func TestSuggestionApprovalFlow(t *testing.T) {
	router, mock := newTestRouter(t)

	// 1. Public submission lands as inactive.
	mock.ExpectExec("INSERT INTO suggestions").
		WithArgs(sqlmock.AnyArg(), "Anonymous", "Kite flying", nil, nil,
			"Any", "Any", "Relaxation", false, "Clear", "inactive", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodPost, "/suggestions",
		strings.NewReader(`{"activity":"Kite flying","condition":"Clear","indoor":false}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(router, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Suggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "inactive", created.Status)
	id := created.SuggestionID

	// 2. The admin list sees it, the public list does not.
	mock.ExpectQuery("SELECT (.+) FROM suggestions ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(suggestionTestColumns).
			AddRow(id, "Anonymous", "Kite flying", nil, nil, "Any", "Any", "Relaxation", false, "Clear", "inactive", time.Now()))

	req = httptest.NewRequest(http.MethodGet, "/suggestions", nil)
	req.Header.Set(middleware.AdminTokenHeader, "test-token")
	w = serve(router, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)

	mock.ExpectQuery("SELECT (.+) FROM suggestions WHERE status = \\?").
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows(suggestionTestColumns))

	w = serve(router, httptest.NewRequest(http.MethodGet, "/suggestions/public", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), id)

	// 3. Approval flips the status.
	mock.ExpectExec("UPDATE suggestions SET status = \\?").
		WithArgs("active", id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM suggestions WHERE suggestion_id = \\?").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(suggestionTestColumns).
			AddRow(id, "Anonymous", "Kite flying", nil, nil, "Any", "Any", "Relaxation", false, "Clear", "active", time.Now()))

	req = httptest.NewRequest(http.MethodPut, "/suggestions/"+id+"/status",
		strings.NewReader(`{"status":"active"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AdminTokenHeader, "test-token")
	w = serve(router, req)
	require.Equal(t, http.StatusOK, w.Code)

	// 4. Now the public list includes it.
	mock.ExpectQuery("SELECT (.+) FROM suggestions WHERE status = \\?").
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows(suggestionTestColumns).
			AddRow(id, "Anonymous", "Kite flying", nil, nil, "Any", "Any", "Relaxation", false, "Clear", "active", time.Now()))

	w = serve(router, httptest.NewRequest(http.MethodGet, "/suggestions/public", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/suggestions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serve(router, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "x-admin-token")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

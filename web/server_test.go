package web

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmi-dev/bmi-platform/db"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.InitSchema(database))
	t.Cleanup(func() { _ = database.Close() })

	router, err := NewRouter(database, zerolog.Nop())
	require.NoError(t, err)
	return router
}

func TestDashboardPages(t *testing.T) {
	router := setupServer(t)

	for _, path := range []string{"/", "/crm", "/hrms"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "page %s", path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html", "page %s", path)
		assert.True(t, strings.Contains(w.Body.String(), "<nav>"), "page %s should include the nav", path)
	}
}

func TestAPIIsMounted(t *testing.T) {
	router := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateActivityDefaults(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/activities", map[string]any{
		"subject": "Kickoff call",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Kickoff call", decodeMap(t, w)["subject"])

	w = doJSON(t, router, http.MethodGet, "/api/activities", nil)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "task", list[0]["activity_type"])
	assert.Equal(t, "open", list[0]["status"])
	assert.Equal(t, "medium", list[0]["priority"])
	assert.Nil(t, list[0]["due_date"])
}

func TestCreateActivityDueDateRoundTrip(t *testing.T) {
	router, _ := setupRouter(t)

	due := "2026-09-15T14:30:00Z"
	w := doJSON(t, router, http.MethodPost, "/api/activities", map[string]any{
		"subject":  "Send proposal",
		"due_date": due,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/activities", nil)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	require.NotNil(t, list[0]["due_date"])

	want, err := time.Parse(time.RFC3339, due)
	require.NoError(t, err)
	got, err := time.Parse(time.RFC3339, list[0]["due_date"].(string))
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "due_date should render the same instant in ISO-8601")
}

func TestCreateActivityMissingSubject(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/activities", map[string]any{
		"description": "no subject supplied",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/activities", nil)
	assert.Empty(t, decodeList(t, w))
}

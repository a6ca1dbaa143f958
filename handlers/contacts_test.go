package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContact(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/contacts", map[string]any{
		"first_name": "Jane",
		"last_name":  "Doe",
		"email":      "jane@acme.com",
		"job_title":  "VP Engineering",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeMap(t, w)
	assert.Equal(t, "Jane Doe", body["name"])

	w = doJSON(t, router, http.MethodGet, "/api/contacts", nil)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "jane@acme.com", list[0]["email"])
	assert.Equal(t, "VP Engineering", list[0]["job_title"])
	assert.Nil(t, list[0]["account_id"])
}

func TestCreateContactMissingLastName(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/contacts", map[string]any{
		"first_name": "Jane",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeMap(t, w)["error"], "LastName")

	w = doJSON(t, router, http.MethodGet, "/api/contacts", nil)
	assert.Empty(t, decodeList(t, w))
}

func TestCreateContactWithAccountID(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/accounts", map[string]any{"name": "Acme"})
	require.Equal(t, http.StatusCreated, w.Code)
	accountID := decodeMap(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/api/contacts", map[string]any{
		"first_name": "Jane",
		"last_name":  "Doe",
		"account_id": accountID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/contacts", nil)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, accountID, list[0]["account_id"])
}

func TestCreateContactDanglingAccountID(t *testing.T) {
	router, _ := setupRouter(t)

	// foreign keys are not enforced; the insert is accepted
	w := doJSON(t, router, http.MethodPost, "/api/contacts", map[string]any{
		"first_name": "Jane",
		"last_name":  "Doe",
		"account_id": uuid.NewString(),
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

package db

import (
	"testing"

	"github.com/bmi-dev/bmi-platform/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccountDefaults(t *testing.T) {
	database := setupTestDB(t)
	defer func() { _ = database.Close() }()

	account := &models.Account{Name: "Acme Corporation"}
	require.NoError(t, CreateAccount(database, account))

	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, "unknown", account.CompanySize)
	assert.Equal(t, "prospect", account.AccountType)
	assert.Equal(t, "active", account.AccountStatus)
	assert.Equal(t, 50, account.HealthScore)
	assert.False(t, account.CreatedAt.IsZero())

	stored, err := GetAccount(database, account.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Acme Corporation", stored.Name)
	assert.Equal(t, 50, stored.HealthScore)
}

func TestGetAccountNotFound(t *testing.T) {
	database := setupTestDB(t)
	defer func() { _ = database.Close() }()

	account, err := GetAccount(database, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestListAccountsRoundTrip(t *testing.T) {
	database := setupTestDB(t)
	defer func() { _ = database.Close() }()

	first := &models.Account{Name: "Globex", Domain: "globex.com", Industry: "Manufacturing"}
	require.NoError(t, CreateAccount(database, first))
	second := &models.Account{Name: "Initech", Website: "https://initech.example"}
	require.NoError(t, CreateAccount(database, second))

	accounts, err := ListAccounts(database)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	byName := map[string]models.Account{}
	for _, a := range accounts {
		byName[a.Name] = a
	}
	assert.Equal(t, "globex.com", byName["Globex"].Domain)
	assert.Equal(t, "Manufacturing", byName["Globex"].Industry)
	assert.Equal(t, "https://initech.example", byName["Initech"].Website)
	assert.NotEqual(t, byName["Globex"].ID, byName["Initech"].ID)
}

func TestCreateContactWithDanglingAccountID(t *testing.T) {
	database := setupTestDB(t)
	defer func() { _ = database.Close() }()

	// Foreign keys are declared but not enforced by SQLite unless the
	// pragma is enabled; a dangling reference inserts normally.
	missing := uuid.New()
	contact := &models.Contact{FirstName: "Jane", LastName: "Doe", AccountID: &missing}
	require.NoError(t, CreateContact(database, contact))

	contacts, err := ListContacts(database)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	require.NotNil(t, contacts[0].AccountID)
	assert.Equal(t, missing, *contacts[0].AccountID)
}

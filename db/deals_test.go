package db

import (
	"testing"
	"time"

	"github.com/bmi-dev/bmi-platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDealDefaults(t *testing.T) {
	database := setupTestDB(t)
	defer func() { _ = database.Close() }()

	deal := &models.Deal{Name: "Acme Renewal"}
	require.NoError(t, CreateDeal(database, deal))

	assert.Equal(t, "qualification", deal.Stage)
	assert.Equal(t, 0.0, deal.Amount)
	assert.Equal(t, 0, deal.Probability)
	assert.Equal(t, "new_business", deal.DealType)
	assert.Equal(t, "healthy", deal.DealHealth)

	deals, err := ListDeals(database)
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "Acme Renewal", deals[0].Name)
	assert.Equal(t, "qualification", deals[0].Stage)
	assert.Nil(t, deals[0].AccountID)
	assert.Nil(t, deals[0].ExpectedCloseDate)
}

func TestCreateLeadDefaults(t *testing.T) {
	database := setupTestDB(t)
	defer func() { _ = database.Close() }()

	lead := &models.Lead{FirstName: "Sam", LastName: "Park"}
	require.NoError(t, CreateLead(database, lead))

	assert.Equal(t, "website", lead.LeadSource)
	assert.Equal(t, "active", lead.LeadStatus)
	assert.Equal(t, "new", lead.LeadStage)
	assert.Equal(t, 0, lead.LeadScore)
	assert.Equal(t, "cold", lead.Temperature)

	leads, err := ListLeads(database)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "cold", leads[0].Temperature)
}

func TestCreateActivityDueDateRoundTrip(t *testing.T) {
	database := setupTestDB(t)
	defer func() { _ = database.Close() }()

	due := time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)
	activity := &models.Activity{Subject: "Follow up call", DueDate: &due}
	require.NoError(t, CreateActivity(database, activity))

	assert.Equal(t, "task", activity.ActivityType)
	assert.Equal(t, "open", activity.Status)
	assert.Equal(t, "medium", activity.Priority)

	activities, err := ListActivities(database)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.NotNil(t, activities[0].DueDate)
	assert.True(t, activities[0].DueDate.Equal(due), "due date should survive storage unchanged")
}

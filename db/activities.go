// ABOUTME: Activity database operations
// ABOUTME: Handles activity creation and listing across related CRM records
package db

import (
	"database/sql"
	"time"

	"github.com/bmi-dev/bmi-platform/models"
	"github.com/google/uuid"
)

func CreateActivity(db *sql.DB, activity *models.Activity) error {
	activity.ID = uuid.New()
	now := time.Now().UTC()
	activity.CreatedAt = now
	activity.UpdatedAt = now

	if activity.ActivityType == "" {
		activity.ActivityType = models.ActivityTypeTask
	}
	if activity.Status == "" {
		activity.Status = models.ActivityStatusOpen
	}
	if activity.Priority == "" {
		activity.Priority = models.PriorityMedium
	}

	_, err := db.Exec(`
		INSERT INTO activities (id, subject, description, activity_type, status, priority,
			due_date, completed_date, account_id, contact_id, lead_id, deal_id, owner_id,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, activity.ID.String(), activity.Subject, activity.Description, activity.ActivityType,
		activity.Status, activity.Priority, activity.DueDate, activity.CompletedDate,
		uuidStr(activity.AccountID), uuidStr(activity.ContactID), uuidStr(activity.LeadID),
		uuidStr(activity.DealID), uuidStr(activity.OwnerID), activity.CreatedAt, activity.UpdatedAt)

	return err
}

func ListActivities(db *sql.DB) ([]models.Activity, error) {
	rows, err := db.Query(`
		SELECT id, subject, description, activity_type, status, priority, due_date, completed_date,
			account_id, contact_id, lead_id, deal_id, owner_id, created_at, updated_at
		FROM activities ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		var dueDate, completedDate sql.NullTime
		var accountID, contactID, leadID, dealID, ownerID sql.NullString

		if err := rows.Scan(&a.ID, &a.Subject, &a.Description, &a.ActivityType, &a.Status,
			&a.Priority, &dueDate, &completedDate, &accountID, &contactID, &leadID, &dealID,
			&ownerID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}

		a.DueDate = timePtr(dueDate)
		a.CompletedDate = timePtr(completedDate)
		a.AccountID = uuidPtr(accountID)
		a.ContactID = uuidPtr(contactID)
		a.LeadID = uuidPtr(leadID)
		a.DealID = uuidPtr(dealID)
		a.OwnerID = uuidPtr(ownerID)
		activities = append(activities, a)
	}

	return activities, rows.Err()
}

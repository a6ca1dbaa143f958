// ABOUTME: Contact database operations
// ABOUTME: Handles contact creation and listing
package db

import (
	"database/sql"
	"time"

	"github.com/bmi-dev/bmi-platform/models"
	"github.com/google/uuid"
)

func CreateContact(db *sql.DB, contact *models.Contact) error {
	contact.ID = uuid.New()
	now := time.Now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if contact.ContactStatus == "" {
		contact.ContactStatus = models.AccountStatusActive
	}

	_, err := db.Exec(`
		INSERT INTO contacts (id, first_name, last_name, email, phone, job_title, department,
			account_id, is_primary, contact_status, linkedin_url, twitter_handle, owner_id,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, contact.ID.String(), contact.FirstName, contact.LastName, contact.Email, contact.Phone,
		contact.JobTitle, contact.Department, uuidStr(contact.AccountID), contact.IsPrimary,
		contact.ContactStatus, contact.LinkedinURL, contact.TwitterHandle, uuidStr(contact.OwnerID),
		contact.CreatedAt, contact.UpdatedAt)

	return err
}

func ListContacts(db *sql.DB) ([]models.Contact, error) {
	rows, err := db.Query(`
		SELECT id, first_name, last_name, email, phone, job_title, department, account_id,
			is_primary, contact_status, linkedin_url, twitter_handle, owner_id, created_at, updated_at
		FROM contacts ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		var accountID, ownerID sql.NullString

		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.JobTitle,
			&c.Department, &accountID, &c.IsPrimary, &c.ContactStatus, &c.LinkedinURL,
			&c.TwitterHandle, &ownerID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}

		c.AccountID = uuidPtr(accountID)
		c.OwnerID = uuidPtr(ownerID)
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

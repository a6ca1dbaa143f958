// ABOUTME: Lead database operations
// ABOUTME: Handles lead creation and listing with pipeline defaults
package db

import (
	"database/sql"
	"time"

	"github.com/bmi-dev/bmi-platform/models"
	"github.com/google/uuid"
)

func CreateLead(db *sql.DB, lead *models.Lead) error {
	lead.ID = uuid.New()
	now := time.Now().UTC()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	if lead.LeadSource == "" {
		lead.LeadSource = models.LeadSourceWebsite
	}
	if lead.LeadStatus == "" {
		lead.LeadStatus = models.LeadStatusActive
	}
	if lead.LeadStage == "" {
		lead.LeadStage = models.LeadStageNew
	}
	if lead.Temperature == "" {
		lead.Temperature = models.TemperatureCold
	}

	_, err := db.Exec(`
		INSERT INTO leads (id, first_name, last_name, email, phone, company, job_title,
			lead_source, lead_status, lead_stage, lead_score, temperature, owner_id,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, lead.ID.String(), lead.FirstName, lead.LastName, lead.Email, lead.Phone, lead.Company,
		lead.JobTitle, lead.LeadSource, lead.LeadStatus, lead.LeadStage, lead.LeadScore,
		lead.Temperature, uuidStr(lead.OwnerID), lead.CreatedAt, lead.UpdatedAt)

	return err
}

func ListLeads(db *sql.DB) ([]models.Lead, error) {
	rows, err := db.Query(`
		SELECT id, first_name, last_name, email, phone, company, job_title, lead_source,
			lead_status, lead_stage, lead_score, temperature, owner_id, created_at, updated_at
		FROM leads ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		var ownerID sql.NullString

		if err := rows.Scan(&l.ID, &l.FirstName, &l.LastName, &l.Email, &l.Phone, &l.Company,
			&l.JobTitle, &l.LeadSource, &l.LeadStatus, &l.LeadStage, &l.LeadScore, &l.Temperature,
			&ownerID, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}

		l.OwnerID = uuidPtr(ownerID)
		leads = append(leads, l)
	}

	return leads, rows.Err()
}

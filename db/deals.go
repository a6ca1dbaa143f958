// ABOUTME: Deal database operations
// ABOUTME: Handles deal creation and listing with stage defaults
package db

import (
	"database/sql"
	"time"

	"github.com/bmi-dev/bmi-platform/models"
	"github.com/google/uuid"
)

func CreateDeal(db *sql.DB, deal *models.Deal) error {
	deal.ID = uuid.New()
	now := time.Now().UTC()
	deal.CreatedAt = now
	deal.UpdatedAt = now

	if deal.Stage == "" {
		deal.Stage = models.StageQualification
	}
	if deal.DealType == "" {
		deal.DealType = models.DealTypeNewBusiness
	}
	if deal.DealHealth == "" {
		deal.DealHealth = models.DealHealthHealthy
	}

	_, err := db.Exec(`
		INSERT INTO deals (id, name, amount, stage, probability, expected_close_date,
			actual_close_date, account_id, contact_id, owner_id, deal_type, deal_health,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, deal.ID.String(), deal.Name, deal.Amount, deal.Stage, deal.Probability,
		deal.ExpectedCloseDate, deal.ActualCloseDate, uuidStr(deal.AccountID),
		uuidStr(deal.ContactID), uuidStr(deal.OwnerID), deal.DealType, deal.DealHealth,
		deal.CreatedAt, deal.UpdatedAt)

	return err
}

func ListDeals(db *sql.DB) ([]models.Deal, error) {
	rows, err := db.Query(`
		SELECT id, name, amount, stage, probability, expected_close_date, actual_close_date,
			account_id, contact_id, owner_id, deal_type, deal_health, created_at, updated_at
		FROM deals ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deals []models.Deal
	for rows.Next() {
		var d models.Deal
		var expectedClose, actualClose sql.NullTime
		var accountID, contactID, ownerID sql.NullString

		if err := rows.Scan(&d.ID, &d.Name, &d.Amount, &d.Stage, &d.Probability, &expectedClose,
			&actualClose, &accountID, &contactID, &ownerID, &d.DealType, &d.DealHealth,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}

		d.ExpectedCloseDate = timePtr(expectedClose)
		d.ActualCloseDate = timePtr(actualClose)
		d.AccountID = uuidPtr(accountID)
		d.ContactID = uuidPtr(contactID)
		d.OwnerID = uuidPtr(ownerID)
		deals = append(deals, d)
	}

	return deals, rows.Err()
}

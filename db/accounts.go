// ABOUTME: Account database operations
// ABOUTME: Handles account creation, listing, and lookup by id
package db

import (
	"database/sql"
	"time"

	"github.com/bmi-dev/bmi-platform/models"
	"github.com/google/uuid"
)

func CreateAccount(db *sql.DB, account *models.Account) error {
	account.ID = uuid.New()
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	if account.CompanySize == "" {
		account.CompanySize = models.CompanySizeUnknown
	}
	if account.AccountType == "" {
		account.AccountType = models.AccountTypeProspect
	}
	if account.AccountStatus == "" {
		account.AccountStatus = models.AccountStatusActive
	}
	if account.HealthScore == 0 {
		account.HealthScore = models.DefaultHealthScore
	}

	_, err := db.Exec(`
		INSERT INTO accounts (id, name, domain, industry, company_size, annual_revenue, website, phone,
			description, address, billing_address, account_type, account_status, health_score, owner_id,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, account.ID.String(), account.Name, account.Domain, account.Industry, account.CompanySize,
		account.AnnualRevenue, account.Website, account.Phone, account.Description, account.Address,
		account.BillingAddress, account.AccountType, account.AccountStatus, account.HealthScore,
		uuidStr(account.OwnerID), account.CreatedAt, account.UpdatedAt)

	return err
}

const accountColumns = `id, name, domain, industry, company_size, annual_revenue, website, phone,
	description, address, billing_address, account_type, account_status, health_score, owner_id,
	created_at, updated_at`

func scanAccount(scan func(dest ...any) error) (*models.Account, error) {
	a := &models.Account{}
	var revenue sql.NullFloat64
	var ownerID sql.NullString

	err := scan(&a.ID, &a.Name, &a.Domain, &a.Industry, &a.CompanySize, &revenue, &a.Website,
		&a.Phone, &a.Description, &a.Address, &a.BillingAddress, &a.AccountType, &a.AccountStatus,
		&a.HealthScore, &ownerID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	a.AnnualRevenue = revenue.Float64
	a.OwnerID = uuidPtr(ownerID)
	return a, nil
}

func GetAccount(db *sql.DB, id uuid.UUID) (*models.Account, error) {
	row := db.QueryRow(`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id.String())
	account, err := scanAccount(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func ListAccounts(db *sql.DB) ([]models.Account, error) {
	rows, err := db.Query(`SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		a, err := scanAccount(rows.Scan)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}

	return accounts, rows.Err()
}

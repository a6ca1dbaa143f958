// ABOUTME: Account REST handlers
// ABOUTME: Implements list, create, and get-by-id for accounts
package handlers

import (
	"net/http"

	"github.com/bmi-dev/bmi-platform/db"
	"github.com/bmi-dev/bmi-platform/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateAccountInput is the client-settable subset of an account.
type CreateAccountInput struct {
	Name     string `json:"name" binding:"required"`
	Domain   string `json:"domain"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Phone    string `json:"phone"`
}

type accountRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Domain      string  `json:"domain"`
	Industry    string  `json:"industry"`
	Website     string  `json:"website"`
	Phone       string  `json:"phone"`
	AccountType string  `json:"account_type"`
	HealthScore int     `json:"health_score"`
	CreatedAt   *string `json:"created_at"`
}

func accountToRecord(a *models.Account) accountRecord {
	created := fmtTime(a.CreatedAt)
	return accountRecord{
		ID:          a.ID.String(),
		Name:        a.Name,
		Domain:      a.Domain,
		Industry:    a.Industry,
		Website:     a.Website,
		Phone:       a.Phone,
		AccountType: a.AccountType,
		HealthScore: a.HealthScore,
		CreatedAt:   &created,
	}
}

func (h *Handler) ListAccounts(c *gin.Context) {
	accounts, err := db.ListAccounts(h.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records := make([]accountRecord, 0, len(accounts))
	for i := range accounts {
		records = append(records, accountToRecord(&accounts[i]))
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) CreateAccount(c *gin.Context) {
	var input CreateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account := &models.Account{
		Name:     input.Name,
		Domain:   input.Domain,
		Industry: input.Industry,
		Website:  input.Website,
		Phone:    input.Phone,
	}
	if err := db.CreateAccount(h.db, account); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": account.ID.String(), "name": account.Name})
}

func (h *Handler) GetAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}

	account, err := db.GetAccount(h.db, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if account == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}

	record := accountToRecord(account)
	c.JSON(http.StatusOK, gin.H{
		"id":           record.ID,
		"name":         record.Name,
		"domain":       record.Domain,
		"industry":     record.Industry,
		"website":      record.Website,
		"phone":        record.Phone,
		"description":  account.Description,
		"account_type": record.AccountType,
		"health_score": record.HealthScore,
		"created_at":   record.CreatedAt,
	})
}

// ABOUTME: Deal REST handlers
// ABOUTME: Implements list and create for deals
package handlers

import (
	"net/http"

	"github.com/bmi-dev/bmi-platform/db"
	"github.com/bmi-dev/bmi-platform/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateDealInput struct {
	Name        string     `json:"name" binding:"required"`
	Amount      float64    `json:"amount"`
	Stage       string     `json:"stage"`
	Probability int        `json:"probability"`
	AccountID   *uuid.UUID `json:"account_id"`
	ContactID   *uuid.UUID `json:"contact_id"`
}

type dealRecord struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Amount            float64 `json:"amount"`
	Stage             string  `json:"stage"`
	Probability       int     `json:"probability"`
	ExpectedCloseDate *string `json:"expected_close_date"`
	AccountID         *string `json:"account_id"`
	ContactID         *string `json:"contact_id"`
	DealType          string  `json:"deal_type"`
	DealHealth        string  `json:"deal_health"`
	CreatedAt         *string `json:"created_at"`
}

func (h *Handler) ListDeals(c *gin.Context) {
	deals, err := db.ListDeals(h.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records := make([]dealRecord, 0, len(deals))
	for i := range deals {
		d := &deals[i]
		created := fmtTime(d.CreatedAt)
		records = append(records, dealRecord{
			ID:                d.ID.String(),
			Name:              d.Name,
			Amount:            d.Amount,
			Stage:             d.Stage,
			Probability:       d.Probability,
			ExpectedCloseDate: fmtTimePtr(d.ExpectedCloseDate),
			AccountID:         idPtr(d.AccountID),
			ContactID:         idPtr(d.ContactID),
			DealType:          d.DealType,
			DealHealth:        d.DealHealth,
			CreatedAt:         &created,
		})
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) CreateDeal(c *gin.Context) {
	var input CreateDealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal := &models.Deal{
		Name:        input.Name,
		Amount:      input.Amount,
		Stage:       input.Stage,
		Probability: input.Probability,
		AccountID:   input.AccountID,
		ContactID:   input.ContactID,
	}
	if err := db.CreateDeal(h.db, deal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": deal.ID.String(), "name": deal.Name})
}

// ABOUTME: Contact REST handlers
// ABOUTME: Implements list and create for contacts
package handlers

import (
	"net/http"

	"github.com/bmi-dev/bmi-platform/db"
	"github.com/bmi-dev/bmi-platform/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateContactInput struct {
	FirstName string     `json:"first_name" binding:"required"`
	LastName  string     `json:"last_name" binding:"required"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	JobTitle  string     `json:"job_title"`
	AccountID *uuid.UUID `json:"account_id"`
}

type contactRecord struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	JobTitle  string  `json:"job_title"`
	AccountID *string `json:"account_id"`
	CreatedAt *string `json:"created_at"`
}

func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := db.ListContacts(h.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records := make([]contactRecord, 0, len(contacts))
	for i := range contacts {
		ct := &contacts[i]
		created := fmtTime(ct.CreatedAt)
		records = append(records, contactRecord{
			ID:        ct.ID.String(),
			FirstName: ct.FirstName,
			LastName:  ct.LastName,
			Email:     ct.Email,
			Phone:     ct.Phone,
			JobTitle:  ct.JobTitle,
			AccountID: idPtr(ct.AccountID),
			CreatedAt: &created,
		})
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) CreateContact(c *gin.Context) {
	var input CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := &models.Contact{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		JobTitle:  input.JobTitle,
		AccountID: input.AccountID,
	}
	if err := db.CreateContact(h.db, contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": contact.ID.String(), "name": contact.FullName()})
}

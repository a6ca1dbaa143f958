// ABOUTME: Activity REST handlers
// ABOUTME: Implements list and create for activities
package handlers

import (
	"net/http"
	"time"

	"github.com/bmi-dev/bmi-platform/db"
	"github.com/bmi-dev/bmi-platform/models"
	"github.com/gin-gonic/gin"
)

type CreateActivityInput struct {
	Subject      string     `json:"subject" binding:"required"`
	Description  string     `json:"description"`
	ActivityType string     `json:"activity_type"`
	Priority     string     `json:"priority"`
	DueDate      *time.Time `json:"due_date"`
}

type activityRecord struct {
	ID           string  `json:"id"`
	Subject      string  `json:"subject"`
	Description  string  `json:"description"`
	ActivityType string  `json:"activity_type"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
	DueDate      *string `json:"due_date"`
	AccountID    *string `json:"account_id"`
	ContactID    *string `json:"contact_id"`
	LeadID       *string `json:"lead_id"`
	DealID       *string `json:"deal_id"`
	CreatedAt    *string `json:"created_at"`
}

func (h *Handler) ListActivities(c *gin.Context) {
	activities, err := db.ListActivities(h.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records := make([]activityRecord, 0, len(activities))
	for i := range activities {
		a := &activities[i]
		created := fmtTime(a.CreatedAt)
		records = append(records, activityRecord{
			ID:           a.ID.String(),
			Subject:      a.Subject,
			Description:  a.Description,
			ActivityType: a.ActivityType,
			Status:       a.Status,
			Priority:     a.Priority,
			DueDate:      fmtTimePtr(a.DueDate),
			AccountID:    idPtr(a.AccountID),
			ContactID:    idPtr(a.ContactID),
			LeadID:       idPtr(a.LeadID),
			DealID:       idPtr(a.DealID),
			CreatedAt:    &created,
		})
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) CreateActivity(c *gin.Context) {
	var input CreateActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity := &models.Activity{
		Subject:      input.Subject,
		Description:  input.Description,
		ActivityType: input.ActivityType,
		Priority:     input.Priority,
		DueDate:      input.DueDate,
	}
	if err := db.CreateActivity(h.db, activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": activity.ID.String(), "subject": activity.Subject})
}

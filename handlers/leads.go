// ABOUTME: Lead REST handlers
// ABOUTME: Implements list and create for leads
package handlers

import (
	"net/http"

	"github.com/bmi-dev/bmi-platform/db"
	"github.com/bmi-dev/bmi-platform/models"
	"github.com/gin-gonic/gin"
)

type CreateLeadInput struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Company    string `json:"company"`
	JobTitle   string `json:"job_title"`
	LeadSource string `json:"lead_source"`
}

type leadRecord struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Company     string  `json:"company"`
	JobTitle    string  `json:"job_title"`
	LeadSource  string  `json:"lead_source"`
	LeadStatus  string  `json:"lead_status"`
	LeadStage   string  `json:"lead_stage"`
	LeadScore   int     `json:"lead_score"`
	Temperature string  `json:"temperature"`
	CreatedAt   *string `json:"created_at"`
}

func (h *Handler) ListLeads(c *gin.Context) {
	leads, err := db.ListLeads(h.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records := make([]leadRecord, 0, len(leads))
	for i := range leads {
		l := &leads[i]
		created := fmtTime(l.CreatedAt)
		records = append(records, leadRecord{
			ID:          l.ID.String(),
			FirstName:   l.FirstName,
			LastName:    l.LastName,
			Email:       l.Email,
			Phone:       l.Phone,
			Company:     l.Company,
			JobTitle:    l.JobTitle,
			LeadSource:  l.LeadSource,
			LeadStatus:  l.LeadStatus,
			LeadStage:   l.LeadStage,
			LeadScore:   l.LeadScore,
			Temperature: l.Temperature,
			CreatedAt:   &created,
		})
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) CreateLead(c *gin.Context) {
	var input CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead := &models.Lead{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		Company:    input.Company,
		JobTitle:   input.JobTitle,
		LeadSource: input.LeadSource,
	}
	if err := db.CreateLead(h.db, lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": lead.ID.String(), "name": lead.FullName()})
}

// ABOUTME: REST API handler wiring and shared response helpers
// ABOUTME: Registers entity routes under /api and maps errors to status codes
package handlers

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler bundles the REST endpoints over one database handle.
type Handler struct {
	db *sql.DB
}

func New(database *sql.DB) *Handler {
	return &Handler{db: database}
}

// Register mounts all API routes on the given group.
func (h *Handler) Register(api *gin.RouterGroup) {
	api.GET("/accounts", h.ListAccounts)
	api.POST("/accounts", h.CreateAccount)
	api.GET("/accounts/:id", h.GetAccount)

	api.GET("/contacts", h.ListContacts)
	api.POST("/contacts", h.CreateContact)

	api.GET("/leads", h.ListLeads)
	api.POST("/leads", h.CreateLead)

	api.GET("/deals", h.ListDeals)
	api.POST("/deals", h.CreateDeal)

	api.GET("/activities", h.ListActivities)
	api.POST("/activities", h.CreateActivity)

	api.GET("/employees", h.ListEmployees)
	api.GET("/hrms/metrics/employees", h.EmployeeMetrics)
}

// fmtTime renders a timestamp in the ISO-8601 form the clients expect.
func fmtTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func fmtTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := fmtTime(*t)
	return &s
}

func idPtr(u *uuid.UUID) *string {
	if u == nil {
		return nil
	}
	s := u.String()
	return &s
}

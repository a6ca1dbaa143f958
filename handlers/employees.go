// ABOUTME: Employee REST handlers and HRMS metrics endpoint
// ABOUTME: Implements employee listing and the aggregate report
package handlers

import (
	"net/http"
	"strconv"

	"github.com/bmi-dev/bmi-platform/db"
	"github.com/gin-gonic/gin"
)

type employeeRecord struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	FirstName            string  `json:"first_name"`
	LastName             string  `json:"last_name"`
	Email                string  `json:"email"`
	Phone                string  `json:"phone"`
	Department           string  `json:"department"`
	Position             string  `json:"position"`
	JobTitle             string  `json:"job_title"`
	HireDate             *string `json:"hire_date"`
	Salary               float64 `json:"salary"`
	Status               string  `json:"status"`
	WorkLocation         string  `json:"work_location"`
	AnnualLeaveBalance   int     `json:"annual_leave_balance"`
	SickLeaveBalance     int     `json:"sick_leave_balance"`
	PersonalLeaveBalance int     `json:"personal_leave_balance"`
	CreatedAt            *string `json:"created_at"`
}

func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := db.ListEmployees(h.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records := make([]employeeRecord, 0, len(employees))
	for i := range employees {
		e := &employees[i]
		hired := fmtTime(e.HireDate)
		created := fmtTime(e.CreatedAt)
		records = append(records, employeeRecord{
			ID:                   e.ID.String(),
			EmployeeID:           e.EmployeeID,
			FirstName:            e.FirstName,
			LastName:             e.LastName,
			Email:                e.Email,
			Phone:                e.Phone,
			Department:           e.Department,
			Position:             e.Position,
			JobTitle:             e.JobTitle,
			HireDate:             &hired,
			Salary:               e.Salary,
			Status:               e.Status,
			WorkLocation:         e.WorkLocation,
			AnnualLeaveBalance:   e.AnnualLeaveBalance,
			SickLeaveBalance:     e.SickLeaveBalance,
			PersonalLeaveBalance: e.PersonalLeaveBalance,
			CreatedAt:            &created,
		})
	}
	c.JSON(http.StatusOK, records)
}

// EmployeeMetrics serves the HRMS dashboard report. Counts go out as
// decimal strings; that is the wire contract the dashboards were built
// against.
func (h *Handler) EmployeeMetrics(c *gin.Context) {
	metrics, err := db.EmployeeMetrics(h.db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	departmentCounts := make(map[string]string, len(metrics.DepartmentCounts))
	for department, count := range metrics.DepartmentCounts {
		departmentCounts[department] = strconv.Itoa(count)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalEmployees":   strconv.Itoa(metrics.Total),
		"activeEmployees":  strconv.Itoa(metrics.Active),
		"departmentCounts": departmentCounts,
		"averageSalary":    metrics.AverageSalary,
	})
}

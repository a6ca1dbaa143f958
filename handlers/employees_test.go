package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/bmi-dev/bmi-platform/db"
	"github.com/bmi-dev/bmi-platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmployees(t *testing.T) {
	router, database := setupRouter(t)

	e := &models.Employee{
		EmployeeID: "EMP-001",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		Department: "Eng",
		Position:   "engineer",
		JobTitle:   "Staff Engineer",
		HireDate:   time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
		Salary:     120000,
	}
	require.NoError(t, db.CreateEmployee(database, e))

	w := doJSON(t, router, http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "EMP-001", list[0]["employee_id"])
	assert.Equal(t, "active", list[0]["status"])
	assert.Equal(t, float64(120000), list[0]["salary"])
	assert.Equal(t, float64(25), list[0]["annual_leave_balance"])
	assert.NotEmpty(t, list[0]["hire_date"])
}

func TestEmployeeMetricsEmpty(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/hrms/metrics/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)

	assert.Equal(t, "0", body["totalEmployees"])
	assert.Equal(t, "0", body["activeEmployees"])
	assert.Equal(t, map[string]any{}, body["departmentCounts"])
	assert.Equal(t, float64(0), body["averageSalary"])
}

func TestEmployeeMetricsGrouping(t *testing.T) {
	router, database := setupRouter(t)

	hire := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	departments := []string{"Eng", "Eng", "Eng", "Sales", "Sales", ""}
	for i, dept := range departments {
		e := &models.Employee{
			EmployeeID: "EMP-00" + string(rune('1'+i)),
			FirstName:  "Test",
			LastName:   "Employee",
			Email:      string(rune('a'+i)) + "@example.com",
			Department: dept,
			Position:   "analyst",
			JobTitle:   "Analyst",
			HireDate:   hire,
			Salary:     60000,
		}
		require.NoError(t, db.CreateEmployee(database, e))
	}

	w := doJSON(t, router, http.MethodGet, "/api/hrms/metrics/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)

	assert.Equal(t, "6", body["totalEmployees"])
	assert.Equal(t, "6", body["activeEmployees"])
	assert.Equal(t, map[string]any{"Eng": "3", "Sales": "2"}, body["departmentCounts"])
	assert.Equal(t, float64(60000), body["averageSalary"])
}

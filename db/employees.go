// ABOUTME: Employee database operations and HRMS metrics aggregation
// ABOUTME: Handles employee creation, listing, and the department/salary report
package db

import (
	"database/sql"
	"time"

	"github.com/bmi-dev/bmi-platform/models"
	"github.com/google/uuid"
)

func CreateEmployee(db *sql.DB, employee *models.Employee) error {
	employee.ID = uuid.New()
	now := time.Now().UTC()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	if employee.Status == "" {
		employee.Status = models.EmployeeStatusActive
	}
	if employee.WorkLocation == "" {
		employee.WorkLocation = models.WorkLocationOffice
	}
	if employee.AnnualLeaveBalance == 0 {
		employee.AnnualLeaveBalance = 25
	}
	if employee.SickLeaveBalance == 0 {
		employee.SickLeaveBalance = 10
	}
	if employee.PersonalLeaveBalance == 0 {
		employee.PersonalLeaveBalance = 5
	}

	_, err := db.Exec(`
		INSERT INTO employees (id, employee_id, first_name, last_name, email, phone, department,
			position, job_title, hire_date, salary, status, work_location, annual_leave_balance,
			sick_leave_balance, personal_leave_balance, manager_id, emergency_contact_name,
			emergency_contact_phone, emergency_contact_relationship, address, overtime_eligible,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, employee.ID.String(), employee.EmployeeID, employee.FirstName, employee.LastName,
		employee.Email, employee.Phone, employee.Department, employee.Position, employee.JobTitle,
		employee.HireDate, employee.Salary, employee.Status, employee.WorkLocation,
		employee.AnnualLeaveBalance, employee.SickLeaveBalance, employee.PersonalLeaveBalance,
		uuidStr(employee.ManagerID), employee.EmergencyContactName, employee.EmergencyContactPhone,
		employee.EmergencyContactRelationship, employee.Address, employee.OvertimeEligible,
		employee.CreatedAt, employee.UpdatedAt)

	return err
}

func ListEmployees(db *sql.DB) ([]models.Employee, error) {
	rows, err := db.Query(`
		SELECT id, employee_id, first_name, last_name, email, phone, department, position,
			job_title, hire_date, salary, status, work_location, annual_leave_balance,
			sick_leave_balance, personal_leave_balance, manager_id, emergency_contact_name,
			emergency_contact_phone, emergency_contact_relationship, address, overtime_eligible,
			created_at, updated_at
		FROM employees ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var e models.Employee
		var managerID sql.NullString

		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
			&e.Department, &e.Position, &e.JobTitle, &e.HireDate, &e.Salary, &e.Status,
			&e.WorkLocation, &e.AnnualLeaveBalance, &e.SickLeaveBalance, &e.PersonalLeaveBalance,
			&managerID, &e.EmergencyContactName, &e.EmergencyContactPhone,
			&e.EmergencyContactRelationship, &e.Address, &e.OvertimeEligible,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}

		e.ManagerID = uuidPtr(managerID)
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// EmployeeMetrics aggregates the employee table: total headcount, active
// headcount, per-department counts (blank departments excluded from the
// grouping but counted in the total), and mean salary across all rows.
// An empty table yields zeros rather than a division error.
func EmployeeMetrics(db *sql.DB) (*models.EmployeeMetrics, error) {
	metrics := &models.EmployeeMetrics{
		DepartmentCounts: make(map[string]int),
	}

	err := db.QueryRow(`
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(salary), 0)
		FROM employees
	`).Scan(&metrics.Total, &metrics.Active, &metrics.AverageSalary)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT department, COUNT(*)
		FROM employees
		WHERE department IS NOT NULL AND department != ''
		GROUP BY department
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var department string
		var count int
		if err := rows.Scan(&department, &count); err != nil {
			return nil, err
		}
		metrics.DepartmentCounts[department] = count
	}

	return metrics, rows.Err()
}

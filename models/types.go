// ABOUTME: Data models for CRM and HRMS entities
// ABOUTME: Defines User, Account, Contact, Lead, Deal, Activity, and Employee structs
package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	Department   string    `json:"department,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Account struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Domain         string     `json:"domain,omitempty"`
	Industry       string     `json:"industry,omitempty"`
	CompanySize    string     `json:"company_size"`
	AnnualRevenue  float64    `json:"annual_revenue,omitempty"`
	Website        string     `json:"website,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Description    string     `json:"description,omitempty"`
	Address        string     `json:"address,omitempty"`
	BillingAddress string     `json:"billing_address,omitempty"`
	AccountType    string     `json:"account_type"`
	AccountStatus  string     `json:"account_status"`
	HealthScore    int        `json:"health_score"`
	OwnerID        *uuid.UUID `json:"owner_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type Contact struct {
	ID            uuid.UUID  `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	JobTitle      string     `json:"job_title,omitempty"`
	Department    string     `json:"department,omitempty"`
	AccountID     *uuid.UUID `json:"account_id,omitempty"`
	IsPrimary     bool       `json:"is_primary"`
	ContactStatus string     `json:"contact_status"`
	LinkedinURL   string     `json:"linkedin_url,omitempty"`
	TwitterHandle string     `json:"twitter_handle,omitempty"`
	OwnerID       *uuid.UUID `json:"owner_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// FullName composes the display label used by create responses.
func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

type Lead struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Company     string     `json:"company,omitempty"`
	JobTitle    string     `json:"job_title,omitempty"`
	LeadSource  string     `json:"lead_source"`
	LeadStatus  string     `json:"lead_status"`
	LeadStage   string     `json:"lead_stage"`
	LeadScore   int        `json:"lead_score"`
	Temperature string     `json:"temperature"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (l *Lead) FullName() string {
	return l.FirstName + " " + l.LastName
}

type Deal struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	Amount            float64    `json:"amount"`
	Stage             string     `json:"stage"`
	Probability       int        `json:"probability"`
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
	ActualCloseDate   *time.Time `json:"actual_close_date,omitempty"`
	AccountID         *uuid.UUID `json:"account_id,omitempty"`
	ContactID         *uuid.UUID `json:"contact_id,omitempty"`
	OwnerID           *uuid.UUID `json:"owner_id,omitempty"`
	DealType          string     `json:"deal_type"`
	DealHealth        string     `json:"deal_health"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type Activity struct {
	ID            uuid.UUID  `json:"id"`
	Subject       string     `json:"subject"`
	Description   string     `json:"description,omitempty"`
	ActivityType  string     `json:"activity_type"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	AccountID     *uuid.UUID `json:"account_id,omitempty"`
	ContactID     *uuid.UUID `json:"contact_id,omitempty"`
	LeadID        *uuid.UUID `json:"lead_id,omitempty"`
	DealID        *uuid.UUID `json:"deal_id,omitempty"`
	OwnerID       *uuid.UUID `json:"owner_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type Employee struct {
	ID                           uuid.UUID  `json:"id"`
	EmployeeID                   string     `json:"employee_id"`
	FirstName                    string     `json:"first_name"`
	LastName                     string     `json:"last_name"`
	Email                        string     `json:"email"`
	Phone                        string     `json:"phone,omitempty"`
	Department                   string     `json:"department,omitempty"`
	Position                     string     `json:"position"`
	JobTitle                     string     `json:"job_title"`
	HireDate                     time.Time  `json:"hire_date"`
	Salary                       float64    `json:"salary"`
	Status                       string     `json:"status"`
	WorkLocation                 string     `json:"work_location"`
	AnnualLeaveBalance           int        `json:"annual_leave_balance"`
	SickLeaveBalance             int        `json:"sick_leave_balance"`
	PersonalLeaveBalance         int        `json:"personal_leave_balance"`
	ManagerID                    *uuid.UUID `json:"manager_id,omitempty"`
	EmergencyContactName         string     `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string     `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship string     `json:"emergency_contact_relationship,omitempty"`
	Address                      string     `json:"address,omitempty"`
	OvertimeEligible             bool       `json:"overtime_eligible"`
	CreatedAt                    time.Time  `json:"created_at"`
	UpdatedAt                    time.Time  `json:"updated_at"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// EmployeeMetrics is the aggregate report over the employees table.
type EmployeeMetrics struct {
	Total            int
	Active           int
	DepartmentCounts map[string]int
	AverageSalary    float64
}

// Deal stages are free-form strings; these constants cover the values
// the dashboards know about.
const (
	StageQualification = "qualification"
	StageProposal      = "proposal"
	StageNegotiation   = "negotiation"
	StageClosedWon     = "closed_won"
	StageClosedLost    = "closed_lost"
)

// Lead defaults.
const (
	LeadSourceWebsite = "website"
	LeadStatusActive  = "active"
	LeadStageNew      = "new"
	TemperatureCold   = "cold"
	TemperatureWarm   = "warm"
	TemperatureHot    = "hot"
)

// Activity defaults.
const (
	ActivityTypeTask   = "task"
	ActivityStatusOpen = "open"
	PriorityLow        = "low"
	PriorityMedium     = "medium"
	PriorityHigh       = "high"
)

// Account defaults.
const (
	AccountTypeProspect = "prospect"
	AccountTypeCustomer = "customer"
	AccountStatusActive = "active"
	CompanySizeUnknown  = "unknown"
	DefaultHealthScore  = 50
)

// Deal defaults.
const (
	DealTypeNewBusiness = "new_business"
	DealHealthHealthy   = "healthy"
)

// Employee defaults.
const (
	EmployeeStatusActive = "active"
	WorkLocationOffice   = "office"
)

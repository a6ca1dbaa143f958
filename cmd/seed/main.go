// ABOUTME: Seed utility that loads demo CRM and HRMS data into a database.
// ABOUTME: Creates a demo user, sample accounts, pipeline records, and an employee roster.

package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/bmi-dev/bmi-platform/db"
	"github.com/bmi-dev/bmi-platform/models"
)

func main() {
	dbPath := flag.String("db", filepath.Join(xdg.DataHome, "bmi", "bmi.db"), "Path to database file")
	flag.Parse()

	if err := seed(*dbPath); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Println("Seed completed successfully")
}

func seed(dbPath string) error {
	database, err := db.OpenDatabase(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = database.Close() }()

	if existing, err := db.GetUserByEmail(database, "demo@bmi.dev"); err != nil {
		return err
	} else if existing != nil {
		return fmt.Errorf("database already seeded (demo@bmi.dev exists)")
	}

	owner := &models.User{
		Email:     "demo@bmi.dev",
		FirstName: "Demo",
		LastName:  "User",
		Role:      "admin",
		IsActive:  true,
	}
	if err := db.CreateUser(database, owner); err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}
	log.Printf("Created demo user %s", owner.Email)

	accounts := []*models.Account{
		{
			Name:          "Acme Corporation",
			Domain:        "acme.com",
			Industry:      "Manufacturing",
			CompanySize:   "1000-5000",
			AnnualRevenue: 250_000_000,
			Website:       "https://acme.com",
			Phone:         "+1-555-0100",
			AccountType:   models.AccountTypeCustomer,
			HealthScore:   85,
			OwnerID:       &owner.ID,
		},
		{
			Name:        "Globex Industries",
			Domain:      "globex.io",
			Industry:    "Technology",
			CompanySize: "200-1000",
			Website:     "https://globex.io",
			HealthScore: 62,
			OwnerID:     &owner.ID,
		},
		{
			Name:     "Initech Solutions",
			Domain:   "initech.example",
			Industry: "Financial Services",
			OwnerID:  &owner.ID,
		},
	}
	for _, account := range accounts {
		if err := db.CreateAccount(database, account); err != nil {
			return fmt.Errorf("failed to create account %q: %w", account.Name, err)
		}
	}
	log.Printf("Created %d accounts", len(accounts))

	contacts := []*models.Contact{
		{
			FirstName: "Sarah",
			LastName:  "Chen",
			Email:     "sarah.chen@acme.com",
			JobTitle:  "VP Engineering",
			AccountID: &accounts[0].ID,
			IsPrimary: true,
			OwnerID:   &owner.ID,
		},
		{
			FirstName: "Marcus",
			LastName:  "Webb",
			Email:     "m.webb@globex.io",
			JobTitle:  "Director of Operations",
			AccountID: &accounts[1].ID,
			OwnerID:   &owner.ID,
		},
	}
	for _, contact := range contacts {
		if err := db.CreateContact(database, contact); err != nil {
			return fmt.Errorf("failed to create contact %q: %w", contact.FullName(), err)
		}
	}
	log.Printf("Created %d contacts", len(contacts))

	leads := []*models.Lead{
		{
			FirstName:   "Priya",
			LastName:    "Patel",
			Email:       "priya@hoolitech.example",
			Company:     "Hooli Technologies",
			JobTitle:    "CTO",
			LeadScore:   78,
			Temperature: models.TemperatureHot,
			OwnerID:     &owner.ID,
		},
		{
			FirstName:  "Tom",
			LastName:   "Alvarez",
			Email:      "tom@vandelay.example",
			Company:    "Vandelay Imports",
			LeadSource: "referral",
			OwnerID:    &owner.ID,
		},
	}
	for _, lead := range leads {
		if err := db.CreateLead(database, lead); err != nil {
			return fmt.Errorf("failed to create lead %q: %w", lead.FullName(), err)
		}
	}
	log.Printf("Created %d leads", len(leads))

	closeDate := time.Now().UTC().AddDate(0, 2, 0)
	deals := []*models.Deal{
		{
			Name:              "Acme Platform Renewal",
			Amount:            120000,
			Stage:             models.StageNegotiation,
			Probability:       75,
			ExpectedCloseDate: &closeDate,
			AccountID:         &accounts[0].ID,
			ContactID:         &contacts[0].ID,
			OwnerID:           &owner.ID,
			DealType:          "renewal",
		},
		{
			Name:      "Globex Pilot Program",
			Amount:    45000,
			AccountID: &accounts[1].ID,
			ContactID: &contacts[1].ID,
			OwnerID:   &owner.ID,
		},
	}
	for _, deal := range deals {
		if err := db.CreateDeal(database, deal); err != nil {
			return fmt.Errorf("failed to create deal %q: %w", deal.Name, err)
		}
	}
	log.Printf("Created %d deals", len(deals))

	dueDate := time.Now().UTC().AddDate(0, 0, 7)
	activities := []*models.Activity{
		{
			Subject:      "Send renewal proposal",
			ActivityType: "email",
			Priority:     models.PriorityHigh,
			DueDate:      &dueDate,
			AccountID:    &accounts[0].ID,
			DealID:       &deals[0].ID,
			OwnerID:      &owner.ID,
		},
		{
			Subject:   "Follow up with Hooli",
			LeadID:    &leads[0].ID,
			OwnerID:   &owner.ID,
		},
	}
	for _, activity := range activities {
		if err := db.CreateActivity(database, activity); err != nil {
			return fmt.Errorf("failed to create activity %q: %w", activity.Subject, err)
		}
	}
	log.Printf("Created %d activities", len(activities))

	if err := seedEmployees(database); err != nil {
		return err
	}

	return nil
}

func seedEmployees(database *sql.DB) error {
	manager := &models.Employee{
		EmployeeID: "EMP001",
		FirstName:  "Diane",
		LastName:   "Okafor",
		Email:      "diane.okafor@bmi.dev",
		Department: "Engineering",
		Position:   "Engineering Manager",
		JobTitle:   "Engineering Manager",
		HireDate:   time.Date(2019, 3, 11, 0, 0, 0, 0, time.UTC),
		Salary:     145000,
	}
	if err := db.CreateEmployee(database, manager); err != nil {
		return fmt.Errorf("failed to create employee %q: %w", manager.FullName(), err)
	}

	roster := []*models.Employee{
		{
			EmployeeID:   "EMP002",
			FirstName:    "Liam",
			LastName:     "Berg",
			Email:        "liam.berg@bmi.dev",
			Department:   "Engineering",
			Position:     "Senior Engineer",
			JobTitle:     "Senior Software Engineer",
			HireDate:     time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
			Salary:       118000,
			WorkLocation: "remote",
			ManagerID:    &manager.ID,
		},
		{
			EmployeeID: "EMP003",
			FirstName:  "Ana",
			LastName:   "Silva",
			Email:      "ana.silva@bmi.dev",
			Department: "Sales",
			Position:   "Account Executive",
			JobTitle:   "Account Executive",
			HireDate:   time.Date(2022, 1, 17, 0, 0, 0, 0, time.UTC),
			Salary:     92000,
			ManagerID:  &manager.ID,
		},
		{
			EmployeeID: "EMP004",
			FirstName:  "Noah",
			LastName:   "Kim",
			Email:      "noah.kim@bmi.dev",
			Department: "Sales",
			Position:   "Sales Development Rep",
			JobTitle:   "Sales Development Representative",
			HireDate:   time.Date(2023, 9, 5, 0, 0, 0, 0, time.UTC),
			Salary:     68000,
			Status:     "on_leave",
			ManagerID:  &manager.ID,
		},
	}
	for _, employee := range roster {
		if err := db.CreateEmployee(database, employee); err != nil {
			return fmt.Errorf("failed to create employee %q: %w", employee.FullName(), err)
		}
	}
	log.Printf("Created %d employees", len(roster)+1)

	return nil
}

// ABOUTME: Database schema definitions
// ABOUTME: Handles SQLite table creation for all CRM and HRMS entities
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'user',
	department TEXT,
	avatar_url TEXT,
	is_active INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	domain TEXT,
	industry TEXT,
	company_size TEXT NOT NULL DEFAULT 'unknown',
	annual_revenue REAL,
	website TEXT,
	phone TEXT,
	description TEXT,
	address TEXT,
	billing_address TEXT,
	account_type TEXT NOT NULL DEFAULT 'prospect',
	account_status TEXT NOT NULL DEFAULT 'active',
	health_score INTEGER NOT NULL DEFAULT 50,
	owner_id TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (owner_id) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_accounts_name ON accounts(name);

CREATE TABLE IF NOT EXISTS contacts (
	id TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT,
	phone TEXT,
	job_title TEXT,
	department TEXT,
	account_id TEXT,
	is_primary INTEGER NOT NULL DEFAULT 0,
	contact_status TEXT NOT NULL DEFAULT 'active',
	linkedin_url TEXT,
	twitter_handle TEXT,
	owner_id TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (account_id) REFERENCES accounts(id),
	FOREIGN KEY (owner_id) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_contacts_email ON contacts(email);
CREATE INDEX IF NOT EXISTS idx_contacts_account_id ON contacts(account_id);

CREATE TABLE IF NOT EXISTS leads (
	id TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT,
	phone TEXT,
	company TEXT,
	job_title TEXT,
	lead_source TEXT NOT NULL DEFAULT 'website',
	lead_status TEXT NOT NULL DEFAULT 'active',
	lead_stage TEXT NOT NULL DEFAULT 'new',
	lead_score INTEGER NOT NULL DEFAULT 0,
	temperature TEXT NOT NULL DEFAULT 'cold',
	owner_id TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (owner_id) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_leads_stage ON leads(lead_stage);

CREATE TABLE IF NOT EXISTS deals (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	amount REAL NOT NULL DEFAULT 0,
	stage TEXT NOT NULL DEFAULT 'qualification',
	probability INTEGER NOT NULL DEFAULT 0,
	expected_close_date DATETIME,
	actual_close_date DATETIME,
	account_id TEXT,
	contact_id TEXT,
	owner_id TEXT,
	deal_type TEXT NOT NULL DEFAULT 'new_business',
	deal_health TEXT NOT NULL DEFAULT 'healthy',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (account_id) REFERENCES accounts(id),
	FOREIGN KEY (contact_id) REFERENCES contacts(id),
	FOREIGN KEY (owner_id) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_deals_stage ON deals(stage);
CREATE INDEX IF NOT EXISTS idx_deals_account_id ON deals(account_id);

CREATE TABLE IF NOT EXISTS activities (
	id TEXT PRIMARY KEY,
	subject TEXT NOT NULL,
	description TEXT,
	activity_type TEXT NOT NULL DEFAULT 'task',
	status TEXT NOT NULL DEFAULT 'open',
	priority TEXT NOT NULL DEFAULT 'medium',
	due_date DATETIME,
	completed_date DATETIME,
	account_id TEXT,
	contact_id TEXT,
	lead_id TEXT,
	deal_id TEXT,
	owner_id TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (account_id) REFERENCES accounts(id),
	FOREIGN KEY (contact_id) REFERENCES contacts(id),
	FOREIGN KEY (lead_id) REFERENCES leads(id),
	FOREIGN KEY (deal_id) REFERENCES deals(id),
	FOREIGN KEY (owner_id) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_activities_due_date ON activities(due_date);

CREATE TABLE IF NOT EXISTS employees (
	id TEXT PRIMARY KEY,
	employee_id TEXT NOT NULL UNIQUE,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	phone TEXT,
	department TEXT,
	position TEXT NOT NULL,
	job_title TEXT NOT NULL,
	hire_date DATETIME NOT NULL,
	salary REAL NOT NULL,
	status TEXT NOT NULL DEFAULT 'active',
	work_location TEXT NOT NULL DEFAULT 'office',
	annual_leave_balance INTEGER NOT NULL DEFAULT 25,
	sick_leave_balance INTEGER NOT NULL DEFAULT 10,
	personal_leave_balance INTEGER NOT NULL DEFAULT 5,
	manager_id TEXT,
	emergency_contact_name TEXT,
	emergency_contact_phone TEXT,
	emergency_contact_relationship TEXT,
	address TEXT,
	overtime_eligible INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (manager_id) REFERENCES employees(id)
);

CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department);
CREATE INDEX IF NOT EXISTS idx_employees_status ON employees(status);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

// ABOUTME: User database operations
// ABOUTME: Handles user row creation for seeding; no login path exists
package db

import (
	"database/sql"
	"time"

	"github.com/bmi-dev/bmi-platform/models"
	"github.com/google/uuid"
)

func CreateUser(db *sql.DB, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if user.Role == "" {
		user.Role = "user"
	}

	_, err := db.Exec(`
		INSERT INTO users (id, email, password_hash, first_name, last_name, role, department,
			avatar_url, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, user.ID.String(), user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role,
		user.Department, user.AvatarURL, user.IsActive, user.CreatedAt, user.UpdatedAt)

	return err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	u := &models.User{}
	err := db.QueryRow(`
		SELECT id, email, password_hash, first_name, last_name, role, department, avatar_url,
			is_active, created_at, updated_at
		FROM users WHERE email = ?
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role,
		&u.Department, &u.AvatarURL, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

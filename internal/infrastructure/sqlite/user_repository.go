package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/zjrosen/vitrine/internal/catalog"
)

const userColumns = `id, email, name, role, created_at, updated_at`

// UserRepository implements catalog.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

func newUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ catalog.UserRepository = (*UserRepository)(nil)

func scanUser(scanner interface{ Scan(...any) error }) (*UserModel, error) {
	var m UserModel
	err := scanner.Scan(&m.ID, &m.Email, &m.Name, &m.Role, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

// Save upserts a user by id.
func (r *UserRepository) Save(u *catalog.User) error {
	m := toUserModel(u)
	_, err := r.db.Exec(
		`INSERT INTO users (id, email, name, role, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			email = excluded.email, name = excluded.name, role = excluded.role,
			updated_at = excluded.updated_at`,
		m.ID, m.Email, m.Name, m.Role, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by id.
func (r *UserRepository) FindByID(id string) (*catalog.User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	m, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &catalog.UserNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return m.toDomain(), nil
}

// FindByEmail retrieves a user by email.
func (r *UserRepository) FindByEmail(email string) (*catalog.User, error) {
	row := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	m, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &catalog.UserNotFoundError{Email: email}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return m.toDomain(), nil
}

// List retrieves all users ordered by email.
func (r *UserRepository) List() ([]*catalog.User, error) {
	rows, err := r.db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []*catalog.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, m.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// Delete removes a user.
func (r *UserRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return &catalog.UserNotFoundError{ID: id}
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-api/internal/domain"
	"github.com/jhoicas/inventario-api/internal/domain/entity"
	"github.com/jhoicas/inventario-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, email, password_hash, role, active, created_at, updated_at`

// Create persiste un nuevo usuario. Username o email repetidos se normalizan a ErrDuplicate.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.Active,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByUsernameOrEmail busca por username o email; cualquiera de los dos
// puede venir vacío.
func (r *UserRepo) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE (username = $1 AND $1 <> '') OR (email = $2 AND $2 <> '')
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, username, email), "get user by username or email")
}

// Update actualiza un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET username = $2, email = $3, password_hash = $4, role = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.PasswordHash, string(user.Role), user.Active, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista usuarios ordenados por fecha de creación descendente. Con
// onlyActive filtra los desactivados; con ownerID restringe al propio registro.
func (r *UserRepo) List(onlyActive bool, ownerID string) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE (NOT $1 OR active) AND ($2 = '' OR id::text = $2)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, onlyActive, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var role string
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = entity.Role(role)
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Deactivate marca un usuario como inactivo.
func (r *UserRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	var role string
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Role = entity.Role(role)
	return &u, nil
}

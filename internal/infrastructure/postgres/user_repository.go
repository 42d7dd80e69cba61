package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, full_name, username, password_hash, email, role, created_at, phone_number, hire_date, upload_image, is_disabled`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (full_name, username, password_hash, email, role, created_at, phone_number, hire_date, upload_image, is_disabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		u.FullName, u.Username, u.PasswordHash, u.Email, u.Role, u.CreatedAt, u.PhoneNumber, u.HireDate, u.UploadImage,
	).Scan(&u.ID)
	if err != nil {
		return wrapWriteErr("insert user", err)
	}
	return nil
}

// GetActiveByID devuelve nil, nil si no existe o está deshabilitado.
func (r *UserRepo) GetActiveByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 AND NOT is_disabled`, id)
}

// GetActiveByUsername devuelve nil, nil si no hay cuenta activa con ese username.
func (r *UserRepo) GetActiveByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1) AND NOT is_disabled`, username)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *UserRepo) ExistsActiveByFullName(ctx context.Context, fullName string, excludeID int64) (bool, error) {
	return r.exists(ctx, "full_name", fullName, excludeID)
}

func (r *UserRepo) ExistsActiveByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.exists(ctx, "email", email, excludeID)
}

func (r *UserRepo) ExistsActiveByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	return r.exists(ctx, "username", username, excludeID)
}

// exists column viene siempre de las constantes de arriba, nunca del cliente.
func (r *UserRepo) exists(ctx context.Context, column, value string, excludeID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM users WHERE lower(%s) = lower($1) AND id <> $2 AND NOT is_disabled)`, column)
	var ok bool
	if err := r.q.QueryRow(ctx, query, value, excludeID).Scan(&ok); err != nil {
		return false, fmt.Errorf("check user %s: %w", column, err)
	}
	return ok, nil
}

func (r *UserRepo) ListActive(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users WHERE NOT is_disabled ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update persiste los campos mutables. domain.ErrNotFound si la cuenta no existe o está deshabilitada.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users SET full_name = $2, password_hash = $3, email = $4, phone_number = $5, hire_date = $6, upload_image = $7
		WHERE id = $1 AND NOT is_disabled`
	cmd, err := r.q.Exec(ctx, query, u.ID, u.FullName, u.PasswordHash, u.Email, u.PhoneNumber, u.HireDate, u.UploadImage)
	if err != nil {
		return wrapWriteErr("update user", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Disable marca la cuenta como deshabilitada. domain.ErrNotFound si no había cuenta activa.
func (r *UserRepo) Disable(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE users SET is_disabled = true WHERE id = $1 AND NOT is_disabled`, id)
	if err != nil {
		return fmt.Errorf("disable user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.FullName, &u.Username, &u.PasswordHash, &u.Email, &u.Role, &u.CreatedAt,
		&u.PhoneNumber, &u.HireDate, &u.UploadImage, &u.IsDisabled)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

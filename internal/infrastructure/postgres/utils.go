package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return false
}

// wrapWriteErr traduce errores de escritura a errores de dominio; el resto se envuelve con op.
func wrapWriteErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return domain.ErrInvalidReference
	}
	return fmt.Errorf("%s: %w", op, err)
}

// existsByName chequeo de nombre sin distinguir mayúsculas; table es siempre una constante del paquete.
func existsByName(ctx context.Context, q Querier, table, name string, excludeID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE lower(name) = lower($1) AND id <> $2)`, table)
	var ok bool
	if err := q.QueryRow(ctx, query, name, excludeID).Scan(&ok); err != nil {
		return false, fmt.Errorf("check %s name: %w", table, err)
	}
	return ok, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

func scanSession(row pgx.Row) (s entity.Session, err error) {
	err = row.Scan(
		&s.ID,
		&s.AccountID,
		&s.Role,
		&s.Screen,
		&s.Route,
		&s.Version,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.ExpiresAt,
	)
	if err != nil {
		return entity.Session{}, mapErr(err)
	}

	return s, nil
}

func (r *Repository) CreateSession(ctx context.Context, s entity.Session) error {
	const q = `
	INSERT INTO sessions (id, account_id, role, screen, route, version, created_at, updated_at, expires_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		s.ID,
		s.AccountID,
		s.Role,
		s.Screen,
		s.Route,
		s.Version,
		s.CreatedAt,
		s.UpdatedAt,
		s.ExpiresAt,
	)
	if err != nil {
		return mapErr(err)
	}

	return nil
}

func (r *Repository) Session(ctx context.Context, id uuid.UUID) (entity.Session, error) {
	return scanSession(r.db.QueryRow(ctx, selectSession+" WHERE id = $1", id))
}

func (r *Repository) UpdateSession(
	ctx context.Context,
	id uuid.UUID,
	fn func(entity.Session) (entity.Session, error),
) (entity.Session, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Session{}, fmt.Errorf("begin: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	current, err := scanSession(tx.QueryRow(ctx, selectSession+" WHERE id = $1 FOR UPDATE", id))
	if err != nil {
		return entity.Session{}, err
	}

	next, err := fn(current)
	if err != nil {
		return entity.Session{}, err
	}

	const q = `UPDATE sessions SET screen = $1, route = $2, version = $3, updated_at = $4 WHERE id = $5`

	_, err = tx.Exec(ctx, q, next.Screen, next.Route, next.Version, next.UpdatedAt, id)
	if err != nil {
		return entity.Session{}, fmt.Errorf("update session: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Session{}, fmt.Errorf("commit: %w", err)
	}

	return next, nil
}

func (r *Repository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return r.execOne(ctx, `DELETE FROM sessions WHERE id = $1`, id)
}

func (r *Repository) DeleteSessionsByAccount(ctx context.Context, accountID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE account_id = $1`, accountID)
	return err
}

func (r *Repository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *Repository) SaveAttempt(ctx context.Context, a entity.LoginAttempt) error {
	q := `
	INSERT INTO login_attempts (id, identifier, role, ip_address, success, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		a.ID,
		a.Identifier,
		a.Role,
		a.IPAddress,
		a.Success,
		a.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAttemptsBefore(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM login_attempts WHERE created_at < $1`, before)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

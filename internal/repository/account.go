package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

func scanAccount(row pgx.Row) (a entity.Account, err error) {
	err = row.Scan(
		&a.ID,
		&a.Identifier,
		&a.PasswordHash,
		&a.Role,
		&a.FullName,
		&a.Email,
		&a.JobTitle,
		&a.AvatarURL,
		&a.Team,
		&a.Source,
		&a.CreatedAt,
	)
	if err != nil {
		return entity.Account{}, mapErr(err)
	}

	return a, nil
}

func collectAccounts(rows pgx.Rows) ([]entity.Account, error) {
	defer rows.Close()

	accounts := make([]entity.Account, 0)

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (r *Repository) CreateAccount(ctx context.Context, a entity.Account) error {
	const q = `
	INSERT INTO accounts (
		id,
		identifier,
		password_hash,
		role,
		full_name,
		email,
		job_title,
		avatar_url,
		team,
		source,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
	`

	if a.Source == "" {
		a.Source = entity.AccountSourceLocal
	}

	_, err := r.db.Exec(
		ctx,
		q,
		a.ID,
		a.Identifier,
		a.PasswordHash,
		a.Role,
		a.FullName,
		a.Email,
		a.JobTitle,
		a.AvatarURL,
		a.Team,
		a.Source,
		a.CreatedAt,
	)
	if err != nil {
		return mapErr(err)
	}

	return nil
}

// UpsertAccount stores a profile from the identity service. An existing
// identifier keeps its local id and role: after the first sign in the role
// is managed here through UpdateRole.
func (r *Repository) UpsertAccount(ctx context.Context, a entity.Account) (entity.Account, error) {
	const q = `
	INSERT INTO accounts (id, identifier, password_hash, role, full_name, email, job_title, avatar_url, team, source)
	VALUES ($1, $2, '', $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (identifier) DO UPDATE SET
		full_name = EXCLUDED.full_name,
		email = EXCLUDED.email,
		job_title = EXCLUDED.job_title,
		avatar_url = EXCLUDED.avatar_url,
		team = EXCLUDED.team,
		source = EXCLUDED.source,
		updated_at = NOW()
	RETURNING id, identifier, password_hash, role, full_name, email, job_title, avatar_url, team, source, created_at
	`

	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV4())
	}

	return scanAccount(r.db.QueryRow(ctx, q,
		a.ID,
		a.Identifier,
		a.Role,
		a.FullName,
		a.Email,
		a.JobTitle,
		a.AvatarURL,
		a.Team,
		entity.AccountSourceIdentity,
	))
}

func (r *Repository) AccountByID(ctx context.Context, id uuid.UUID) (entity.Account, error) {
	return scanAccount(r.db.QueryRow(ctx, selectAccount+" WHERE id = $1", id))
}

func (r *Repository) AccountByIdentifier(ctx context.Context, identifier string) (entity.Account, error) {
	return scanAccount(r.db.QueryRow(ctx, selectAccount+" WHERE identifier = $1", identifier))
}

func (r *Repository) AccountByEmail(ctx context.Context, email string) (entity.Account, error) {
	const q = selectAccount + " WHERE LOWER(email) = LOWER($1) ORDER BY created_at LIMIT 1"
	return scanAccount(r.db.QueryRow(ctx, q, email))
}

func (r *Repository) AccountsByTeam(ctx context.Context, team string) ([]entity.Account, error) {
	rows, err := r.db.Query(ctx, selectAccount+" WHERE team = $1 ORDER BY full_name", team)
	if err != nil {
		return nil, err
	}

	return collectAccounts(rows)
}

// Approvers returns the managers of team and every HR administrator.
func (r *Repository) Approvers(ctx context.Context, team string) ([]entity.Account, error) {
	const q = selectAccount + `
	WHERE role = $1 OR (role = $2 AND team = $3 AND team <> '')
	ORDER BY full_name`

	rows, err := r.db.Query(ctx, q, entity.RoleHR, entity.RoleManager, team)
	if err != nil {
		return nil, err
	}

	return collectAccounts(rows)
}

func (r *Repository) SearchAccounts(ctx context.Context, query string, limit uint64) ([]entity.Account, error) {
	stmt := sq.Select(accountColumns...).
		From("accounts").
		OrderBy("full_name", "identifier").
		PlaceholderFormat(sq.Dollar)

	if query != "" {
		pattern := "%" + escapeLike(query) + "%"
		stmt = stmt.Where(sq.Or{
			sq.ILike{"full_name": pattern},
			sq.ILike{"identifier": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"team": pattern},
		})
	}

	if limit > 0 {
		stmt = stmt.Limit(limit)
	}

	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}

	return collectAccounts(rows)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *Repository) CountAccounts(ctx context.Context) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	const q = `UPDATE accounts SET role = $1, updated_at = NOW() WHERE id = $2`
	return r.execOne(ctx, q, role, id)
}

func (r *Repository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	const q = `UPDATE accounts SET password_hash = $1, updated_at = NOW() WHERE id = $2`
	return r.execOne(ctx, q, hash, id)
}

func (r *Repository) UpdateProfile(ctx context.Context, id uuid.UUID, upd entity.AccountUpdate) error {
	const q = `
	UPDATE accounts SET
		full_name = $1,
		email = $2,
		job_title = $3,
		avatar_url = $4,
		updated_at = NOW()
	WHERE id = $5`

	return r.execOne(ctx, q, upd.FullName, upd.Email, upd.JobTitle, upd.AvatarURL, id)
}

// execOne runs a single-row statement and reports entity.ErrNotFound when
// nothing matched.
func (r *Repository) execOne(ctx context.Context, q string, args ...any) error {
	result, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return mapErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

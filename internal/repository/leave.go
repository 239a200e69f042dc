package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

func (r *Repository) LeaveTypes(ctx context.Context) ([]entity.LeaveType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, label FROM leave_types ORDER BY id`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	types := make([]entity.LeaveType, 0)

	for rows.Next() {
		var lt entity.LeaveType

		err := rows.Scan(&lt.ID, &lt.Label)
		if err != nil {
			return nil, err
		}

		types = append(types, lt)
	}

	return types, rows.Err()
}

func (r *Repository) LeaveType(ctx context.Context, id int64) (entity.LeaveType, error) {
	var lt entity.LeaveType

	err := r.db.QueryRow(ctx, `SELECT id, label FROM leave_types WHERE id = $1`, id).Scan(&lt.ID, &lt.Label)
	if err != nil {
		return entity.LeaveType{}, mapErr(err)
	}

	return lt, nil
}

func (r *Repository) CreateLeaveType(ctx context.Context, label string) (entity.LeaveType, error) {
	lt := entity.LeaveType{Label: label}

	err := r.db.QueryRow(ctx, `INSERT INTO leave_types (label) VALUES ($1) RETURNING id`, label).Scan(&lt.ID)
	if err != nil {
		return entity.LeaveType{}, mapErr(err)
	}

	return lt, nil
}

func (r *Repository) RenameLeaveType(ctx context.Context, id int64, label string) error {
	return r.execOne(ctx, `UPDATE leave_types SET label = $1 WHERE id = $2`, label, id)
}

// DeleteLeaveType refuses to remove a type that pending requests still use.
func (r *Repository) DeleteLeaveType(ctx context.Context, id int64) error {
	const q = `
	DELETE FROM leave_types
	WHERE id = $1 AND NOT EXISTS (
		SELECT 1 FROM leave_requests WHERE leave_type_id = $1 AND status = $2
	)`

	result, err := r.db.Exec(ctx, q, id, entity.LeaveStatusPending)
	if err != nil {
		return err
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	if _, err := r.LeaveType(ctx, id); err != nil {
		return err
	}

	return entity.ErrLeaveTypeInUse
}

func (r *Repository) CreateLeaveRequest(ctx context.Context, req entity.LeaveRequest) error {
	const q = `
	INSERT INTO leave_requests (
		id,
		account_id,
		kind,
		leave_type_id,
		leave_type_label,
		start_date,
		end_date,
		half_day,
		days,
		reason,
		status,
		created_at,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		req.ID,
		req.AccountID,
		req.Kind,
		req.LeaveTypeID,
		req.LeaveTypeLabel,
		req.StartDate,
		req.EndDate,
		req.HalfDay,
		req.Days,
		req.Reason,
		req.Status,
		req.CreatedAt,
	)
	if err != nil {
		return mapErr(err)
	}

	return nil
}

func scanLeaveRequest(row pgx.Row) (req entity.LeaveRequest, err error) {
	err = row.Scan(
		&req.ID,
		&req.AccountID,
		&req.EmployeeName,
		&req.Kind,
		&req.LeaveTypeID,
		&req.LeaveTypeLabel,
		&req.StartDate,
		&req.EndDate,
		&req.HalfDay,
		&req.Days,
		&req.Reason,
		&req.Status,
		&req.DecidedBy,
		&req.DecidedAt,
		&req.Comment,
		&req.CreatedAt,
	)
	if err != nil {
		return entity.LeaveRequest{}, mapErr(err)
	}

	return req, nil
}

func leaveSelect() sq.SelectBuilder {
	return sq.Select(leaveColumns...).
		From("leave_requests lr").
		Join("accounts a ON a.id = lr.account_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *Repository) LeaveRequest(ctx context.Context, id uuid.UUID) (entity.LeaveRequest, error) {
	q, args, err := leaveSelect().Where(sq.Eq{"lr.id": id}).ToSql()
	if err != nil {
		return entity.LeaveRequest{}, err
	}

	return scanLeaveRequest(r.db.QueryRow(ctx, q, args...))
}

func applyLeaveQuery(stmt sq.SelectBuilder, q entity.LeaveQuery) sq.SelectBuilder {
	if q.AccountID != nil {
		stmt = stmt.Where(sq.Eq{"lr.account_id": *q.AccountID})
	}

	if q.ExcludeAccountID != nil {
		stmt = stmt.Where(sq.NotEq{"lr.account_id": *q.ExcludeAccountID})
	}

	if q.Team != "" {
		stmt = stmt.Where(sq.Eq{"a.team": q.Team})
	}

	if q.Kind != "" {
		stmt = stmt.Where(sq.Eq{"lr.kind": q.Kind})
	}

	if len(q.Statuses) > 0 {
		statuses := make([]string, 0, len(q.Statuses))
		for _, s := range q.Statuses {
			statuses = append(statuses, string(s))
		}

		stmt = stmt.Where(sq.Eq{"lr.status": statuses})
	}

	if q.From != nil {
		stmt = stmt.Where(sq.GtOrEq{"lr.end_date": *q.From})
	}

	if q.To != nil {
		stmt = stmt.Where(sq.LtOrEq{"lr.start_date": *q.To})
	}

	if q.Limit > 0 {
		stmt = stmt.Limit(q.Limit)
	}

	return stmt
}

func (r *Repository) LeaveRequests(ctx context.Context, lq entity.LeaveQuery) ([]entity.LeaveRequest, error) {
	q, args, err := applyLeaveQuery(leaveSelect(), lq).OrderBy("lr.created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	reqs := make([]entity.LeaveRequest, 0)

	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}

		reqs = append(reqs, req)
	}

	return reqs, rows.Err()
}

func (r *Repository) UpdateLeaveStatus(ctx context.Context, req entity.LeaveRequest) error {
	const q = `
	UPDATE leave_requests SET
		status = $1,
		decided_by = $2,
		decided_at = $3,
		decision_comment = $4,
		updated_at = NOW()
	WHERE id = $5 AND status = $6`

	result, err := r.db.Exec(ctx, q,
		req.Status,
		req.DecidedBy,
		req.DecidedAt,
		req.Comment,
		req.ID,
		entity.LeaveStatusPending,
	)
	if err != nil {
		return fmt.Errorf("update leave request: %w", mapErr(err))
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	if _, err := r.LeaveRequest(ctx, req.ID); err != nil {
		return err
	}

	return entity.ErrLeaveNotPending
}

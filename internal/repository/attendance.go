package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

func scanAttendance(row pgx.Row) (rec entity.AttendanceRecord, err error) {
	err = row.Scan(
		&rec.ID,
		&rec.AccountID,
		&rec.WorkDate,
		&rec.ClockIn,
		&rec.ClockOut,
		&rec.Late,
	)
	if err != nil {
		return entity.AttendanceRecord{}, mapErr(err)
	}

	return rec, nil
}

func (r *Repository) AttendanceRecord(ctx context.Context, accountID uuid.UUID, day time.Time) (entity.AttendanceRecord, error) {
	const q = selectAttendance + " WHERE account_id = $1 AND work_date = $2"
	return scanAttendance(r.db.QueryRow(ctx, q, accountID, day))
}

func (r *Repository) CreateAttendanceRecord(ctx context.Context, rec entity.AttendanceRecord) error {
	const q = `
	INSERT INTO attendance_records (id, account_id, work_date, clock_in, clock_out, late)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, q, rec.ID, rec.AccountID, rec.WorkDate, rec.ClockIn, rec.ClockOut, rec.Late)
	if err != nil {
		return mapErr(err)
	}

	return nil
}

// CloseAttendanceRecord sets the clock-out of an open record. A record that
// is already closed yields entity.ErrAttendanceClosed.
func (r *Repository) CloseAttendanceRecord(ctx context.Context, id uuid.UUID, clockOut time.Time) error {
	const q = `UPDATE attendance_records SET clock_out = $1 WHERE id = $2 AND clock_out IS NULL`

	result, err := r.db.Exec(ctx, q, clockOut, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrAttendanceClosed
	}

	return nil
}

func (r *Repository) AttendanceRecords(
	ctx context.Context,
	accountIDs []uuid.UUID,
	from, to time.Time,
) ([]entity.AttendanceRecord, error) {
	records := make([]entity.AttendanceRecord, 0)
	if len(accountIDs) == 0 {
		return records, nil
	}

	q, args, err := sq.Select("id", "account_id", "work_date", "clock_in", "clock_out", "late").
		From("attendance_records").
		Where(sq.Eq{"account_id": accountIDs}).
		Where(sq.GtOrEq{"work_date": from}).
		Where(sq.LtOrEq{"work_date": to}).
		OrderBy("work_date", "clock_in").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

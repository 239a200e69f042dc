package repository

const (
	selectAccount = `SELECT
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
		created_at
	FROM accounts`

	selectSession = `SELECT
		id,
		account_id,
		role,
		screen,
		route,
		version,
		created_at,
		updated_at,
		expires_at
	FROM sessions`

	selectAttendance = `SELECT
		id,
		account_id,
		work_date,
		clock_in,
		clock_out,
		late
	FROM attendance_records`
)

var accountColumns = []string{
	"id",
	"identifier",
	"password_hash",
	"role",
	"full_name",
	"email",
	"job_title",
	"avatar_url",
	"team",
	"source",
	"created_at",
}

var leaveColumns = []string{
	"lr.id",
	"lr.account_id",
	"a.full_name",
	"lr.kind",
	"lr.leave_type_id",
	"lr.leave_type_label",
	"lr.start_date",
	"lr.end_date",
	"lr.half_day",
	"lr.days",
	"lr.reason",
	"lr.status",
	"lr.decided_by",
	"lr.decided_at",
	"lr.decision_comment",
	"lr.created_at",
}

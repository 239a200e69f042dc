package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

func TestService_TeamReport_Range(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		wantMsg  string
	}{
		{name: "bad start", from: "yesterday", to: "2025-03-01", wantMsg: "Invalid start date"},
		{name: "bad end", from: "2025-03-01", to: "", wantMsg: "Invalid end date"},
		{name: "reversed", from: "2025-03-10", to: "2025-03-01", wantMsg: "End date cannot be before start date"},
		{name: "too long", from: "2023-01-01", to: "2025-01-01", wantMsg: "Report range cannot exceed 366 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newService(t)

			_, err := s.TeamReport(context.Background(), principal(entity.RoleHR), tt.from, tt.to)

			var ve *entity.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tt.wantMsg, ve.Message)
		})
	}
}

func TestService_TeamReport_Forbidden(t *testing.T) {
	s, _ := newService(t)

	_, err := s.TeamReport(context.Background(), principal(entity.RoleEmployee), "", "")
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_TeamReport_ManagerDefaultsToMonth(t *testing.T) {
	s, d := newService(t)
	p := principal(entity.RoleManager)
	me := account(p.AccountID, "manager1", entity.RoleManager, "Engineering")

	d.repo.EXPECT().AccountByID(gomock.Any(), p.AccountID).Return(me, nil)
	d.repo.EXPECT().AccountsByTeam(gomock.Any(), "Engineering").Return([]entity.Account{me}, nil)
	d.repo.EXPECT().AttendanceRecords(gomock.Any(), gomock.Any(), day("2025-03-01"), day("2025-03-31")).Return(nil, nil)
	d.repo.EXPECT().LeaveRequests(gomock.Any(), gomock.Any()).Return(nil, nil)

	report, err := s.TeamReport(context.Background(), p, "", "")
	require.NoError(t, err)
	require.Equal(t, day("2025-03-01"), report.From)
	require.Len(t, report.Rows, 1)
	require.Equal(t, 0, report.Rows[0].PresentDays)
}

func TestService_TeamReportXLSX(t *testing.T) {
	s, d := newService(t)
	p := principal(entity.RoleHR)

	alex := account(newID(), "employee1", entity.RoleEmployee, "Engineering")
	alex.FullName = "Alex Employee"
	sam := account(newID(), "employee2", entity.RoleEmployee, "Sales")
	sam.FullName = "Sam Seller"

	out := day("2025-03-03").Add(17*time.Hour + 30*time.Minute)

	d.repo.EXPECT().SearchAccounts(gomock.Any(), "", uint64(0)).Return([]entity.Account{alex, sam}, nil)
	d.repo.EXPECT().AttendanceRecords(gomock.Any(), gomock.Any(), day("2025-03-01"), day("2025-03-31")).
		Return([]entity.AttendanceRecord{
			{AccountID: alex.ID, WorkDate: day("2025-03-03"), ClockIn: day("2025-03-03").Add(9 * time.Hour), ClockOut: &out, Late: true},
			{AccountID: newID(), WorkDate: day("2025-03-03")},
		}, nil)
	d.repo.EXPECT().LeaveRequests(gomock.Any(), gomock.Any()).Return([]entity.LeaveRequest{
		{AccountID: sam.ID, StartDate: day("2025-02-27"), EndDate: day("2025-03-02"), Days: entity.LeaveDays(day("2025-02-27"), day("2025-03-02"), false)},
	}, nil)

	b, err := s.TeamReportXLSX(context.Background(), p, "2025-03-01", "2025-03-31")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)

	defer f.Close()

	rows, err := f.GetRows("Team Report")
	require.NoError(t, err)
	require.Equal(t, []string{"Attendance 2025-03-01 to 2025-03-31"}, rows[0])
	require.Equal(t, []string{"Employee", "Team", "Present Days", "Late Days", "Hours Worked", "Leave Days"}, rows[2])
	require.Equal(t, []string{"Alex Employee", "Engineering", "1", "1", "8.5", "0"}, rows[3])
	require.Equal(t, []string{"Sam Seller", "Sales", "0", "0", "0", "2"}, rows[4])
}

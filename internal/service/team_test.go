package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

func TestService_MyTeam(t *testing.T) {
	s, d := newService(t)
	p := principal(entity.RoleEmployee)
	me := account(p.AccountID, "employee1", entity.RoleEmployee, "Engineering")
	mate := account(newID(), "employee2", entity.RoleEmployee, "Engineering")

	d.repo.EXPECT().AccountByID(gomock.Any(), p.AccountID).Return(me, nil)
	d.repo.EXPECT().AccountsByTeam(gomock.Any(), "Engineering").Return([]entity.Account{mate, me}, nil)

	members, err := s.MyTeam(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, []entity.TeamMember{{Account: mate}, {Account: me, IsMe: true}}, members)
}

func TestService_MyTeam_NoTeam(t *testing.T) {
	s, d := newService(t)
	p := principal(entity.RoleEmployee)
	me := account(p.AccountID, "employee9", entity.RoleEmployee, "")

	d.repo.EXPECT().AccountByID(gomock.Any(), p.AccountID).Return(me, nil)

	members, err := s.MyTeam(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, []entity.TeamMember{{Account: me, IsMe: true}}, members)
}

func TestService_ChangeUserRole(t *testing.T) {
	hr := principal(entity.RoleHR)
	target := account(newID(), "employee1", entity.RoleEmployee, "Engineering")

	tests := []struct {
		name     string
		p        entity.Principal
		id       string
		role     string
		prepare  func(d deps)
		wantRole entity.Role
		wantErr  error
		invalid  bool
	}{
		{
			name: "promote",
			p:    hr,
			role: "Manager",
			prepare: func(d deps) {
				d.repo.EXPECT().AccountByID(gomock.Any(), target.ID).Return(target, nil)
				d.repo.EXPECT().UpdateRole(gomock.Any(), target.ID, entity.RoleManager).Return(nil)
				d.repo.EXPECT().DeleteSessionsByAccount(gomock.Any(), target.ID).Return(nil)
			},
			wantRole: entity.RoleManager,
		},
		{
			name: "same role is a no-op",
			p:    hr,
			role: "Employee",
			prepare: func(d deps) {
				d.repo.EXPECT().AccountByID(gomock.Any(), target.ID).Return(target, nil)
			},
			wantRole: entity.RoleEmployee,
		},
		{name: "unknown role", p: hr, role: "Intern", invalid: true},
		{name: "own role", p: hr, id: "self", role: "Employee", wantErr: entity.ErrForbidden},
		{name: "manager", p: principal(entity.RoleManager), role: "Employee", wantErr: entity.ErrForbidden},
		{
			name: "missing account",
			p:    hr,
			role: "Manager",
			prepare: func(d deps) {
				d.repo.EXPECT().AccountByID(gomock.Any(), target.ID).Return(entity.Account{}, entity.ErrNotFound)
			},
			wantErr: entity.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, d := newService(t)
			if tt.prepare != nil {
				tt.prepare(d)
			}

			id := target.ID
			if tt.id == "self" {
				id = tt.p.AccountID
			}

			acc, err := s.ChangeUserRole(context.Background(), tt.p, id, tt.role)

			switch {
			case tt.invalid:
				require.True(t, entity.IsValidationError(err))
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.wantRole, acc.Role)
			}
		})
	}
}

func TestService_SearchUsers(t *testing.T) {
	s, d := newService(t)

	d.repo.EXPECT().SearchAccounts(gomock.Any(), "alex", uint64(50)).Return([]entity.Account{{FullName: "Alex"}}, nil)

	accounts, err := s.SearchUsers(context.Background(), principal(entity.RoleHR), "  alex ")
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	_, err = s.SearchUsers(context.Background(), principal(entity.RoleManager), "alex")
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_UpdateProfile(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		s, _ := newService(t)

		_, err := s.UpdateProfile(context.Background(), principal(entity.RoleEmployee), entity.AccountUpdate{
			FullName: "Alex",
			Email:    "alex-at-company",
		})

		var ve *entity.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, []string{"email"}, ve.Fields)
	})

	t.Run("blank name", func(t *testing.T) {
		s, _ := newService(t)

		_, err := s.UpdateProfile(context.Background(), principal(entity.RoleEmployee), entity.AccountUpdate{
			FullName: "  ",
			Email:    "alex@company.com",
		})

		var ve *entity.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, entity.FillAllFieldsMessage, ve.Message)
	})

	t.Run("saved", func(t *testing.T) {
		s, d := newService(t)
		p := principal(entity.RoleEmployee)

		d.repo.EXPECT().UpdateProfile(gomock.Any(), p.AccountID, entity.AccountUpdate{
			FullName: "Alex Doe",
			Email:    "alex@company.com",
			JobTitle: "Engineer",
		}).Return(nil)
		d.repo.EXPECT().AccountByID(gomock.Any(), p.AccountID).Return(entity.Account{ID: p.AccountID, FullName: "Alex Doe"}, nil)

		acc, err := s.UpdateProfile(context.Background(), p, entity.AccountUpdate{
			FullName: " Alex Doe ",
			Email:    "Alex@Company.com",
			JobTitle: "Engineer ",
		})
		require.NoError(t, err)
		require.Equal(t, "Alex Doe", acc.FullName)
	})
}

package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/internal/navigation"
)

func TestNewButton(t *testing.T) {
	tests := []struct {
		name    string
		opts    ButtonOptions
		want    Button
		wantErr error
	}{
		{
			name: "defaults",
			want: Button{Label: "Save", Variant: VariantPrimary, Size: SizeMedium},
		},
		{
			name: "loading disables",
			opts: ButtonOptions{Variant: VariantDanger, Size: SizeSmall, Loading: true},
			want: Button{Label: "Save", Variant: VariantDanger, Size: SizeSmall, Loading: true, Disabled: true},
		},
		{
			name:    "unknown variant",
			opts:    ButtonOptions{Variant: "ghost"},
			wantErr: ErrInvalidVariant,
		},
		{
			name:    "unknown size",
			opts:    ButtonOptions{Size: "huge"},
			wantErr: ErrInvalidSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewButton("Save", tt.opts)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewNavBar_SingleActiveItem(t *testing.T) {
	r, err := navigation.ForRole(entity.RoleManager)
	require.NoError(t, err)

	bar := NewNavBar(r.NavItems(), navigation.RouteApprovals)

	active := 0

	for _, item := range bar.Items {
		if !item.Active {
			require.Contains(t, item.Icon, "-outline")
			continue
		}

		active++

		require.Equal(t, navigation.RouteApprovals, item.Route)
		require.Equal(t, "checkmark-done", item.Icon)
	}

	require.Equal(t, 1, active)
}

func TestNewNavBar_NoRoute(t *testing.T) {
	r, err := navigation.ForRole(entity.RoleEmployee)
	require.NoError(t, err)

	for _, item := range NewNavBar(r.NavItems(), navigation.RouteNone).Items {
		require.False(t, item.Active)
	}
}

func TestNewPicker(t *testing.T) {
	options := []PickerOption{{Label: "Sick Leave", Value: "1"}, {Label: "Vacation Leave", Value: "2"}}

	p, err := NewPicker("leave_type_id", "Leave Type", options, "2")
	require.NoError(t, err)
	require.Equal(t, "2", p.Selected)
	require.False(t, p.Disabled)

	_, err = NewPicker("leave_type_id", "Leave Type", options, "9")
	require.ErrorIs(t, err, ErrInvalidOption)

	empty, err := NewPicker("leave_type_id", "Leave Type", nil, "")
	require.NoError(t, err)
	require.True(t, empty.Disabled)
}

func TestScreenView(t *testing.T) {
	r, err := navigation.ForRole(entity.RoleEmployee)
	require.NoError(t, err)

	home := ScreenView(r, r.Initial())
	require.Equal(t, navigation.ScreenEmployeeDashboard, home.Screen)
	require.False(t, home.Header.CanGoBack)
	require.NotNil(t, home.NavBar)
	require.Contains(t, home.Events, navigation.EventLogout)

	state, err := r.Apply(r.Initial(), navigation.EventRequestLeave)
	require.NoError(t, err)

	form := ScreenView(r, state)
	require.Equal(t, "Request Leave", form.Header.Title)
	require.True(t, form.Header.CanGoBack)
	require.Nil(t, form.NavBar)
	require.Len(t, form.Form, 3)
	require.Contains(t, form.Events, navigation.EventSubmitted)

	login := ScreenView(navigation.LoginFlow(), navigation.LoginFlow().Initial())
	require.Nil(t, login.NavBar)
	require.True(t, login.Form[1].Secure)
}

func TestLeaveTypePicker(t *testing.T) {
	p, err := LeaveTypePicker([]entity.LeaveType{{ID: 3, Label: "Personal Leave"}}, "")
	require.NoError(t, err)
	require.Equal(t, []PickerOption{{Label: "Personal Leave", Value: "3"}}, p.Options)
}

func TestScreen_WithLeaveTypes(t *testing.T) {
	r, err := navigation.ForRole(entity.RoleEmployee)
	require.NoError(t, err)

	types := []entity.LeaveType{{ID: 1, Label: "Sick Leave"}, {ID: 2, Label: "Vacation Leave"}}

	form, err := ScreenView(r, navigation.State{Screen: navigation.ScreenRequestLeave, Route: navigation.RouteRequest}).
		WithLeaveTypes(types)
	require.NoError(t, err)
	require.Len(t, form.Pickers, 3)
	require.Equal(t, "kind", form.Pickers[0].Name)
	require.Equal(t, string(entity.LeaveKindLeave), form.Pickers[0].Selected)
	require.Equal(t, "leave_type_id", form.Pickers[1].Name)
	require.Len(t, form.Pickers[1].Options, 2)
	require.Equal(t, "half_day", form.Pickers[2].Name)

	home, err := ScreenView(r, r.Initial()).WithLeaveTypes(types)
	require.NoError(t, err)
	require.Empty(t, home.Pickers)
}

package view

import (
	"fmt"
	"strconv"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/internal/navigation"
)

// Screen is everything a client needs to draw the active screen chrome.
type Screen struct {
	Screen  navigation.Screen  `json:"screen"`
	Route   navigation.Route   `json:"route"`
	Header  Header             `json:"header"`
	NavBar  *NavBar            `json:"nav_bar,omitempty"`
	Events  []navigation.Event `json:"events"`
	Form    []FormInput        `json:"form,omitempty"`
	Pickers []Picker           `json:"pickers,omitempty"`
	Buttons []Button           `json:"buttons,omitempty"`
}

// ScreenView describes state within router. Screens without a bottom bar
// (login flow, settings children) get no NavBar.
func ScreenView(r *navigation.Router, s navigation.State) Screen {
	v := Screen{
		Screen: s.Screen,
		Route:  s.Route,
		Header: NewHeader(r.Title(s.Screen), r.CanGoBack(s.Screen)),
		Events: r.Events(s.Screen),
	}

	if items := r.NavItems(); len(items) > 0 && !r.IsForm(s.Screen) {
		bar := NewNavBar(items, s.Route)
		v.NavBar = &bar
	}

	v.Form, v.Buttons = screenForm(s.Screen)

	return v
}

func mustButton(label string, opts ButtonOptions) Button {
	b, err := NewButton(label, opts)
	if err != nil {
		panic(err)
	}

	return b
}

func screenForm(s navigation.Screen) (form []FormInput, buttons []Button) {
	switch s {
	case navigation.ScreenLogin:
		form = []FormInput{
			NewFormInput("identifier", "Employee ID", "Enter your Employee ID"),
			NewFormInput("password", "Password", "Enter your password").AsSecure(),
		}
		buttons = []Button{
			mustButton("Login", ButtonOptions{Size: SizeLarge}),
			mustButton("Forgot Password?", ButtonOptions{Variant: VariantOutline, Size: SizeSmall}),
		}
	case navigation.ScreenForgotPassword:
		form = []FormInput{NewFormInput("email", "Email", "Enter your email").AsEmail()}
		buttons = []Button{mustButton("Send Reset Link", ButtonOptions{Size: SizeLarge})}
	case navigation.ScreenCheckEmail:
		buttons = []Button{
			mustButton("Back to Login", ButtonOptions{}),
			mustButton("Resend Email", ButtonOptions{Variant: VariantOutline}),
		}
	case navigation.ScreenRequestLeave:
		form = []FormInput{
			NewFormInput("start_date", "Start Date", "YYYY-MM-DD"),
			NewFormInput("end_date", "End Date", "YYYY-MM-DD"),
			NewFormInput("reason", "Reason", "Enter reason for leave").AsMultiline(),
		}
		buttons = []Button{mustButton("Submit Request", ButtonOptions{Size: SizeLarge})}
	case navigation.ScreenChangePassword:
		form = []FormInput{
			NewFormInput("current_password", "Current Password", "Enter current password").AsSecure(),
			NewFormInput("new_password", "New Password", "Enter new password").AsSecure(),
			NewFormInput("confirm_password", "Confirm New Password", "Re-enter new password").AsSecure(),
		}
		buttons = []Button{mustButton("Update Password", ButtonOptions{Size: SizeLarge})}
	case navigation.ScreenAccountSettings:
		form = []FormInput{
			NewFormInput("full_name", "Full Name", "Enter your full name"),
			NewFormInput("email", "Email", "Enter your email").AsEmail(),
			NewFormInput("job_title", "Job Title", "Enter your job title"),
		}
		buttons = []Button{mustButton("Save Changes", ButtonOptions{})}
	case navigation.ScreenConfiguration:
		form = []FormInput{
			NewFormInput("grace_period_minutes", "Grace Period (minutes)",
				fmt.Sprintf("%d-%d", entity.GraceMinutesMin, entity.GraceMinutesMax)),
			NewFormInput("leave_type", "New Leave Type", "Enter leave type"),
		}
		buttons = []Button{mustButton("Save Settings", ButtonOptions{})}
	case navigation.ScreenSettings:
		buttons = []Button{mustButton("Log Out", ButtonOptions{Variant: VariantDanger})}
	}

	return form, buttons
}

// LeaveTypePicker lists leave types for the request form.
func LeaveTypePicker(types []entity.LeaveType, selected string) (Picker, error) {
	options := make([]PickerOption, 0, len(types))
	for _, t := range types {
		options = append(options, PickerOption{Label: t.Label, Value: strconv.FormatInt(t.ID, 10)})
	}

	return NewPicker("leave_type_id", "Leave Type", options, selected)
}

func KindPicker(selected string) (Picker, error) {
	return NewPicker("kind", "Request Type", []PickerOption{
		{Label: "Leave", Value: string(entity.LeaveKindLeave)},
		{Label: "Work From Home", Value: string(entity.LeaveKindWFH)},
	}, selected)
}

func HalfDayPicker() Picker {
	p, _ := NewPicker("half_day", "Duration", []PickerOption{
		{Label: "Full Day", Value: "false"},
		{Label: "Half Day", Value: "true"},
	}, "false")

	return p
}

// WithLeaveTypes fills the request form pickers. Other screens are returned
// unchanged.
func (v Screen) WithLeaveTypes(types []entity.LeaveType) (Screen, error) {
	if v.Screen != navigation.ScreenRequestLeave {
		return v, nil
	}

	kind, err := KindPicker(string(entity.LeaveKindLeave))
	if err != nil {
		return Screen{}, err
	}

	leaveType, err := LeaveTypePicker(types, "")
	if err != nil {
		return Screen{}, err
	}

	v.Pickers = []Picker{kind, leaveType, HalfDayPicker()}

	return v, nil
}

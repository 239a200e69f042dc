package navigation

import "errors"

type Screen string

const (
	ScreenLogin                Screen = "login"
	ScreenForgotPassword       Screen = "forgot_password"
	ScreenCheckEmail           Screen = "check_email"
	ScreenEmployeeDashboard    Screen = "employee_dashboard"
	ScreenManagerDashboard     Screen = "manager_dashboard"
	ScreenHRDashboard          Screen = "hr_dashboard"
	ScreenAttendanceReport     Screen = "attendance_report"
	ScreenRequestLeave         Screen = "request_leave"
	ScreenMyTeam               Screen = "my_team"
	ScreenSettings             Screen = "settings"
	ScreenNotifications        Screen = "notifications"
	ScreenLeaveApprovals       Screen = "leave_approvals"
	ScreenTeamReports          Screen = "team_reports"
	ScreenUserManagement       Screen = "user_management"
	ScreenConfiguration        Screen = "configuration"
	ScreenAccountSettings      Screen = "account_settings"
	ScreenNotificationSettings Screen = "notification_settings"
	ScreenChangePassword       Screen = "change_password"
)

type Event string

const (
	EventDashboard            Event = "dashboard"
	EventAttendance           Event = "attendance"
	EventRequestLeave         Event = "request_leave"
	EventMyTeam               Event = "my_team"
	EventSettings             Event = "settings"
	EventNotifications        Event = "notifications"
	EventTeamReports          Event = "team_reports"
	EventApprovals            Event = "approvals"
	EventUsers                Event = "users"
	EventConfiguration        Event = "configuration"
	EventAccountSettings      Event = "account_settings"
	EventNotificationSettings Event = "notification_settings"
	EventChangePassword       Event = "change_password"
	EventBack                 Event = "back"
	EventSubmitted            Event = "submitted"
	EventLogout               Event = "logout"
	EventForgotPassword       Event = "forgot_password"
	EventResetLinkSent        Event = "reset_link_sent"
	EventResend               Event = "resend"
)

// Route is the bottom navigation route highlighted while a screen is shown.
type Route string

const (
	RouteNone        Route = ""
	RouteDashboard   Route = "Dashboard"
	RouteAttendance  Route = "Attendance"
	RouteRequest     Route = "Request"
	RouteMyTeam      Route = "My Team"
	RouteSettings    Route = "Settings"
	RouteTeamReports Route = "TeamReports"
	RouteApprovals   Route = "Approvals"
	RouteUsers       Route = "Users"
)

var (
	ErrNoTransition  = errors.New("no transition for event on current screen")
	ErrUnknownScreen = errors.New("unknown screen")
	ErrUnknownRole   = errors.New("role has no dashboard")
)

// NavItem is an entry of a dashboard's bottom navigation bar. Pressing it
// fires Event.
type NavItem struct {
	Label      string `json:"label"`
	Route      Route  `json:"route"`
	Icon       string `json:"icon"`
	ActiveIcon string `json:"active_icon"`
	Event      Event  `json:"event"`
}

// State is the whole navigation state of a session: one screen, one route.
type State struct {
	Screen Screen `json:"screen"`
	Route  Route  `json:"route"`
}

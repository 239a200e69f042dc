package navigation

import (
	"fmt"
	"slices"

	"github.com/samandr77/microservices/attendance/internal/entity"
)

type screenInfo struct {
	title  string
	parent Screen
	route  Route
	form   bool
}

type transitionKey struct {
	from  Screen
	event Event
}

// Router is the transition table of one dashboard (or of the login flow).
// It is immutable after construction and safe for concurrent use.
type Router struct {
	home     Screen
	screens  map[Screen]screenInfo
	table    map[transitionKey]Screen
	navItems []NavItem
}

func (r *Router) Home() Screen {
	return r.home
}

func (r *Router) Initial() State {
	return State{Screen: r.home, Route: r.screens[r.home].route}
}

func (r *Router) Has(s Screen) bool {
	_, ok := r.screens[s]
	return ok
}

// Next looks up the screen an event leads to. ScreenLogin is returned for
// logout; the caller ends the session.
func (r *Router) Next(from Screen, event Event) (Screen, error) {
	if !r.Has(from) {
		return "", fmt.Errorf("%w: %s", ErrUnknownScreen, from)
	}

	to, ok := r.table[transitionKey{from: from, event: event}]
	if !ok {
		return "", fmt.Errorf("%w: %s on %s", ErrNoTransition, event, from)
	}

	return to, nil
}

// Apply returns the state after event. On error the state is returned
// unchanged.
func (r *Router) Apply(s State, event Event) (State, error) {
	to, err := r.Next(s.Screen, event)
	if err != nil {
		return s, err
	}

	info, ok := r.screens[to]
	if !ok {
		return State{Screen: to, Route: RouteNone}, nil
	}

	return State{Screen: to, Route: info.route}, nil
}

func (r *Router) Title(s Screen) string {
	return r.screens[s].title
}

func (r *Router) CanGoBack(s Screen) bool {
	_, ok := r.table[transitionKey{from: s, event: EventBack}]
	return ok
}

// IsForm reports whether the screen accepts the submitted event.
func (r *Router) IsForm(s Screen) bool {
	return r.screens[s].form
}

func (r *Router) NavItems() []NavItem {
	items := make([]NavItem, len(r.navItems))
	copy(items, r.navItems)

	return items
}

// Events lists the events accepted on a screen.
func (r *Router) Events(s Screen) []Event {
	var events []Event

	for k := range r.table {
		if k.from == s {
			events = append(events, k.event)
		}
	}

	slices.Sort(events)

	return events
}

type builder struct {
	r       *Router
	globals map[Event]Screen
}

func newBuilder(home Screen, title string) *builder {
	return &builder{
		r: &Router{
			home:    home,
			screens: map[Screen]screenInfo{home: {title: title, route: RouteDashboard}},
			table:   map[transitionKey]Screen{},
		},
		globals: map[Event]Screen{},
	}
}

func (b *builder) screen(s Screen, title string, parent Screen, route Route) *builder {
	b.r.screens[s] = screenInfo{title: title, parent: parent, route: route}
	return b
}

func (b *builder) formScreen(s Screen, title string, parent Screen, route Route) *builder {
	b.r.screens[s] = screenInfo{title: title, parent: parent, route: route, form: true}
	return b
}

// nav adds a bottom bar item. Its event is accepted on every screen.
func (b *builder) nav(item NavItem, to Screen) *builder {
	b.r.navItems = append(b.r.navItems, item)
	b.globals[item.Event] = to

	return b
}

// global accepts event on every screen of the dashboard.
func (b *builder) global(event Event, to Screen) *builder {
	b.globals[event] = to
	return b
}

func (b *builder) open(from Screen, event Event, to Screen) *builder {
	b.r.table[transitionKey{from: from, event: event}] = to
	return b
}

func (b *builder) build() *Router {
	for s, info := range b.r.screens {
		for event, to := range b.globals {
			b.r.table[transitionKey{from: s, event: event}] = to
		}

		b.r.table[transitionKey{from: s, event: EventLogout}] = ScreenLogin

		if info.parent != "" {
			b.r.table[transitionKey{from: s, event: EventBack}] = info.parent
		}

		if info.form {
			b.r.table[transitionKey{from: s, event: EventSubmitted}] = info.parent
		}
	}

	return b.r
}

var (
	dashboardItem = NavItem{Label: "Dashboard", Route: RouteDashboard, Icon: "grid-outline", ActiveIcon: "grid", Event: EventDashboard}
	settingsItem  = NavItem{Label: "Settings", Route: RouteSettings, Icon: "settings-outline", ActiveIcon: "settings", Event: EventSettings}
)

func withSettings(b *builder) *builder {
	return b.
		screen(ScreenSettings, "Settings", b.r.home, RouteSettings).
		formScreen(ScreenAccountSettings, "Account Settings", ScreenSettings, RouteSettings).
		formScreen(ScreenNotificationSettings, "Notification Settings", ScreenSettings, RouteSettings).
		formScreen(ScreenChangePassword, "Change Password", ScreenSettings, RouteSettings).
		open(ScreenSettings, EventAccountSettings, ScreenAccountSettings).
		open(ScreenSettings, EventNotificationSettings, ScreenNotificationSettings).
		open(ScreenSettings, EventChangePassword, ScreenChangePassword).
		screen(ScreenNotifications, "Notifications", b.r.home, RouteDashboard).
		global(EventNotifications, ScreenNotifications)
}

func employeeRouter() *Router {
	b := newBuilder(ScreenEmployeeDashboard, "Dashboard").
		screen(ScreenAttendanceReport, "Attendance Report", ScreenEmployeeDashboard, RouteAttendance).
		formScreen(ScreenRequestLeave, "Request Leave", ScreenEmployeeDashboard, RouteRequest).
		screen(ScreenMyTeam, "My Team", ScreenEmployeeDashboard, RouteMyTeam)

	return withSettings(b).
		nav(dashboardItem, ScreenEmployeeDashboard).
		nav(NavItem{Label: "Attendance", Route: RouteAttendance, Icon: "calendar-outline", ActiveIcon: "calendar", Event: EventAttendance}, ScreenAttendanceReport).
		nav(NavItem{Label: "Request", Route: RouteRequest, Icon: "document-text-outline", ActiveIcon: "document-text", Event: EventRequestLeave}, ScreenRequestLeave).
		nav(NavItem{Label: "My Team", Route: RouteMyTeam, Icon: "people-outline", ActiveIcon: "people", Event: EventMyTeam}, ScreenMyTeam).
		nav(settingsItem, ScreenSettings).
		build()
}

func managerRouter() *Router {
	b := newBuilder(ScreenManagerDashboard, "Manager Dashboard").
		screen(ScreenTeamReports, "Team Reports", ScreenManagerDashboard, RouteTeamReports).
		screen(ScreenLeaveApprovals, "Leave Approvals", ScreenManagerDashboard, RouteApprovals)

	return withSettings(b).
		nav(dashboardItem, ScreenManagerDashboard).
		nav(NavItem{Label: "Team Reports", Route: RouteTeamReports, Icon: "bar-chart-outline", ActiveIcon: "bar-chart", Event: EventTeamReports}, ScreenTeamReports).
		nav(NavItem{Label: "Approvals", Route: RouteApprovals, Icon: "checkmark-done-outline", ActiveIcon: "checkmark-done", Event: EventApprovals}, ScreenLeaveApprovals).
		nav(settingsItem, ScreenSettings).
		build()
}

func hrRouter() *Router {
	b := newBuilder(ScreenHRDashboard, "HR Dashboard").
		screen(ScreenUserManagement, "User & Role Management", ScreenHRDashboard, RouteUsers).
		formScreen(ScreenConfiguration, "Configuration Settings", ScreenHRDashboard, RouteDashboard).
		global(EventConfiguration, ScreenConfiguration)

	return withSettings(b).
		nav(dashboardItem, ScreenHRDashboard).
		nav(NavItem{Label: "Users", Route: RouteUsers, Icon: "people-outline", ActiveIcon: "people", Event: EventUsers}, ScreenUserManagement).
		nav(settingsItem, ScreenSettings).
		build()
}

func loginFlowRouter() *Router {
	r := &Router{
		home: ScreenLogin,
		screens: map[Screen]screenInfo{
			ScreenLogin:          {title: "Login"},
			ScreenForgotPassword: {title: "Forgot Password", parent: ScreenLogin},
			ScreenCheckEmail:     {title: "Check Your Email", parent: ScreenLogin},
		},
		table: map[transitionKey]Screen{
			{from: ScreenLogin, event: EventForgotPassword}:         ScreenForgotPassword,
			{from: ScreenForgotPassword, event: EventBack}:          ScreenLogin,
			{from: ScreenForgotPassword, event: EventResetLinkSent}: ScreenCheckEmail,
			{from: ScreenCheckEmail, event: EventBack}:              ScreenLogin,
			{from: ScreenCheckEmail, event: EventResend}:            ScreenCheckEmail,
		},
	}

	return r
}

var (
	routers = map[entity.Role]*Router{
		entity.RoleEmployee: employeeRouter(),
		entity.RoleManager:  managerRouter(),
		entity.RoleHR:       hrRouter(),
	}
	loginFlow = loginFlowRouter()
)

// ForRole returns the dashboard router of a role.
func ForRole(role entity.Role) (*Router, error) {
	r, ok := routers[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	return r, nil
}

// LoginFlow returns the router of the unauthenticated screens.
func LoginFlow() *Router {
	return loginFlow
}

// Home returns the dashboard screen a role lands on after login.
func Home(role entity.Role) (Screen, error) {
	r, err := ForRole(role)
	if err != nil {
		return "", err
	}

	return r.Home(), nil
}

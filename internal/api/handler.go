package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/internal/navigation"
	"github.com/samandr77/microservices/attendance/internal/service"
	"github.com/samandr77/microservices/attendance/internal/view"
)

// @title Attendance API
// @version 1.0
// @description Attendance, leave and approval workflows for employees, managers and HR.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	Login(ctx context.Context, identifier, password, role string) (service.LoginResult, error)
	Logout(ctx context.Context, p entity.Principal) error
	ForgotPassword(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, p entity.Principal, in entity.ChangePasswordInput) error

	LoginScreen() view.Screen
	LoginFlowNavigate(from navigation.Screen, event navigation.Event) (view.Screen, error)
	CurrentScreen(ctx context.Context, p entity.Principal) (view.Screen, error)
	Navigate(ctx context.Context, p entity.Principal, event navigation.Event) (view.Screen, error)

	Dashboard(ctx context.Context, p entity.Principal) (entity.DashboardSummary, error)
	Profile(ctx context.Context, p entity.Principal) (entity.Account, error)
	UpdateProfile(ctx context.Context, p entity.Principal, upd entity.AccountUpdate) (entity.Account, error)

	LeaveTypes(ctx context.Context) ([]entity.LeaveType, error)
	SubmitLeaveRequest(ctx context.Context, p entity.Principal, in entity.LeaveRequestInput) (entity.LeaveRequest, error)
	MyLeaveRequests(ctx context.Context, p entity.Principal) ([]entity.LeaveRequest, error)
	CancelLeaveRequest(ctx context.Context, p entity.Principal, id uuid.UUID) error
	LeaveBalance(ctx context.Context, p entity.Principal, year int) (entity.LeaveBalance, error)

	PendingApprovals(ctx context.Context, p entity.Principal, filter entity.LeaveFilter) ([]entity.LeaveRequest, error)
	DecideLeaveRequest(ctx context.Context, p entity.Principal, id uuid.UUID, d entity.LeaveDecision) (entity.LeaveRequest, error)

	MyTeam(ctx context.Context, p entity.Principal) ([]entity.TeamMember, error)
	SearchUsers(ctx context.Context, p entity.Principal, query string) ([]entity.Account, error)
	ChangeUserRole(ctx context.Context, p entity.Principal, accountID uuid.UUID, role string) (entity.Account, error)

	ClockInOut(ctx context.Context, p entity.Principal) (entity.ClockResult, error)
	AttendanceReport(ctx context.Context, p entity.Principal, month string) (entity.AttendanceReport, error)
	AttendanceTrend(ctx context.Context, p entity.Principal, months int) ([]entity.TrendPoint, error)
	TeamReport(ctx context.Context, p entity.Principal, from, to string) (entity.TeamReport, error)
	TeamReportXLSX(ctx context.Context, p entity.Principal, from, to string) ([]byte, error)

	Notifications(ctx context.Context, p entity.Principal) ([]entity.Notification, error)
	MarkNotificationRead(ctx context.Context, p entity.Principal, id uuid.UUID) error
	NotificationSettings(ctx context.Context, p entity.Principal) (entity.NotificationSettings, error)
	UpdateNotificationSettings(ctx context.Context, p entity.Principal, settings entity.NotificationSettings) (entity.NotificationSettings, error)
	OrgSettings(ctx context.Context) (entity.OrgSettings, error)
	UpdateOrgSettings(ctx context.Context, p entity.Principal, settings entity.OrgSettings) (entity.OrgSettings, error)
	AddLeaveType(ctx context.Context, p entity.Principal, label string) (entity.LeaveType, error)
	RenameLeaveType(ctx context.Context, p entity.Principal, id int64, label string) (entity.LeaveType, error)
	DeleteLeaveType(ctx context.Context, p entity.Principal, id int64) error
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

type MessageResponse struct {
	Message string       `json:"message"`
	View    *view.Screen `json:"view,omitempty"`
}

// Health returns service health status
// @Summary Health check
// @Tags health
// @Produce text/plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("OK\n"))
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

// Login authenticates an employee id, password and role triple
// @Summary Log in
// @Description Opens a navigation session at the role's dashboard.
// @Tags auth
// @Accept json
// @Produce json
// @Param LoginRequest body LoginRequest true "Credentials"
// @Success 200 {object} service.LoginResult
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 422 {object} ErrorResponse "Missing identifier or password"
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Failure 503 {object} ErrorResponse "Identity service unavailable"
// @Router /v1/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.s.Login(ctx, req.Identifier, req.Password, req.Role)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// Logout ends the caller's session
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} view.Screen
// @Failure 401 {object} ErrorResponse
// @Router /v1/auth/logout [post]
// @Security BearerAuth
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	err := h.s.Logout(ctx, p)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, h.s.LoginScreen())
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword requests reset instructions. Resend is the same call.
// @Summary Forgot password
// @Description The response does not reveal whether the address is known.
// @Tags auth
// @Accept json
// @Produce json
// @Param ForgotPasswordRequest body ForgotPasswordRequest true "Email"
// @Success 200 {object} MessageResponse
// @Failure 422 {object} ErrorResponse "Missing or malformed email"
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Router /v1/auth/forgot-password [post]
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ForgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.s.ForgotPassword(ctx, req.Email)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	next, err := h.s.LoginFlowNavigate(navigation.ScreenForgotPassword, navigation.EventResetLinkSent)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{
		Message: "If an account exists for this email, we have sent password reset instructions.",
		View:    &next,
	})
}

// ChangePassword replaces the caller's password
// @Summary Change password
// @Tags settings
// @Accept json
// @Produce json
// @Param ChangePasswordInput body entity.ChangePasswordInput true "Passwords"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse "Password is managed elsewhere"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /v1/auth/change-password [post]
// @Security BearerAuth
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req entity.ChangePasswordInput
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.s.ChangePassword(ctx, p, req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Password changed successfully"})
}

// LoginScreen returns the first unauthenticated screen
// @Summary Login screen
// @Tags navigation
// @Produce json
// @Success 200 {object} view.Screen
// @Router /v1/login/screen [get]
func (h *Handler) LoginScreen(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, h.s.LoginScreen())
}

type LoginNavigateRequest struct {
	Screen navigation.Screen `json:"screen"`
	Event  navigation.Event  `json:"event"`
}

// LoginNavigate moves between login, forgot password and check email
// @Summary Navigate the login flow
// @Tags navigation
// @Accept json
// @Produce json
// @Param LoginNavigateRequest body LoginNavigateRequest true "Current screen and event"
// @Success 200 {object} view.Screen
// @Failure 409 {object} ErrorResponse "No transition"
// @Router /v1/login/navigate [post]
func (h *Handler) LoginNavigate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginNavigateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	next, err := h.s.LoginFlowNavigate(req.Screen, req.Event)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, next)
}

// CurrentScreen returns the session's active screen
// @Summary Current screen
// @Tags navigation
// @Produce json
// @Success 200 {object} view.Screen
// @Failure 401 {object} ErrorResponse
// @Router /v1/screen [get]
// @Security BearerAuth
func (h *Handler) CurrentScreen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	screen, err := h.s.CurrentScreen(ctx, p)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, screen)
}

type NavigateRequest struct {
	Event navigation.Event `json:"event"`
}

// Navigate applies a navigation event to the session
// @Summary Navigate
// @Description Logout ends the session and returns the login screen.
// @Tags navigation
// @Accept json
// @Produce json
// @Param NavigateRequest body NavigateRequest true "Event"
// @Success 200 {object} view.Screen
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No transition"
// @Router /v1/screen/events [post]
// @Security BearerAuth
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req NavigateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	screen, err := h.s.Navigate(ctx, p, req.Event)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, screen)
}

// Dashboard returns the role dashboard summary
// @Summary Dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} entity.DashboardSummary
// @Router /v1/dashboard [get]
// @Security BearerAuth
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	summary, err := h.s.Dashboard(ctx, p)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, summary)
}

// Profile returns the caller's account
// @Summary Profile
// @Tags settings
// @Produce json
// @Success 200 {object} entity.Account
// @Router /v1/profile [get]
// @Security BearerAuth
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	acc, err := h.s.Profile(ctx, p)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, acc)
}

// UpdateProfile edits the caller's account settings
// @Summary Update profile
// @Tags settings
// @Accept json
// @Produce json
// @Param AccountUpdate body entity.AccountUpdate true "Profile"
// @Success 200 {object} entity.Account
// @Failure 422 {object} ErrorResponse
// @Router /v1/profile [put]
// @Security BearerAuth
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req entity.AccountUpdate
	if !decodeJSON(w, r, &req) {
		return
	}

	acc, err := h.s.UpdateProfile(ctx, p, req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, acc)
}

// LeaveTypes lists the configured leave types
// @Summary Leave types
// @Tags leave
// @Produce json
// @Success 200 {array} entity.LeaveType
// @Router /v1/leave/types [get]
// @Security BearerAuth
func (h *Handler) LeaveTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	types, err := h.s.LeaveTypes(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, types)
}

// SubmitLeaveRequest files a leave or work from home request
// @Summary Submit leave request
// @Tags leave
// @Accept json
// @Produce json
// @Param LeaveRequestInput body entity.LeaveRequestInput true "Request"
// @Success 201 {object} entity.LeaveRequest
// @Failure 422 {object} ErrorResponse "Please fill all fields."
// @Router /v1/leave/requests [post]
// @Security BearerAuth
func (h *Handler) SubmitLeaveRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req entity.LeaveRequestInput
	if !decodeJSON(w, r, &req) {
		return
	}

	lr, err := h.s.SubmitLeaveRequest(ctx, p, req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, lr)
}

// MyLeaveRequests lists the caller's requests
// @Summary My leave requests
// @Tags leave
// @Produce json
// @Success 200 {array} entity.LeaveRequest
// @Router /v1/leave/requests [get]
// @Security BearerAuth
func (h *Handler) MyLeaveRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	reqs, err := h.s.MyLeaveRequests(ctx, p)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, reqs)
}

// CancelLeaveRequest withdraws a pending request
// @Summary Cancel leave request
// @Tags leave
// @Param id path string true "Request id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already decided"
// @Router /v1/leave/requests/{id} [delete]
// @Security BearerAuth
func (h *Handler) CancelLeaveRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	err := h.s.CancelLeaveRequest(ctx, p, id)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// LeaveBalance returns allowance, used and remaining days
// @Summary Leave balance
// @Tags leave
// @Produce json
// @Param year query int false "Year, current when omitted"
// @Success 200 {object} entity.LeaveBalance
// @Router /v1/leave/balance [get]
// @Security BearerAuth
func (h *Handler) LeaveBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	year, ok := intQuery(w, r, "year")
	if !ok {
		return
	}

	balance, err := h.s.LeaveBalance(ctx, p, year)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, balance)
}

// PendingApprovals lists requests waiting for the caller's decision
// @Summary Pending approvals
// @Tags approvals
// @Produce json
// @Param filter query string false "All, Leave or WFH"
// @Success 200 {array} entity.LeaveRequest
// @Failure 422 {object} ErrorResponse "Unknown filter"
// @Router /v1/approvals [get]
// @Security BearerAuth
func (h *Handler) PendingApprovals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	filter, err := entity.ParseLeaveFilter(r.URL.Query().Get("filter"))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	reqs, err := h.s.PendingApprovals(ctx, p, filter)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, reqs)
}

// DecideLeaveRequest approves or rejects a pending request
// @Summary Decide leave request
// @Tags approvals
// @Accept json
// @Produce json
// @Param id path string true "Request id"
// @Param LeaveDecision body entity.LeaveDecision true "Decision"
// @Success 200 {object} entity.LeaveRequest
// @Failure 403 {object} ErrorResponse "Not the employee's approver"
// @Failure 409 {object} ErrorResponse "Already decided"
// @Router /v1/approvals/{id}/decision [post]
// @Security BearerAuth
func (h *Handler) DecideLeaveRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req entity.LeaveDecision
	if !decodeJSON(w, r, &req) {
		return
	}

	lr, err := h.s.DecideLeaveRequest(ctx, p, id, req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, lr)
}

// MyTeam lists the caller's team
// @Summary My team
// @Tags team
// @Produce json
// @Success 200 {array} entity.TeamMember
// @Router /v1/team [get]
// @Security BearerAuth
func (h *Handler) MyTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	members, err := h.s.MyTeam(ctx, p)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, members)
}

// SearchUsers finds accounts by name, id, email or team
// @Summary Search users
// @Tags users
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} entity.Account
// @Router /v1/users [get]
// @Security BearerAuth
func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	users, err := h.s.SearchUsers(ctx, p, r.URL.Query().Get("q"))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, users)
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// ChangeUserRole assigns a new role and ends that user's sessions
// @Summary Change user role
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "Account id"
// @Param ChangeRoleRequest body ChangeRoleRequest true "Role"
// @Success 200 {object} entity.Account
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Unknown role"
// @Router /v1/users/{id}/role [put]
// @Security BearerAuth
func (h *Handler) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req ChangeRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	acc, err := h.s.ChangeUserRole(ctx, p, id, req.Role)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, acc)
}

// ClockInOut clocks the caller in, or out when already in
// @Summary Clock in or out
// @Tags attendance
// @Produce json
// @Success 200 {object} entity.ClockResult
// @Failure 409 {object} ErrorResponse "Already clocked out today"
// @Router /v1/attendance/clock [post]
// @Security BearerAuth
func (h *Handler) ClockInOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	res, err := h.s.ClockInOut(ctx, p)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// AttendanceReport returns one month of the caller's attendance
// @Summary Attendance report
// @Tags attendance
// @Produce json
// @Param month query string false "YYYY-MM, current when omitted"
// @Success 200 {object} entity.AttendanceReport
// @Router /v1/attendance/report [get]
// @Security BearerAuth
func (h *Handler) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	report, err := h.s.AttendanceReport(ctx, p, r.URL.Query().Get("month"))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, report)
}

// AttendanceTrend returns present days per month
// @Summary Attendance trend
// @Tags attendance
// @Produce json
// @Param months query int false "Number of months, 6 when omitted"
// @Success 200 {array} entity.TrendPoint
// @Router /v1/attendance/trend [get]
// @Security BearerAuth
func (h *Handler) AttendanceTrend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	months, ok := intQuery(w, r, "months")
	if !ok {
		return
	}

	points, err := h.s.AttendanceTrend(ctx, p, months)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, points)
}

// TeamReport aggregates attendance per employee
// @Summary Team report
// @Tags reports
// @Produce json
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {object} entity.TeamReport
// @Router /v1/reports/team [get]
// @Security BearerAuth
func (h *Handler) TeamReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()

	report, err := h.s.TeamReport(ctx, p, q.Get("from"), q.Get("to"))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, report)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TeamReportXLSX exports the team report as a spreadsheet
// @Summary Team report export
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {file} file
// @Router /v1/reports/team.xlsx [get]
// @Security BearerAuth
func (h *Handler) TeamReportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()

	data, err := h.s.TeamReportXLSX(ctx, p, q.Get("from"), q.Get("to"))
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	name := "team-report"
	if from, to := q.Get("from"), q.Get("to"); from != "" || to != "" {
		name = strings.Trim(fmt.Sprintf("%s_%s_%s", name, from, to), "_")
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".xlsx"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Notifications lists the caller's in-app notifications
// @Summary Notifications
// @Tags notifications
// @Produce json
// @Success 200 {array} entity.Notification
// @Router /v1/notifications [get]
// @Security BearerAuth
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	list, err := h.s.Notifications(ctx, p)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, list)
}

// MarkNotificationRead marks one notification read
// @Summary Mark notification read
// @Tags notifications
// @Param id path string true "Notification id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /v1/notifications/{id}/read [post]
// @Security BearerAuth
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	err := h.s.MarkNotificationRead(ctx, p, id)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// NotificationSettings returns the caller's notification switches
// @Summary Notification settings
// @Tags settings
// @Produce json
// @Success 200 {object} entity.NotificationSettings
// @Router /v1/settings/notifications [get]
// @Security BearerAuth
func (h *Handler) NotificationSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	settings, err := h.s.NotificationSettings(ctx, p)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, settings)
}

// UpdateNotificationSettings saves the caller's notification switches
// @Summary Update notification settings
// @Tags settings
// @Accept json
// @Produce json
// @Param NotificationSettings body entity.NotificationSettings true "Settings"
// @Success 200 {object} entity.NotificationSettings
// @Router /v1/settings/notifications [put]
// @Security BearerAuth
func (h *Handler) UpdateNotificationSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req entity.NotificationSettings
	if !decodeJSON(w, r, &req) {
		return
	}

	settings, err := h.s.UpdateNotificationSettings(ctx, p, req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, settings)
}

// OrgSettings returns organisation-wide attendance settings
// @Summary Organisation settings
// @Tags configuration
// @Produce json
// @Success 200 {object} entity.OrgSettings
// @Router /v1/settings/org [get]
// @Security BearerAuth
func (h *Handler) OrgSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := h.s.OrgSettings(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, settings)
}

// UpdateOrgSettings changes the grace period
// @Summary Update organisation settings
// @Tags configuration
// @Accept json
// @Produce json
// @Param OrgSettings body entity.OrgSettings true "Settings"
// @Success 200 {object} entity.OrgSettings
// @Failure 422 {object} ErrorResponse "Grace period out of range"
// @Router /v1/settings/org [put]
// @Security BearerAuth
func (h *Handler) UpdateOrgSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req entity.OrgSettings
	if !decodeJSON(w, r, &req) {
		return
	}

	settings, err := h.s.UpdateOrgSettings(ctx, p, req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, settings)
}

type LeaveTypeRequest struct {
	Label string `json:"label"`
}

// AddLeaveType creates a leave type
// @Summary Add leave type
// @Tags configuration
// @Accept json
// @Produce json
// @Param LeaveTypeRequest body LeaveTypeRequest true "Label"
// @Success 201 {object} entity.LeaveType
// @Failure 409 {object} ErrorResponse "Label exists"
// @Router /v1/leave/types [post]
// @Security BearerAuth
func (h *Handler) AddLeaveType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req LeaveTypeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lt, err := h.s.AddLeaveType(ctx, p, req.Label)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, lt)
}

// RenameLeaveType relabels a leave type
// @Summary Rename leave type
// @Tags configuration
// @Accept json
// @Produce json
// @Param id path int true "Leave type id"
// @Param LeaveTypeRequest body LeaveTypeRequest true "Label"
// @Success 200 {object} entity.LeaveType
// @Failure 404 {object} ErrorResponse
// @Router /v1/leave/types/{id} [put]
// @Security BearerAuth
func (h *Handler) RenameLeaveType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}

	var req LeaveTypeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lt, err := h.s.RenameLeaveType(ctx, p, id, req.Label)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, lt)
}

// DeleteLeaveType removes a leave type no pending request uses
// @Summary Delete leave type
// @Tags configuration
// @Param id path int true "Leave type id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "In use by pending requests"
// @Router /v1/leave/types/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteLeaveType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := int64Param(w, r, "id")
	if !ok {
		return
	}

	err := h.s.DeleteLeaveType(ctx, p, id)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

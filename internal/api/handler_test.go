package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/attendance/internal/api"
	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/internal/mocks"
	"github.com/samandr77/microservices/attendance/internal/navigation"
	"github.com/samandr77/microservices/attendance/internal/service"
	"github.com/samandr77/microservices/attendance/internal/view"
	"github.com/samandr77/microservices/attendance/pkg/metrics"
)

type testAPI struct {
	svc    *mocks.MockService
	tokens *mocks.MockTokenValidator
	router http.Handler
}

func newTestAPI(t *testing.T) testAPI {
	return newTestAPIWithLimit(t, 0, 0)
}

func newTestAPIWithLimit(t *testing.T, perSecond float64, burst int) testAPI {
	t.Helper()

	return newTestAPIBehind(t, perSecond, burst, nil)
}

func newTestAPIBehind(t *testing.T, perSecond float64, burst int, proxies []netip.Prefix) testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	tokens := mocks.NewMockTokenValidator(ctrl)
	m := metrics.New()

	mw := api.NewMiddleware(tokens, m, perSecond, burst, proxies)

	return testAPI{
		svc:    svc,
		tokens: tokens,
		router: api.NewRouter(api.NewHandler(svc), mw, m.Registry),
	}
}

func (a testAPI) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, r)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	return rec
}

// signIn makes token resolve to a principal with role.
func (a testAPI) signIn(role entity.Role) (string, entity.Principal) {
	p := entity.Principal{
		AccountID: uuid.Must(uuid.NewV4()),
		SessionID: uuid.Must(uuid.NewV4()),
		Role:      role,
	}
	token := "token-" + p.SessionID.String()

	a.tokens.EXPECT().ValidateToken(gomock.Any(), token).Return(p, nil).AnyTimes()

	return token, p
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))

	return v
}

func TestHandler_Health(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK\n", rec.Body.String())
}

func TestHandler_Login(t *testing.T) {
	a := newTestAPI(t)

	a.svc.EXPECT().Login(gomock.Any(), "employee1", "pass123", "Employee").Return(service.LoginResult{
		AccessToken: "access",
		Dashboard:   navigation.ScreenEmployeeDashboard,
	}, nil)

	rec := a.do(t, http.MethodPost, "/api/v1/auth/login", "",
		`{"identifier":"employee1","password":"pass123","role":"Employee"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	res := decode[service.LoginResult](t, rec)
	require.Equal(t, "access", res.AccessToken)
	require.Equal(t, navigation.ScreenEmployeeDashboard, res.Dashboard)
}

func TestHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantMsg    string
		wantFields []string
	}{
		{
			name:     "invalid credentials",
			err:      entity.ErrInvalidCredentials,
			wantCode: http.StatusUnauthorized,
			wantMsg:  entity.InvalidCredentialsMessage,
		},
		{
			name:       "empty fields",
			err:        entity.NewValidationError(entity.EmptyCredentialsMessage, "identifier", "password"),
			wantCode:   http.StatusUnprocessableEntity,
			wantMsg:    entity.EmptyCredentialsMessage,
			wantFields: []string{"identifier", "password"},
		},
		{
			name:     "identity service down",
			err:      fmt.Errorf("authenticate: %w", entity.ErrIdentityUnavailable),
			wantCode: http.StatusServiceUnavailable,
			wantMsg:  "Sign in is temporarily unavailable. Please try again later.",
		},
		{
			name:     "unexpected",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAPI(t)

			a.svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(service.LoginResult{}, tt.err)

			rec := a.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"identifier":"x","password":"y","role":"Manager"}`)
			require.Equal(t, tt.wantCode, rec.Code)

			res := decode[api.ErrorResponse](t, rec)
			require.Equal(t, tt.wantMsg, res.Message)
			require.Equal(t, tt.wantFields, res.Fields)
		})
	}
}

func TestHandler_Login_BadJSON(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"identifier":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Login_RateLimited(t *testing.T) {
	a := newTestAPIWithLimit(t, 0.001, 2)

	a.svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(service.LoginResult{}, entity.ErrInvalidCredentials).Times(2)

	body := `{"identifier":"x","password":"y","role":"HR Administrator"}`

	for range 2 {
		rec := a.do(t, http.MethodPost, "/api/v1/auth/login", "", body)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := a.do(t, http.MethodPost, "/api/v1/auth/login", "", body)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func loginFrom(t *testing.T, a testAPI, remoteAddr string, headers map[string]string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"identifier":"x","password":"y","role":"Employee"}`))
	req.RemoteAddr = remoteAddr

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	return rec.Code
}

func TestHandler_Login_RateLimitIgnoresSpoofedHeaders(t *testing.T) {
	a := newTestAPIWithLimit(t, 0.001, 1)

	a.svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(service.LoginResult{}, entity.ErrInvalidCredentials).Times(1)

	require.Equal(t, http.StatusUnauthorized, loginFrom(t, a, "203.0.113.9:5100", nil))

	for i := range 20 {
		code := loginFrom(t, a, "203.0.113.9:5100", map[string]string{
			"X-Real-IP":       fmt.Sprintf("198.51.100.%d", i+1),
			"X-Forwarded-For": fmt.Sprintf("198.51.100.%d", i+100),
		})
		require.Equal(t, http.StatusTooManyRequests, code, "request %d", i)
	}
}

func TestHandler_Login_RateLimitBehindProxy(t *testing.T) {
	proxy := netip.MustParsePrefix("10.0.0.0/8")
	a := newTestAPIBehind(t, 0.001, 1, []netip.Prefix{proxy})

	a.svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(service.LoginResult{}, entity.ErrInvalidCredentials).Times(3)

	// distinct clients behind the proxy get their own buckets
	require.Equal(t, http.StatusUnauthorized,
		loginFrom(t, a, "10.0.0.2:4000", map[string]string{"X-Real-IP": "198.51.100.1"}))
	require.Equal(t, http.StatusUnauthorized,
		loginFrom(t, a, "10.0.0.2:4000", map[string]string{"X-Real-IP": "198.51.100.2"}))

	// a client prepending its own hop is still keyed on the hop the proxy saw
	require.Equal(t, http.StatusUnauthorized,
		loginFrom(t, a, "10.0.0.2:4000", map[string]string{"X-Forwarded-For": "1.1.1.1, 198.51.100.3, 10.0.0.5"}))
	require.Equal(t, http.StatusTooManyRequests,
		loginFrom(t, a, "10.0.0.2:4000", map[string]string{"X-Forwarded-For": "2.2.2.2, 198.51.100.3"}))
}

func TestHandler_ForgotPassword(t *testing.T) {
	a := newTestAPI(t)

	a.svc.EXPECT().ForgotPassword(gomock.Any(), "nobody@company.com").Return(nil)
	a.svc.EXPECT().LoginFlowNavigate(navigation.ScreenForgotPassword, navigation.EventResetLinkSent).
		Return(view.Screen{Screen: navigation.ScreenCheckEmail}, nil)

	rec := a.do(t, http.MethodPost, "/api/v1/auth/forgot-password", "", `{"email":"nobody@company.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[api.MessageResponse](t, rec)
	require.NotEmpty(t, res.Message)
	require.NotNil(t, res.View)
	require.Equal(t, navigation.ScreenCheckEmail, res.View.Screen)
}

func TestHandler_LoginNavigate_NoTransition(t *testing.T) {
	a := newTestAPI(t)

	a.svc.EXPECT().LoginFlowNavigate(navigation.ScreenLogin, navigation.EventResend).
		Return(view.Screen{}, navigation.ErrNoTransition)

	rec := a.do(t, http.MethodPost, "/api/v1/login/navigate", "", `{"screen":"login","event":"resend"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_BearerAuth(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		a := newTestAPI(t)

		rec := a.do(t, http.MethodGet, "/api/v1/dashboard", "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ended session", func(t *testing.T) {
		a := newTestAPI(t)

		a.tokens.EXPECT().ValidateToken(gomock.Any(), "stale").Return(entity.Principal{}, entity.ErrSessionEnded)

		rec := a.do(t, http.MethodGet, "/api/v1/dashboard", "stale", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		a := newTestAPI(t)

		a.tokens.EXPECT().ValidateToken(gomock.Any(), "tok").Return(entity.Principal{}, errors.New("db down"))

		rec := a.do(t, http.MethodGet, "/api/v1/dashboard", "tok", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_RequirePermission(t *testing.T) {
	tests := []struct {
		role     entity.Role
		method   string
		path     string
		wantCode int
	}{
		{entity.RoleEmployee, http.MethodGet, "/api/v1/approvals", http.StatusForbidden},
		{entity.RoleEmployee, http.MethodGet, "/api/v1/reports/team", http.StatusForbidden},
		{entity.RoleEmployee, http.MethodGet, "/api/v1/users", http.StatusForbidden},
		{entity.RoleManager, http.MethodGet, "/api/v1/users", http.StatusForbidden},
		{entity.RoleManager, http.MethodPut, "/api/v1/settings/org", http.StatusForbidden},
		{entity.RoleManager, http.MethodDelete, "/api/v1/leave/types/1", http.StatusForbidden},
		{entity.RoleHR, http.MethodGet, "/api/v1/users", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s %s", tt.role, tt.method, tt.path), func(t *testing.T) {
			a := newTestAPI(t)
			token, p := a.signIn(tt.role)

			if tt.wantCode == http.StatusOK {
				a.svc.EXPECT().SearchUsers(gomock.Any(), p, "").Return([]entity.Account{}, nil)
			}

			rec := a.do(t, tt.method, tt.path, token, "")
			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_Navigate(t *testing.T) {
	t.Run("applied", func(t *testing.T) {
		a := newTestAPI(t)
		token, p := a.signIn(entity.RoleManager)

		a.svc.EXPECT().Navigate(gomock.Any(), p, navigation.EventApprovals).Return(view.Screen{
			Screen: navigation.ScreenLeaveApprovals,
			Route:  navigation.RouteApprovals,
		}, nil)

		rec := a.do(t, http.MethodPost, "/api/v1/screen/events", token, `{"event":"approvals"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		res := decode[view.Screen](t, rec)
		require.Equal(t, navigation.ScreenLeaveApprovals, res.Screen)
		require.Equal(t, navigation.RouteApprovals, res.Route)
	})

	t.Run("no transition", func(t *testing.T) {
		a := newTestAPI(t)
		token, p := a.signIn(entity.RoleEmployee)

		a.svc.EXPECT().Navigate(gomock.Any(), p, navigation.EventUsers).Return(view.Screen{}, navigation.ErrNoTransition)

		rec := a.do(t, http.MethodPost, "/api/v1/screen/events", token, `{"event":"users"}`)
		require.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandler_CancelLeaveRequest(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	tests := []struct {
		name     string
		path     string
		err      error
		call     bool
		wantCode int
	}{
		{name: "bad id", path: "/api/v1/leave/requests/not-a-uuid", wantCode: http.StatusBadRequest},
		{name: "cancelled", path: "/api/v1/leave/requests/" + id.String(), call: true, wantCode: http.StatusNoContent},
		{
			name: "decided", path: "/api/v1/leave/requests/" + id.String(), call: true,
			err: entity.ErrLeaveNotPending, wantCode: http.StatusConflict,
		},
		{
			name: "someone else's", path: "/api/v1/leave/requests/" + id.String(), call: true,
			err: entity.ErrNotFound, wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAPI(t)
			token, p := a.signIn(entity.RoleEmployee)

			if tt.call {
				a.svc.EXPECT().CancelLeaveRequest(gomock.Any(), p, id).Return(tt.err)
			}

			rec := a.do(t, http.MethodDelete, tt.path, token, "")
			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_DecideLeaveRequest(t *testing.T) {
	a := newTestAPI(t)
	token, p := a.signIn(entity.RoleManager)
	id := uuid.Must(uuid.NewV4())

	a.svc.EXPECT().DecideLeaveRequest(gomock.Any(), p, id, entity.LeaveDecision{Approve: true, Comment: "ok"}).
		Return(entity.LeaveRequest{ID: id, Status: entity.LeaveStatusApproved}, nil)

	rec := a.do(t, http.MethodPost, "/api/v1/approvals/"+id.String()+"/decision", token, `{"approve":true,"comment":"ok"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[entity.LeaveRequest](t, rec)
	require.Equal(t, entity.LeaveStatusApproved, res.Status)
}

func TestHandler_PendingApprovals_UnknownFilter(t *testing.T) {
	a := newTestAPI(t)
	token, _ := a.signIn(entity.RoleHR)

	rec := a.do(t, http.MethodGet, "/api/v1/approvals?filter=Sick", token, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_LeaveBalance_Year(t *testing.T) {
	a := newTestAPI(t)
	token, p := a.signIn(entity.RoleEmployee)

	a.svc.EXPECT().LeaveBalance(gomock.Any(), p, 2024).Return(entity.LeaveBalance{Year: 2024}, nil)

	rec := a.do(t, http.MethodGet, "/api/v1/leave/balance?year=2024", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodGet, "/api/v1/leave/balance?year=last", token, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ClockInOut_Closed(t *testing.T) {
	a := newTestAPI(t)
	token, p := a.signIn(entity.RoleEmployee)

	a.svc.EXPECT().ClockInOut(gomock.Any(), p).Return(entity.ClockResult{}, entity.ErrAttendanceClosed)

	rec := a.do(t, http.MethodPost, "/api/v1/attendance/clock", token, "")
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_TeamReportXLSX(t *testing.T) {
	a := newTestAPI(t)
	token, p := a.signIn(entity.RoleManager)

	a.svc.EXPECT().TeamReportXLSX(gomock.Any(), p, "2025-03-01", "2025-03-31").Return([]byte("PK\x03\x04"), nil)

	rec := a.do(t, http.MethodGet, "/api/v1/reports/team.xlsx?from=2025-03-01&to=2025-03-31", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="team-report_2025-03-01_2025-03-31.xlsx"`, rec.Header().Get("Content-Disposition"))
	require.Equal(t, "PK\x03\x04", rec.Body.String())
}

func TestHandler_DeleteLeaveType_InUse(t *testing.T) {
	a := newTestAPI(t)
	token, p := a.signIn(entity.RoleHR)

	a.svc.EXPECT().DeleteLeaveType(gomock.Any(), p, int64(3)).Return(entity.ErrLeaveTypeInUse)

	rec := a.do(t, http.MethodDelete, "/api/v1/leave/types/3", token, "")
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Logout(t *testing.T) {
	a := newTestAPI(t)
	token, p := a.signIn(entity.RoleEmployee)

	a.svc.EXPECT().Logout(gomock.Any(), p).Return(nil)
	a.svc.EXPECT().LoginScreen().Return(view.Screen{Screen: navigation.ScreenLogin})

	rec := a.do(t, http.MethodPost, "/api/v1/auth/logout", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, navigation.ScreenLogin, decode[view.Screen](t, rec).Screen)
}

func TestHandler_Metrics(t *testing.T) {
	a := newTestAPI(t)
	token, p := a.signIn(entity.RoleEmployee)

	a.svc.EXPECT().Dashboard(gomock.Any(), p).Return(entity.DashboardSummary{Role: entity.RoleEmployee}, nil)

	rec := a.do(t, http.MethodGet, "/api/v1/dashboard", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodGet, "/api/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(),
		`attendance_http_requests_total{code="200",method="GET",route="/api/v1/dashboard"} 1`)
}

func TestHandler_Cors_Preflight(t *testing.T) {
	a := newTestAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/auth/login", nil)
	req.Header.Set("Origin", "https://app.company.com")

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "https://app.company.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/microservices/attendance/docs" // swagger docs
	"github.com/samandr77/microservices/attendance/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware, registry *prometheus.Registry) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Recover, mw.Cors, mw.WithIP, mw.Log, mw.Metrics)

	mux.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/v1", func(r chi.Router) {
			r.Get("/login/screen", h.LoginScreen)
			r.Post("/login/navigate", h.LoginNavigate)

			r.Group(func(r chi.Router) {
				r.Use(mw.RateLimit)
				r.Post("/auth/login", h.Login)
				r.Post("/auth/forgot-password", h.ForgotPassword)
			})

			r.Group(func(r chi.Router) {
				r.Use(mw.BearerAuth)

				r.Post("/auth/logout", h.Logout)
				r.Post("/auth/change-password", h.ChangePassword)

				r.Get("/screen", h.CurrentScreen)
				r.Post("/screen/events", h.Navigate)

				r.Get("/profile", h.Profile)
				r.Put("/profile", h.UpdateProfile)

				r.Get("/notifications", h.Notifications)
				r.Post("/notifications/{id}/read", h.MarkNotificationRead)
				r.Get("/settings/notifications", h.NotificationSettings)
				r.Put("/settings/notifications", h.UpdateNotificationSettings)
				r.Get("/settings/org", h.OrgSettings)
				r.Get("/leave/types", h.LeaveTypes)

				r.With(mw.RequirePermission(entity.PermissionViewDashboard)).Get("/dashboard", h.Dashboard)
				r.With(mw.RequirePermission(entity.PermissionViewTeam)).Get("/team", h.MyTeam)

				r.Group(func(r chi.Router) {
					r.Use(mw.RequirePermission(entity.PermissionRequestLeave))
					r.Post("/leave/requests", h.SubmitLeaveRequest)
					r.Get("/leave/requests", h.MyLeaveRequests)
					r.Delete("/leave/requests/{id}", h.CancelLeaveRequest)
					r.Get("/leave/balance", h.LeaveBalance)
				})

				r.Group(func(r chi.Router) {
					r.Use(mw.RequirePermission(entity.PermissionClock))
					r.Post("/attendance/clock", h.ClockInOut)
					r.Get("/attendance/report", h.AttendanceReport)
					r.Get("/attendance/trend", h.AttendanceTrend)
				})

				r.Group(func(r chi.Router) {
					r.Use(mw.RequirePermission(entity.PermissionApproveLeave))
					r.Get("/approvals", h.PendingApprovals)
					r.Post("/approvals/{id}/decision", h.DecideLeaveRequest)
				})

				r.Group(func(r chi.Router) {
					r.Use(mw.RequirePermission(entity.PermissionViewTeamReports))
					r.Get("/reports/team", h.TeamReport)
					r.Get("/reports/team.xlsx", h.TeamReportXLSX)
				})

				r.Group(func(r chi.Router) {
					r.Use(mw.RequirePermission(entity.PermissionManageUsers))
					r.Get("/users", h.SearchUsers)
					r.Put("/users/{id}/role", h.ChangeUserRole)
				})

				r.Group(func(r chi.Router) {
					r.Use(mw.RequirePermission(entity.PermissionManageConfiguration))
					r.Put("/settings/org", h.UpdateOrgSettings)
					r.Post("/leave/types", h.AddLeaveType)
					r.Put("/leave/types/{id}", h.RenameLeaveType)
					r.Delete("/leave/types/{id}", h.DeleteLeaveType)
				})
			})
		})
	})

	return mux
}

package entity

import "slices"

type Permission string

const (
	PermissionViewDashboard       Permission = "view_dashboard"
	PermissionRequestLeave        Permission = "request_leave"
	PermissionViewTeam            Permission = "view_team"
	PermissionClock               Permission = "clock"
	PermissionApproveLeave        Permission = "approve_leave"
	PermissionViewTeamReports     Permission = "view_team_reports"
	PermissionManageUsers         Permission = "manage_users"
	PermissionManageConfiguration Permission = "manage_configuration"
)

var rolePermissions = map[Role][]Permission{
	RoleEmployee: {
		PermissionViewDashboard,
		PermissionRequestLeave,
		PermissionViewTeam,
		PermissionClock,
	},
	RoleManager: {
		PermissionViewDashboard,
		PermissionRequestLeave,
		PermissionViewTeam,
		PermissionClock,
		PermissionApproveLeave,
		PermissionViewTeamReports,
	},
	RoleHR: {
		PermissionViewDashboard,
		PermissionRequestLeave,
		PermissionViewTeam,
		PermissionClock,
		PermissionApproveLeave,
		PermissionViewTeamReports,
		PermissionManageUsers,
		PermissionManageConfiguration,
	},
}

func PermissionsByRole(role Role) []Permission {
	return rolePermissions[role]
}

func HasPermission(role Role, permission Permission) bool {
	return slices.Contains(rolePermissions[role], permission)
}

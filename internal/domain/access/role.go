// Package access resuelve identidad → rol, tienda y permisos, y responde las
// preguntas de autorización que usan la navegación, los dashboards y el
// filtrado de datos. Todas las operaciones son puras: un email desconocido
// produce el valor "sin acceso" (cero/false/vacío), nunca un error.
package access

// Role es uno de exactamente tres átomos; no hay transición de rol en runtime.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleCashier    Role = "cashier"
)

// Permission nombra una acción o vista permitida, otorgada por rol.
type Permission string

const (
	PermViewDashboard   Permission = "view_dashboard"
	PermManageUsers     Permission = "manage_users"
	PermManageStores    Permission = "manage_stores"
	PermSystemSettings  Permission = "system_settings"
	PermManageInventory Permission = "manage_inventory"
	PermViewInventory   Permission = "view_inventory"
	PermViewReports     Permission = "view_reports"
	PermManageBarcodes  Permission = "manage_barcodes"
	PermViewActivity    Permission = "view_activity"
	PermExportData      Permission = "export_data"
	PermManageBilling   Permission = "manage_billing"
)

// rolePermissions es la tabla fija rol → permisos. Es función total del rol:
// no existen overrides por usuario. Solo se expone vía PermissionsForRole.
var rolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermViewDashboard,
		PermManageUsers,
		PermManageStores,
		PermSystemSettings,
	},
	RoleAdmin: {
		PermViewDashboard,
		PermManageInventory,
		PermViewInventory,
		PermViewReports,
		PermManageBarcodes,
		PermViewActivity,
		PermExportData,
	},
	RoleCashier: {
		PermViewDashboard,
		PermManageBilling,
		PermViewInventory,
	},
}

// PermissionsForRole devuelve una copia del conjunto de permisos del rol
// (vacío para roles desconocidos).
func PermissionsForRole(role Role) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// RoleDisplayName nombre legible del rol para la UI.
func RoleDisplayName(role Role) string {
	switch role {
	case RoleSuperAdmin:
		return "Super Administrator"
	case RoleAdmin:
		return "Administrator"
	case RoleCashier:
		return "Cashier"
	default:
		return "Unknown Role"
	}
}

// ValidRole indica si el rol es uno de los tres átomos conocidos.
func ValidRole(role Role) bool {
	_, ok := rolePermissions[role]
	return ok
}

package access

// viewPermissions mapea cada vista de la aplicación al permiso que exige.
// Vistas desconocidas se deniegan siempre.
var viewPermissions = map[string]Permission{
	"dashboard": PermViewDashboard,
	"billing":   PermManageBilling,
	"inventory": PermViewInventory,
	"stores":    PermManageStores,
	"users":     PermManageUsers,
	"reports":   PermViewReports,
	"barcode":   PermManageBarcodes,
	"activity":  PermViewActivity,
	"lowstock":  PermViewInventory,
}

// NavItem es una entrada de navegación de la UI.
type NavItem struct {
	ID             string
	Label          string
	Permission     Permission
	Icon           string
	SuperAdminOnly bool
}

// navItems lista ordenada y fija de navegación; se filtra por permiso y por
// la marca SuperAdminOnly.
var navItems = []NavItem{
	{ID: "dashboard", Label: "Dashboard", Permission: PermViewDashboard, Icon: "Home"},
	{ID: "billing", Label: "Billing", Permission: PermManageBilling, Icon: "CreditCard"},
	{ID: "inventory", Label: "Inventory", Permission: PermViewInventory, Icon: "Package"},
	{ID: "stores", Label: "Stores", Permission: PermManageStores, Icon: "Store", SuperAdminOnly: true},
	{ID: "users", Label: "Users", Permission: PermManageUsers, Icon: "Users", SuperAdminOnly: true},
	{ID: "reports", Label: "Reports", Permission: PermViewReports, Icon: "BarChart3"},
	{ID: "barcode", Label: "Barcodes", Permission: PermManageBarcodes, Icon: "QrCode"},
	{ID: "activity", Label: "Activity", Permission: PermViewActivity, Icon: "Activity"},
	{ID: "lowstock", Label: "Low Stock", Permission: PermViewInventory, Icon: "AlertTriangle"},
}

// Resolver responde preguntas de autorización contra un Directory inyectado.
// Sin estado mutable: seguro para uso concurrente.
type Resolver struct {
	dir Directory
}

// NewResolver construye el resolver sobre el directorio dado.
func NewResolver(dir Directory) *Resolver {
	return &Resolver{dir: dir}
}

// Role devuelve el rol del email, o "" si no está autorizado.
func (r *Resolver) Role(email string) Role {
	u, ok := r.dir.Lookup(email)
	if !ok {
		return ""
	}
	return u.Role
}

// StoreID devuelve la tienda asignada, o "" si es super admin (todas las
// tiendas) o el email no está autorizado.
func (r *Resolver) StoreID(email string) string {
	u, _ := r.dir.Lookup(email)
	return u.StoreID
}

// StoreName devuelve el nombre de la tienda asignada, o "" si no está autorizado.
func (r *Resolver) StoreName(email string) string {
	u, _ := r.dir.Lookup(email)
	return u.StoreName
}

// IsAuthorized indica si el email figura en el directorio.
func (r *Resolver) IsAuthorized(email string) bool {
	_, ok := r.dir.Lookup(email)
	return ok
}

// IsSuperAdmin indica si el email tiene alcance de toda la compañía.
func (r *Resolver) IsSuperAdmin(email string) bool {
	return r.Role(email) == RoleSuperAdmin
}

// CanAccessStore indica si el usuario puede ver datos de la tienda dada:
// super admin siempre; el resto solo su tienda asignada.
func (r *Resolver) CanAccessStore(email, storeID string) bool {
	if r.IsSuperAdmin(email) {
		return true
	}
	sid := r.StoreID(email)
	return sid != "" && sid == storeID
}

// AccessibleStoreIDs devuelve nil (sentinela: todas las tiendas) para super
// admin; si no, la tienda asignada o un slice vacío no-nil si no tiene.
func (r *Resolver) AccessibleStoreIDs(email string) []string {
	if r.IsSuperAdmin(email) {
		return nil
	}
	if sid := r.StoreID(email); sid != "" {
		return []string{sid}
	}
	return []string{}
}

// Permissions devuelve los permisos del email (vacío si no está autorizado).
func (r *Resolver) Permissions(email string) []Permission {
	return PermissionsForRole(r.Role(email))
}

// HasPermission verifica pertenencia al conjunto de permisos del rol.
func (r *Resolver) HasPermission(email string, perm Permission) bool {
	for _, p := range PermissionsForRole(r.Role(email)) {
		if p == perm {
			return true
		}
	}
	return false
}

// CanAccessView indica si el usuario puede entrar a una vista por nombre.
// Vistas desconocidas se deniegan.
func (r *Resolver) CanAccessView(email, view string) bool {
	perm, ok := viewPermissions[view]
	if !ok {
		return false
	}
	return r.HasPermission(email, perm)
}

// NavigationItems filtra la navegación por permiso y oculta las entradas
// SuperAdminOnly a quien no sea super admin.
func (r *Resolver) NavigationItems(email string) []NavItem {
	isSuper := r.IsSuperAdmin(email)
	var out []NavItem
	for _, item := range navItems {
		if !r.HasPermission(email, item.Permission) {
			continue
		}
		if item.SuperAdminOnly && !isSuper {
			continue
		}
		out = append(out, item)
	}
	return out
}

// FilterByStore filtra items por el alcance de tienda del usuario: identidad
// para super admin, solo su tienda para el resto, vacío si no tiene tienda.
// storeID extrae la tienda de cada elemento.
func FilterByStore[T any](r *Resolver, email string, items []T, storeID func(T) string) []T {
	if r.IsSuperAdmin(email) {
		return items
	}
	sid := r.StoreID(email)
	if sid == "" {
		return []T{}
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if storeID(it) == sid {
			out = append(out, it)
		}
	}
	return out
}

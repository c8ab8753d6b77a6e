package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/retail-pos/internal/domain/access"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
)

func defaultResolver() *access.Resolver {
	return access.NewResolver(access.DefaultDirectory())
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de rol y tienda
// ──────────────────────────────────────────────────────────────────────────────

func TestRole_SuperAdminDelDirectorio(t *testing.T) {
	r := defaultResolver()

	assert.Equal(t, access.RoleSuperAdmin, r.Role("nprakash315349@gmail.com"))
	assert.Equal(t, "", r.StoreID("nprakash315349@gmail.com"),
		"super admin no tiene tienda asignada (alcance total)")
}

func TestRole_InsensibleAMayusculas(t *testing.T) {
	r := defaultResolver()
	assert.Equal(t, access.RoleAdmin, r.Role("Admin@MyStore.com"))
}

func TestRole_EmailDesconocidoEsVacio(t *testing.T) {
	r := defaultResolver()
	assert.Equal(t, access.Role(""), r.Role("unknown@x.com"))
	assert.Equal(t, access.Role(""), r.Role(""))
	assert.False(t, r.IsAuthorized("unknown@x.com"))
}

func TestStoreName_DelDirectorio(t *testing.T) {
	r := defaultResolver()
	assert.Equal(t, "Main Store", r.StoreName("cashier@mystore.com"))
	assert.Equal(t, "", r.StoreName("unknown@x.com"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Acceso a tiendas
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAccessStore_SuperAdminBypass(t *testing.T) {
	r := defaultResolver()
	assert.True(t, r.CanAccessStore("nprakash315349@gmail.com", "store_001"))
	assert.True(t, r.CanAccessStore("nprakash315349@gmail.com", "store_999"))
}

func TestCanAccessStore_SoloSuTienda(t *testing.T) {
	r := defaultResolver()
	assert.True(t, r.CanAccessStore("admin@mystore.com", "store_001"))
	assert.False(t, r.CanAccessStore("admin@mystore.com", "store_002"))
	assert.False(t, r.CanAccessStore("unknown@x.com", "store_001"))
}

func TestAccessibleStoreIDs_Sentinelas(t *testing.T) {
	r := defaultResolver()

	assert.Nil(t, r.AccessibleStoreIDs("nprakash315349@gmail.com"),
		"nil es el sentinela de acceso a todas las tiendas")

	assert.Equal(t, []string{"store_001"}, r.AccessibleStoreIDs("cashier@mystore.com"))

	got := r.AccessibleStoreIDs("unknown@x.com")
	require.NotNil(t, got, "no autorizado recibe slice vacío, no el sentinela de todas")
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos y vistas
// ──────────────────────────────────────────────────────────────────────────────

// El cajero factura pero no gestiona inventario.
func TestHasPermission_Cashier(t *testing.T) {
	r := defaultResolver()

	assert.False(t, r.HasPermission("cashier@mystore.com", access.PermManageInventory))
	assert.True(t, r.HasPermission("cashier@mystore.com", access.PermManageBilling))
	assert.True(t, r.HasPermission("cashier@mystore.com", access.PermViewInventory))
}

func TestHasPermission_EmailDesconocido(t *testing.T) {
	r := defaultResolver()
	assert.False(t, r.HasPermission("unknown@x.com", access.PermViewDashboard))
}

func TestCanAccessView_Casos(t *testing.T) {
	r := defaultResolver()

	assert.False(t, r.CanAccessView("unknown@x.com", "dashboard"),
		"email no autorizado no tiene rol, por tanto ningún permiso")
	assert.True(t, r.CanAccessView("cashier@mystore.com", "billing"))
	assert.True(t, r.CanAccessView("cashier@mystore.com", "lowstock"),
		"lowstock requiere view_inventory, que el cajero tiene")
	assert.False(t, r.CanAccessView("cashier@mystore.com", "reports"))
	assert.True(t, r.CanAccessView("admin@mystore.com", "reports"))
	assert.False(t, r.CanAccessView("admin@mystore.com", "users"))
	assert.True(t, r.CanAccessView("nprakash315349@gmail.com", "users"))
}

func TestCanAccessView_VistaDesconocidaSeDeniega(t *testing.T) {
	r := defaultResolver()
	assert.False(t, r.CanAccessView("nprakash315349@gmail.com", "no-such-view"))
}

func TestPermissionsForRole_DevuelveCopia(t *testing.T) {
	perms := access.PermissionsForRole(access.RoleCashier)
	require.NotEmpty(t, perms)
	perms[0] = "mutated"

	again := access.PermissionsForRole(access.RoleCashier)
	assert.Equal(t, access.PermViewDashboard, again[0],
		"mutar la copia no debe afectar la tabla interna")
}

// ──────────────────────────────────────────────────────────────────────────────
// Navegación
// ──────────────────────────────────────────────────────────────────────────────

func TestNavigationItems_PorRol(t *testing.T) {
	r := defaultResolver()

	ids := func(items []access.NavItem) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.ID)
		}
		return out
	}

	assert.Equal(t, []string{"dashboard", "billing", "inventory", "lowstock"},
		ids(r.NavigationItems("cashier@mystore.com")))

	assert.Equal(t, []string{"dashboard", "inventory", "reports", "barcode", "activity", "lowstock"},
		ids(r.NavigationItems("admin@mystore.com")))

	assert.Equal(t, []string{"dashboard", "stores", "users"},
		ids(r.NavigationItems("nprakash315349@gmail.com")))

	assert.Empty(t, r.NavigationItems("unknown@x.com"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtrado por tienda
// ──────────────────────────────────────────────────────────────────────────────

func storeOf(p *entity.Product) string { return p.StoreID }

func TestFilterByStore_Casos(t *testing.T) {
	r := defaultResolver()
	data := []*entity.Product{
		{ID: "a", StoreID: "store_001"},
		{ID: "b", StoreID: "store_002"},
		{ID: "c", StoreID: "store_001"},
	}

	// Super admin: identidad.
	assert.Len(t, access.FilterByStore(r, "nprakash315349@gmail.com", data, storeOf), 3)

	// Admin de tienda: solo su tienda.
	filtered := access.FilterByStore(r, "admin@mystore.com", data, storeOf)
	require.Len(t, filtered, 2)
	for _, p := range filtered {
		assert.Equal(t, "store_001", p.StoreID)
	}

	// Sin tienda asignada (no autorizado): vacío.
	assert.Empty(t, access.FilterByStore(r, "unknown@x.com", data, storeOf))
}

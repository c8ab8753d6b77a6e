package access

import "strings"

// User es una entrada del directorio de usuarios autorizados. Las entradas se
// configuran en despliegue, no se crean en runtime (el auto-registro de
// cuentas es un asunto aparte).
type User struct {
	Email     string
	Role      Role
	StoreID   string // vacío = alcance de toda la compañía (super admin)
	StoreName string
}

// Directory es el puerto de solo lectura contra el que el Resolver consulta.
// Puede respaldarse por configuración estática, un archivo o un identity
// store real sin cambiar la lógica de resolución.
type Directory interface {
	// Lookup busca por email en minúsculas. ok=false si no está autorizado.
	Lookup(email string) (User, bool)
	// All devuelve todas las entradas (para la vista de usuarios del super admin).
	All() []User
}

// StaticDirectory implementación de Directory sobre un mapa en memoria,
// indexado por email en minúsculas.
type StaticDirectory struct {
	byEmail map[string]User
	ordered []User
}

var _ Directory = (*StaticDirectory)(nil)

// NewStaticDirectory construye el directorio normalizando emails a minúsculas.
// Entradas con email vacío o rol desconocido se descartan.
func NewStaticDirectory(users []User) *StaticDirectory {
	d := &StaticDirectory{byEmail: make(map[string]User, len(users))}
	for _, u := range users {
		email := strings.ToLower(strings.TrimSpace(u.Email))
		if email == "" || !ValidRole(u.Role) {
			continue
		}
		u.Email = email
		if _, dup := d.byEmail[email]; dup {
			continue
		}
		d.byEmail[email] = u
		d.ordered = append(d.ordered, u)
	}
	return d
}

// Lookup busca una entrada por email (insensible a mayúsculas).
func (d *StaticDirectory) Lookup(email string) (User, bool) {
	if email == "" {
		return User{}, false
	}
	u, ok := d.byEmail[strings.ToLower(strings.TrimSpace(email))]
	return u, ok
}

// All devuelve las entradas en orden de configuración.
func (d *StaticDirectory) All() []User {
	out := make([]User, len(d.ordered))
	copy(out, d.ordered)
	return out
}

// DefaultUsers es el directorio sembrado del despliegue original: tres super
// admins a nivel compañía y el personal de la tienda principal.
func DefaultUsers() []User {
	return []User{
		{Email: "nprakash315349@gmail.com", Role: RoleSuperAdmin, StoreName: "Company Admin"},
		{Email: "draupathiitsolutions@gmail.com", Role: RoleSuperAdmin, StoreName: "Company Admin"},
		{Email: "ututhay@gmail.com", Role: RoleSuperAdmin, StoreName: "Company Admin"},

		{Email: "admin@mystore.com", Role: RoleAdmin, StoreID: "store_001", StoreName: "Main Store"},
		{Email: "manager@mystore.com", Role: RoleAdmin, StoreID: "store_001", StoreName: "Main Store"},

		{Email: "cashier@mystore.com", Role: RoleCashier, StoreID: "store_001", StoreName: "Main Store"},
	}
}

// DefaultDirectory construye el directorio por defecto.
func DefaultDirectory() *StaticDirectory {
	return NewStaticDirectory(DefaultUsers())
}

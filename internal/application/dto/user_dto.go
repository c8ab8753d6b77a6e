package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse token emitido tras autenticar.
type LoginResponse struct {
	Token string     `json:"token"`
	User  MeResponse `json:"user"`
}

// MeResponse identidad y autorización del usuario actual.
type MeResponse struct {
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	RoleDisplay string    `json:"role_display"`
	StoreID     string    `json:"store_id,omitempty"`
	StoreName   string    `json:"store_name,omitempty"`
	Permissions []string  `json:"permissions"`
	Navigation  []NavItem `json:"navigation"`
}

// NavItem entrada del menú de navegación visible para el rol.
type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// DirectoryUserResponse una entrada del directorio de autorización.
type DirectoryUserResponse struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	StoreID   string `json:"store_id,omitempty"`
	StoreName string `json:"store_name,omitempty"`
}

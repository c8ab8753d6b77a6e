// Package directory carga el directorio de usuarios autorizados desde un
// archivo YAML. Sin archivo configurado se usa el directorio por defecto.
package directory

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tu-usuario/retail-pos/internal/domain/access"
	"github.com/tu-usuario/retail-pos/pkg/logger"
)

// fileUser una entrada del archivo YAML.
type fileUser struct {
	Email     string `mapstructure:"email"`
	Role      string `mapstructure:"role"`
	StoreID   string `mapstructure:"store_id"`
	StoreName string `mapstructure:"store_name"`
}

// Load construye el directorio desde el archivo dado. Con path vacío devuelve
// el directorio por defecto; un archivo ilegible es error (mejor no arrancar
// que arrancar con autorización equivocada).
func Load(path string, log *logger.Logger) (access.Directory, error) {
	if path == "" {
		log.Info().Msg("sin USERS_FILE: usando directorio de usuarios por defecto")
		return access.DefaultDirectory(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("leer directorio de usuarios %s: %w", path, err)
	}

	var raw []fileUser
	if err := v.UnmarshalKey("users", &raw); err != nil {
		return nil, fmt.Errorf("parsear directorio de usuarios %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("directorio de usuarios %s sin entradas", path)
	}

	users := make([]access.User, 0, len(raw))
	for _, u := range raw {
		users = append(users, access.User{
			Email:     u.Email,
			Role:      access.Role(u.Role),
			StoreID:   u.StoreID,
			StoreName: u.StoreName,
		})
	}

	dir := access.NewStaticDirectory(users)
	log.Info().Int("usuarios", len(dir.All())).Str("archivo", path).Msg("directorio de usuarios cargado")
	return dir, nil
}

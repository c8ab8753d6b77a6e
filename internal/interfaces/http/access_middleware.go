package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain/access"
)

// RequirePermission autoriza la ruta contra el resolver: el permiso se evalúa
// por email contra el directorio vigente, no contra el claim del token, para
// que revocar una entrada del directorio surta efecto sin esperar a que el
// token expire.
func RequirePermission(resolver *access.Resolver, perm access.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := GetEmail(c)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_EMAIL", Message: "token sin identidad"})
		}
		if !resolver.HasPermission(email, perm) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso insuficiente"})
		}
		return c.Next()
	}
}

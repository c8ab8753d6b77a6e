package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
)

// UserHandler gestión de cuentas y directorio (protegido, solo super admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register godoc
// @Summary      Crear cuenta para un email del directorio
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  usecase.RegisterRequest  true  "Datos de la cuenta"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse  "email fuera del directorio"
// @Router       /api/users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in usecase.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if err := h.uc.Register(GetEmail(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Directory godoc
// @Summary      Entradas del directorio de autorización
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DirectoryUserResponse
// @Router       /api/users/directory [get]
func (h *UserHandler) Directory(c *fiber.Ctx) error {
	out, err := h.uc.Directory(GetEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

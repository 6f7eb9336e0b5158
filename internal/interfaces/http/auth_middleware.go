package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/pkg/jwt"
)

// Locals keys de la identidad de la sesión en Fiber.
const (
	LocalUserID       = "user_id"
	LocalEmail        = "email"
	LocalBusinessName = "business_name"
	LocalGuest        = "guest"
)

// AuthMiddleware valida el Bearer Token JWT y carga la identidad en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalEmail, id.Email)
		c.Locals(LocalBusinessName, id.BusinessName)
		c.Locals(LocalGuest, id.Guest)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetActor nombre con el que las acciones quedan en el historial.
// Sin nombre comercial el historial usa el actor System.
func GetActor(c *fiber.Ctx) string {
	return localString(c, LocalBusinessName)
}

// IsGuest indica si la sesión es la de invitado.
func IsGuest(c *fiber.Ctx) bool {
	v, _ := c.Locals(LocalGuest).(bool)
	return v
}

// CurrentUser reconstruye el usuario de la sesión a partir del token.
func CurrentUser(c *fiber.Ctx) entity.User {
	return entity.User{
		ID:           GetUserID(c),
		Email:        localString(c, LocalEmail),
		BusinessName: GetActor(c),
	}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

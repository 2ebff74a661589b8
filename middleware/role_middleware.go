package middleware

import (
	"github.com/gofiber/fiber/v2"
	"hr-automation-hub/models"
	apimodels "hr-automation-hub/models/api"
	authutils "hr-automation-hub/lib/utils/auth-utils"
)

// RoleRequired пропускает только пользователей с ролью из списка,
// сравнение строгое, с учётом регистра
func RoleRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := GetUserRole(ctx)
		if role == "" || !role.In(roles...) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("Forbidden"))
		}
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if id, ok := sub.(string); ok {
			return id
		}
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		if username, ok := name.(string); ok {
			return username
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

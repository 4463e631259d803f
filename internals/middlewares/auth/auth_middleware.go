// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "ampliauto_backend/internals/helpers"
)

const (
	LocUserID    = "user_id"
	LocUserEmail = "user_email"
)

type AuthAdminOpts struct {
	Secret              string
	AdminEmail          string
	BlacklistChecker    func(rawToken string) (bool, error) // true = token revogado
	OnNotAllowed        func(c *fiber.Ctx, rawToken string)  // encerra a sessão (blacklist + limpa cookies)
	AllowCookieFallback bool                                 // usa cookie access_token se não houver Bearer
}

// AuthAdmin protege o prefixo /api/a: exige token válido E e-mail do admin.
// Sem token → 401 com redirect para /login?next=<path>.
// Token válido de outro e-mail → sessão encerrada + 403 com /login?error=not_allowed.
// Requests de navegador (Accept: text/html) recebem 302 de verdade.
func AuthAdmin(o AuthAdminOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthAdmin: Secret é obrigatório")
	}
	admin := strings.ToLower(strings.TrimSpace(o.AdminEmail))
	if admin == "" {
		panic("AuthAdmin: AdminEmail é obrigatório")
	}

	return func(c *fiber.Ctx) error {
		raw := extractToken(c, o.AllowCookieFallback)
		if raw == "" {
			return redirectToLogin(c, fiber.StatusUnauthorized, loginNextTarget(c), "Não autenticado")
		}

		if o.BlacklistChecker != nil {
			if black, err := o.BlacklistChecker(raw); err == nil && black {
				return redirectToLogin(c, fiber.StatusUnauthorized, loginNextTarget(c), "Sessão encerrada")
			}
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Método de assinatura inválido")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return redirectToLogin(c, fiber.StatusUnauthorized, loginNextTarget(c), "Token inválido ou expirado")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return redirectToLogin(c, fiber.StatusUnauthorized, loginNextTarget(c), "Claims inválidas")
		}

		email := strings.ToLower(strings.TrimSpace(strClaim(claims, "email")))
		if email != admin {
			// e-mail autenticado mas não autorizado: derruba a sessão, sem retry
			if o.OnNotAllowed != nil {
				o.OnNotAllowed(c, raw)
			}
			return redirectToLogin(c, fiber.StatusForbidden, "/login?error=not_allowed", "Acesso restrito ao administrador")
		}

		if sub := strClaim(claims, "sub"); sub != "" {
			c.Locals(LocUserID, sub)
		}
		c.Locals(LocUserEmail, email)
		helper.SetRawAccessToken(c, raw)

		return c.Next()
	}
}

// RedirectIfAuthenticated manda um admin já logado direto para o painel
// quando ele tenta acessar /login de novo.
func RedirectIfAuthenticated(secret, adminEmail string) fiber.Handler {
	admin := strings.ToLower(strings.TrimSpace(adminEmail))
	return func(c *fiber.Ctx) error {
		raw := extractToken(c, true)
		if raw == "" {
			return c.Next()
		}
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Método de assinatura inválido")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return c.Next()
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok || strings.ToLower(strClaim(claims, "email")) != admin {
			return c.Next()
		}
		if wantsHTML(c) {
			return c.Redirect("/app/painel", fiber.StatusFound)
		}
		return helper.JsonOK(c, "Sessão ativa", fiber.Map{"redirect": "/app/painel"})
	}
}

/* ==========================
   Internos
========================== */

func extractToken(c *fiber.Ctx, cookieFallback bool) string {
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	if cookieFallback {
		return strings.TrimSpace(c.Cookies("access_token"))
	}
	return ""
}

func loginNextTarget(c *fiber.Ctx) string {
	return "/login?next=" + url.QueryEscape(c.OriginalURL())
}

func redirectToLogin(c *fiber.Ctx, status int, target, message string) error {
	if wantsHTML(c) {
		return c.Redirect(target, fiber.StatusFound)
	}
	return c.Status(status).JSON(fiber.Map{
		"code":     status,
		"status":   "error",
		"message":  message,
		"redirect": target,
	})
}

func wantsHTML(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), "text/html")
}

func strClaim(m jwt.MapClaims, k string) string {
	if v, ok := m[k].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

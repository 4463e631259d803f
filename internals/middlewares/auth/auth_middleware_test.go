package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	testSecret = "segredo-de-teste"
	testAdmin  = "fernandolima@ampliauto.com.br"
)

func signToken(t *testing.T, email string) string {
	t.Helper()
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"typ":   "access",
		"sub":   "3f1c2ad9-0c39-4a16-9f50-1df1c0a1b2c3",
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newTestApp(opts AuthAdminOpts) *fiber.App {
	app := fiber.New()
	app.Get("/api/a/panel", AuthAdmin(opts), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals(LocUserID),
			"email":   c.Locals(LocUserEmail),
		})
	})
	return app
}

func defaultOpts() AuthAdminOpts {
	return AuthAdminOpts{
		Secret:              testSecret,
		AdminEmail:          testAdmin,
		AllowCookieFallback: true,
	}
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return out
}

func TestAuthAdminMissingToken(t *testing.T) {
	app := newTestApp(defaultOpts())

	req := httptest.NewRequest(http.MethodGet, "/api/a/panel", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	redirect, _ := body["redirect"].(string)
	if !strings.HasPrefix(redirect, "/login?next=") {
		t.Fatalf("redirect = %q, want /login?next=...", redirect)
	}
}

func TestAuthAdminBrowserGetsRealRedirect(t *testing.T) {
	app := newTestApp(defaultOpts())

	req := httptest.NewRequest(http.MethodGet, "/api/a/panel", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302 for browser requests", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	if !strings.HasPrefix(loc, "/login?next=") {
		t.Fatalf("Location = %q, want /login?next=...", loc)
	}
}

func TestAuthAdminNonAdminEmail(t *testing.T) {
	terminated := false
	opts := defaultOpts()
	opts.OnNotAllowed = func(c *fiber.Ctx, rawToken string) {
		terminated = true
	}
	app := newTestApp(opts)

	req := httptest.NewRequest(http.MethodGet, "/api/a/panel", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "intruso@example.com"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if !terminated {
		t.Fatalf("expected OnNotAllowed to be called for non-admin email")
	}
	body := decodeBody(t, resp)
	if redirect, _ := body["redirect"].(string); redirect != "/login?error=not_allowed" {
		t.Fatalf("redirect = %q, want /login?error=not_allowed", redirect)
	}
}

func TestAuthAdminAcceptsAdminBearer(t *testing.T) {
	app := newTestApp(defaultOpts())

	req := httptest.NewRequest(http.MethodGet, "/api/a/panel", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testAdmin))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if got, _ := body["email"].(string); got != testAdmin {
		t.Fatalf("email local = %q, want %q", got, testAdmin)
	}
	if got, _ := body["user_id"].(string); got == "" {
		t.Fatalf("user_id local should be set from sub claim")
	}
}

func TestAuthAdminAcceptsAdminCookie(t *testing.T) {
	app := newTestApp(defaultOpts())

	req := httptest.NewRequest(http.MethodGet, "/api/a/panel", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, testAdmin)})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 via cookie fallback", resp.StatusCode)
	}
}

func TestAuthAdminRejectsBlacklistedToken(t *testing.T) {
	opts := defaultOpts()
	opts.BlacklistChecker = func(rawToken string) (bool, error) {
		return true, nil
	}
	app := newTestApp(opts)

	req := httptest.NewRequest(http.MethodGet, "/api/a/panel", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testAdmin))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for revoked token", resp.StatusCode)
	}
}

func TestAuthAdminRejectsBadSignature(t *testing.T) {
	app := newTestApp(defaultOpts())

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": testAdmin,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := other.SignedString([]byte("outro-segredo"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/a/panel", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for bad signature", resp.StatusCode)
	}
}

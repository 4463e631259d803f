package helper

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func doRequest(t *testing.T, handler fiber.Handler) (*http.Response, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/t", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return resp, body
}

func TestJsonErrorEnvelope(t *testing.T) {
	resp, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusConflict, "conta já está paga")
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
	if body["success"] != false {
		t.Fatalf("success = %v, want false", body["success"])
	}
	if body["error_code"] != "CONFLICT" {
		t.Fatalf("error_code = %v, want CONFLICT", body["error_code"])
	}
	if body["message"] != "conta já está paga" {
		t.Fatalf("message = %v", body["message"])
	}
}

func TestJsonErrorDefaults(t *testing.T) {
	resp, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonError(c, 0, "")
	})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 default", resp.StatusCode)
	}
	if body["error_code"] != "INTERNAL_ERROR" {
		t.Fatalf("error_code = %v, want INTERNAL_ERROR", body["error_code"])
	}
}

func TestJsonOKEnvelope(t *testing.T) {
	resp, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "", fiber.Map{"saldo": 229.5})
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["success"] != true {
		t.Fatalf("success = %v, want true", body["success"])
	}
	data, ok := body["data"].(map[string]any)
	if !ok || data["saldo"] != 229.5 {
		t.Fatalf("data = %v", body["data"])
	}
}

package service

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("senha-forte-123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "" || hash == "senha-forte-123" {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}
	if err := CheckPasswordHash(hash, "senha-forte-123"); err != nil {
		t.Fatalf("expected check ok: %v", err)
	}
	if err := CheckPasswordHash(hash, "senha-errada"); err == nil {
		t.Fatalf("expected check fail for wrong password")
	}
}

func TestValidateRegisterInput(t *testing.T) {
	cases := []struct {
		name, userName, email, password string
		wantErr                         bool
	}{
		{"ok", "Fernando", "fernandolima@ampliauto.com.br", "senha-forte-123", false},
		{"empty name", "  ", "a@b.com", "senha-forte-123", true},
		{"bad email", "Fernando", "não-é-email", "senha-forte-123", true},
		{"short password", "Fernando", "a@b.com", "curta", true},
	}
	for _, tc := range cases {
		err := ValidateRegisterInput(tc.userName, tc.email, tc.password)
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: err = %v, wantErr = %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestValidateLoginInput(t *testing.T) {
	if err := ValidateLoginInput("a@b.com", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateLoginInput("", "x"); err == nil {
		t.Fatalf("expected error for empty email")
	}
	if err := ValidateLoginInput("a@b.com", ""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

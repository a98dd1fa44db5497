package handler

import (
	"testing"

	"github.com/AngeloApolinario/philmarresort/internal/config"

	"golang.org/x/crypto/bcrypt"
)

func gateWith(t *testing.T, username, password string) *AdminHandler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &AdminHandler{
		Gate: config.AdminConfig{Username: username, PasswordHash: string(hash)},
	}
}

func TestCheckGate(t *testing.T) {
	h := gateWith(t, "resortadmin", "correct horse")

	if !h.checkGate("resortadmin", "correct horse") {
		t.Error("valid operator credentials rejected")
	}
	if h.checkGate("resortadmin", "wrong") {
		t.Error("wrong password accepted")
	}
	if h.checkGate("someoneelse", "correct horse") {
		t.Error("wrong username accepted")
	}
	if h.checkGate("", "") {
		t.Error("empty credentials accepted")
	}
}

func TestCheckGate_NoPlaintextConfig(t *testing.T) {
	// the gate never works when the config mistakenly holds a plaintext
	// password instead of a bcrypt hash
	h := &AdminHandler{
		Gate: config.AdminConfig{Username: "resortadmin", PasswordHash: "plaintext-password"},
	}
	if h.checkGate("resortadmin", "plaintext-password") {
		t.Error("plaintext password column must never validate")
	}
}

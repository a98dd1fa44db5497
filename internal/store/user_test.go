package store

import (
	"errors"
	"strings"
	"testing"
)

func TestRegister(t *testing.T) {
	users := NewUsers(openTestDB(t))

	u, err := users.Register("Juan Dela Cruz", "Juan@Example.COM", "Secret123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if u.Email != "juan@example.com" {
		t.Errorf("email = %q, want lowercase normalized", u.Email)
	}
	if u.PasswordHash == "" || u.PasswordHash == "Secret123" {
		t.Error("password must be stored as a hash, never plaintext")
	}
	if !strings.HasPrefix(u.PasswordHash, "$2") {
		t.Errorf("password hash %q is not bcrypt", u.PasswordHash)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := NewUsers(openTestDB(t))
	registerTestUser(t, users)

	// same email, different case
	_, err := users.Register("Impostor", "JUAN@example.com", "Other123")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("Register() error = %v, want ErrDuplicateEmail", err)
	}

	all, err := users.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("user count = %d, want 1 (no duplicate persisted)", len(all))
	}
}

func TestRegister_MissingFields(t *testing.T) {
	users := NewUsers(openTestDB(t))

	for _, tc := range [][3]string{
		{"", "a@b.com", "pw"},
		{"Name", "", "pw"},
		{"Name", "a@b.com", ""},
	} {
		if _, err := users.Register(tc[0], tc[1], tc[2]); err == nil {
			t.Errorf("Register(%q, %q, ...) error = nil, want error", tc[0], tc[1])
		}
	}
}

func TestVerify(t *testing.T) {
	users := NewUsers(openTestDB(t))
	registerTestUser(t, users)

	// by email, case-insensitive
	u, err := users.Verify("JUAN@example.com", "Secret123")
	if err != nil {
		t.Fatalf("Verify() by email error = %v", err)
	}
	if u.Fullname != "Juan Dela Cruz" {
		t.Errorf("fullname = %q", u.Fullname)
	}

	if _, err := users.Verify("juan@example.com", "wrongpass"); !errors.Is(err, ErrBadPassword) {
		t.Errorf("Verify() wrong password error = %v, want ErrBadPassword", err)
	}
	if _, err := users.Verify("nobody@example.com", "Secret123"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Verify() unknown account error = %v, want ErrNotFound", err)
	}
	if _, err := users.Verify("", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Verify() empty credentials error = %v, want ErrNotFound", err)
	}
}

func TestVerify_ByUsername(t *testing.T) {
	db := openTestDB(t)
	users := NewUsers(db)
	u := registerTestUser(t, users)

	if err := db.Model(u).Update("username", "juandc").Error; err != nil {
		t.Fatalf("set username: %v", err)
	}

	got, err := users.Verify("juandc", "Secret123")
	if err != nil {
		t.Fatalf("Verify() by username error = %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("verified user id = %d, want %d", got.ID, u.ID)
	}
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	users := NewUsers(openTestDB(t))
	u := registerTestUser(t, users)
	originalHash := u.PasswordHash

	updated, err := users.UpdateProfile(u.ID, ProfileUpdate{Phone: "0917 123 4567"})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.Phone != "0917 123 4567" {
		t.Errorf("phone = %q, want updated value", updated.Phone)
	}
	if updated.Fullname != "Juan Dela Cruz" {
		t.Errorf("fullname = %q, must be untouched", updated.Fullname)
	}

	reloaded, err := users.Get(u.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if reloaded.PasswordHash != originalHash {
		t.Error("password hash changed on profile update")
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	users := NewUsers(openTestDB(t))

	if _, err := users.UpdateProfile(9999, ProfileUpdate{Fullname: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateProfile() error = %v, want ErrNotFound", err)
	}
}

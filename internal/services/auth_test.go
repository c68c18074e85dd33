package services

import (
	"testing"

	"github.com/Jeffrey-enterN/entern-ghosted/internal/config"
	"github.com/Jeffrey-enterN/entern-ghosted/internal/models"
	"github.com/Jeffrey-enterN/entern-ghosted/internal/utils"
)

func init() {
	utils.SetJWTSecret("test-secret-for-auth-service")
}

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(newTestDB(t), &config.JWTConfig{
		Secret:     "test-secret-for-auth-service",
		ExpireHour: 24,
	})
}

func TestCreateAdminIfNotExists(t *testing.T) {
	svc := newAuthFixture(t)

	if err := svc.CreateAdminIfNotExists("admin", "changeme"); err != nil {
		t.Fatalf("CreateAdminIfNotExists() error = %v", err)
	}

	// Second call is a no-op.
	if err := svc.CreateAdminIfNotExists("admin", "other"); err != nil {
		t.Fatalf("second CreateAdminIfNotExists() error = %v", err)
	}

	resp, err := svc.Login(&LoginRequest{Username: "admin", Password: "changeme"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token == "" {
		t.Error("login should return a token")
	}
	if resp.User.Role != "admin" {
		t.Errorf("Role = %q, expected %q", resp.User.Role, "admin")
	}
}

func TestLogin_RecordsLastLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, &config.JWTConfig{
		Secret:     "test-secret-for-auth-service",
		ExpireHour: 24,
	})
	svc.CreateAdminIfNotExists("admin", "changeme")

	if _, err := svc.Login(&LoginRequest{Username: "admin", Password: "changeme"}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	var user models.User
	if err := db.Where("username = ?", "admin").First(&user).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if user.LastLogin == nil {
		t.Error("LastLogin should be persisted after a successful login")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthFixture(t)
	svc.CreateAdminIfNotExists("admin", "changeme")

	if _, err := svc.Login(&LoginRequest{Username: "admin", Password: "wrong"}); err == nil {
		t.Error("login with wrong password should fail")
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newAuthFixture(t)

	if _, err := svc.Login(&LoginRequest{Username: "ghost", Password: "boo"}); err == nil {
		t.Error("login with unknown user should fail")
	}
}

package service

import (
	"errors"
	"strings"
	"testing"

	"fleetops/internal/auth-service/core/myerrors"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		role     string
		wantErr  bool
	}{
		{"valid dispatcher", "aidana", "aidana@fleet.kz", "secret1", "DISPATCHER", false},
		{"valid admin", "admin", "admin@fleet.kz", "secret1", "ADMIN", false},
		{"empty username", "", "aidana@fleet.kz", "secret1", "DRIVER", true},
		{"short password", "aidana", "aidana@fleet.kz", "abc", "DRIVER", true},
		{"two ats", "aidana", "a@@fleet.kz", "secret1", "DRIVER", true},
		{"unknown role", "aidana", "aidana@fleet.kz", "secret1", "PASSENGER", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateRegistration(tc.username, tc.email, tc.password, tc.role)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateRegistration() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateRegistrationUnknownRoleSentinel(t *testing.T) {
	err := validateRegistration("aidana", "aidana@fleet.kz", "secret1", "PILOT")
	if !errors.Is(err, myerrors.ErrUnknownRole) {
		t.Errorf("err = %v, want ErrUnknownRole", err)
	}
}

func TestValidateEmailBounds(t *testing.T) {
	if err := validateEmail("a@b"); err == nil {
		t.Error("expected error for too short email")
	}
	long := strings.Repeat("x", MaxEmailLen) + "@fleet.kz"
	if err := validateEmail(long); err == nil {
		t.Error("expected error for too long email")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := hashPassword("secret1")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}

	if !checkPassword(hash, "secret1") {
		t.Error("correct password rejected")
	}
	if checkPassword(hash, "secret2") {
		t.Error("wrong password accepted")
	}
}

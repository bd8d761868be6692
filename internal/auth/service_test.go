package auth

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterLoginRoundTrip(t *testing.T) {
	svc := NewService("test-secret")
	ctx := context.Background()

	reg, err := svc.Register(ctx, "ada@example.com", "correct horse", "Ada")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.Token == "" || reg.User.ID == "" {
		t.Fatalf("incomplete result: %+v", reg)
	}

	login, err := svc.Login(ctx, "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("login user %s, want %s", login.User.ID, reg.User.ID)
	}

	userID, err := svc.ValidateToken(login.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != reg.User.ID {
		t.Errorf("token subject %s, want %s", userID, reg.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService("test-secret")
	ctx := context.Background()

	if _, err := svc.Register(ctx, "ada@example.com", "password1", "Ada"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, "Ada@Example.com", "password2", "Other"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("got %v, want ErrEmailTaken", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService("test-secret")
	ctx := context.Background()

	if _, err := svc.Register(ctx, "ada@example.com", "password1", "Ada"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, "ada@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "password1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	issuer := NewService("secret-a")
	verifier := NewService("secret-b")
	ctx := context.Background()

	reg, err := issuer.Register(ctx, "ada@example.com", "password1", "Ada")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := verifier.ValidateToken(reg.Token); err == nil {
		t.Error("token signed with another secret should not validate")
	}
}

func TestGetUser(t *testing.T) {
	svc := NewService("test-secret")
	ctx := context.Background()

	reg, err := svc.Register(ctx, "ada@example.com", "password1", "Ada")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.GetUser(ctx, reg.User.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.DisplayName != "Ada" {
		t.Errorf("display name = %q", user.DisplayName)
	}

	if _, err := svc.GetUser(ctx, "user_missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}

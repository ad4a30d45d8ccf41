package auth

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPasswordAndAssignsRole(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"
	user, err := service.Register("Asha Stores", "asha@example.com", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.ID == "" {
		t.Fatal("expected a generated id")
	}
	if user.Role != RoleRetailer {
		t.Fatalf("expected retailer role, got %q", user.Role)
	}
	if user.Password == password {
		t.Fatal("password was stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		t.Fatal("stored hash does not verify against the password")
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("", "asha@example.com", "x"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Asha Stores", "asha@example.com", "Password@123"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := service.Register("Imposter", "asha@example.com", "Password@456"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	if _, err := service.Register("Asha Stores", "asha@example.com", "Password@123"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := service.Login("asha@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Login("nobody@example.com", "Password@123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	user, err := service.Login("asha@example.com", "Password@123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Email != "asha@example.com" {
		t.Fatalf("wrong user returned: %+v", user)
	}
}

func TestConcurrentRegistrations(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			email := fmt.Sprintf("owner%d@example.com", n)
			if _, err := service.Register("Owner", email, "Password@123"); err != nil {
				t.Errorf("register %s: %v", email, err)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		email := fmt.Sprintf("owner%d@example.com", i)
		if _, err := repo.FindByEmail(email); err != nil {
			t.Fatalf("user %s missing after concurrent registration: %v", email, err)
		}
	}
}

func TestConcurrentDuplicateRegistrationsAdmitOne(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := service.Register("Owner", "same@example.com", "Password@123"); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else if !errors.Is(err, ErrEmailTaken) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", succeeded)
	}
}

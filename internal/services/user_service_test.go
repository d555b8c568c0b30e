package services

import (
	"errors"
	"testing"

	"github.com/sharongvarghese/ShopCart/internal/models"

	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	nextID uint
	users  map[uint]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{nextID: 1, users: map[uint]*models.User{}}
}

func (m *mockUserRepo) Create(user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, errNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errNotFound
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, errNotFound
}

func (m *mockUserRepo) Update(user *models.User) error { return nil }
func (m *mockUserRepo) Delete(id uint) error           { return nil }

func TestAuthenticate(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Register("asha", "asha@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("password not hashed correctly: %v", err)
	}

	got, err := svc.Authenticate("asha@example.com", "secret123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("authenticated wrong user")
	}

	if _, err := svc.Authenticate("asha@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	if _, err := svc.Register("asha", "asha@example.com", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Register("other", "asha@example.com", "secret123"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if _, err := svc.Register("asha", "other@example.com", "secret123"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate signup must not create users, have %d", len(repo.users))
	}
}

func TestAuthorizeAdmin(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewUserService(repo)

	customer, err := svc.Register("asha", "asha@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.AuthorizeAdmin(customer.ID); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin for customer, got %v", err)
	}

	admin := &models.User{Username: "admin", Email: "admin@example.com", Role: string(models.RoleAdmin), IsActive: true}
	repo.Create(admin)

	capability, err := svc.AuthorizeAdmin(admin.ID)
	if err != nil {
		t.Fatalf("AuthorizeAdmin: %v", err)
	}
	if capability.UserID() != admin.ID {
		t.Fatalf("capability bound to wrong user")
	}

	admin.IsActive = false
	if _, err := svc.AuthorizeAdmin(admin.ID); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin for inactive admin, got %v", err)
	}
}

package services

import (
	"errors"

	"github.com/sharongvarghese/ShopCart/internal/models"
	"github.com/sharongvarghese/ShopCart/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminCapability proves that the holder was checked against the admin role.
// It is only minted by UserService.AuthorizeAdmin, so admin-only operations
// can demand it instead of re-reading session flags.
type AdminCapability struct {
	userID uint
}

func (c AdminCapability) UserID() uint {
	return c.userID
}

type UserService interface {
	Register(username, email, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AuthorizeAdmin(userID uint) (AdminCapability, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(username, email, password string) (*models.User, error) {
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         string(models.RoleCustomer),
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *userService) AuthorizeAdmin(userID uint) (AdminCapability, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return AdminCapability{}, err
	}

	if user.Role != string(models.RoleAdmin) || !user.IsActive {
		return AdminCapability{}, ErrNotAdmin
	}

	return AdminCapability{userID: user.ID}, nil
}

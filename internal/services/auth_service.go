package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vitalsboard/vitals/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingRegistrationField = errors.New("missing registration field")
	ErrEmailTaken               = errors.New("email already registered")
	ErrInvalidCredentials       = errors.New("invalid username or password")
	ErrUserNotFound             = errors.New("user not found")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(ctx context.Context, email string) (bool, error)
	FindByNormalizedEmail(ctx context.Context, email string) (models.User, bool, error)
	FindByID(ctx context.Context, userID uint) (models.User, bool, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfileByID(ctx context.Context, userID uint, updates map[string]any) error
}

type AuthService struct {
	users        AuthUserRepository
	location     *time.Location
	storeTimeout time.Duration
}

func NewAuthService(users AuthUserRepository, location *time.Location, storeTimeout time.Duration) *AuthService {
	if location == nil {
		location = time.UTC
	}
	return &AuthService{
		users:        users,
		location:     location,
		storeTimeout: storeTimeout,
	}
}

// Register creates a user with a bcrypt-hashed password. No session token is
// issued here; callers log in separately.
func (service *AuthService) Register(ctx context.Context, name string, email string, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	password = strings.TrimSpace(password)
	if name == "" || email == "" || password == "" {
		return models.User{}, ErrMissingRegistrationField
	}

	ctx, cancel := storeContext(ctx, service.storeTimeout)
	defer cancel()

	exists, err := service.users.ExistsByNormalizedEmail(ctx, email)
	if err != nil {
		return models.User{}, classifyStoreError(err)
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().In(service.location),
	}
	if err := service.users.Create(ctx, &user); err != nil {
		// The unique email index rejects a concurrent duplicate; any other
		// create failure is a genuine store error and stays one.
		if exists, checkErr := service.users.ExistsByNormalizedEmail(ctx, email); checkErr == nil && exists {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, classifyStoreError(err)
	}
	return user, nil
}

// Authenticate checks credentials and deliberately collapses "no such user"
// and "wrong password" into the same error.
func (service *AuthService) Authenticate(ctx context.Context, email string, password string) (models.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	ctx, cancel := storeContext(ctx, service.storeTimeout)
	defer cancel()

	user, found, err := service.users.FindByNormalizedEmail(ctx, email)
	if err != nil {
		return models.User{}, classifyStoreError(err)
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(ctx context.Context, userID uint) (models.User, error) {
	ctx, cancel := storeContext(ctx, service.storeTimeout)
	defer cancel()

	user, found, err := service.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, classifyStoreError(err)
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (service *AuthService) UpdateProfile(ctx context.Context, userID uint, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}

	ctx, cancel := storeContext(ctx, service.storeTimeout)
	defer cancel()

	_, found, err := service.users.FindByID(ctx, userID)
	if err != nil {
		return classifyStoreError(err)
	}
	if !found {
		return ErrUserNotFound
	}
	return classifyStoreError(service.users.UpdateProfileByID(ctx, userID, updates))
}

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

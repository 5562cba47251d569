package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pharmachain-backend/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrMissingCredentials = errors.New("email and password are required")
)

// Local authenticates against the application's own users table with
// bcrypt password hashes.
type Local struct {
	db *gorm.DB
}

func NewLocal(db *gorm.DB) *Local {
	return &Local{db: db}
}

func (g *Local) SignIn(ctx context.Context, email, password string) (Identity, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Identity{}, ErrMissingCredentials
	}

	var user models.User
	if err := g.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return Identity{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	return Identity{UserID: user.ID, Email: user.Email}, nil
}

func (g *Local) SignUp(ctx context.Context, email, password string) (Identity, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Identity{}, ErrMissingCredentials
	}

	var count int64
	g.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return Identity{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, errors.New("password could not be hashed")
	}

	user := models.User{Email: email, PasswordHash: string(hash)}
	if err := g.db.WithContext(ctx).Create(&user).Error; err != nil {
		return Identity{}, errors.New("user could not be created")
	}

	return Identity{UserID: user.ID, Email: user.Email}, nil
}

// SignOut is a session discard for the local provider; the JWT simply
// stops being presented.
func (g *Local) SignOut(ctx context.Context) error {
	return nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     models.UserRole
}

// Register creates a user with a bcrypt-hashed password. Duplicate
// emails fail with Conflict.
func Register(db *gorm.DB, in RegisterInput) (*models.User, error) {
	if in.Role == "" {
		in.Role = models.RoleRegular
	}
	if !in.Role.Valid() {
		return nil, apperr.New(apperr.BadRequest, "invalid role")
	}

	var existing models.User
	if err := db.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return nil, apperr.New(apperr.Conflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Phone:    in.Phone,
		Role:     in.Role,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.New(apperr.Conflict, "email already registered")
		}
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials and returns the matching user. Unknown
// emails and bad passwords fail identically with Unauthorized.
func Login(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.Unauthorized, "incorrect email or password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.New(apperr.Unauthorized, "incorrect email or password")
	}
	return &user, nil
}

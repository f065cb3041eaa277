package database

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

var (
	// ErrEmailRequired is returned when a user is created without an email address.
	ErrEmailRequired = errors.New("email is required")
	// ErrEmailTaken is returned when the email address is already registered.
	ErrEmailTaken = errors.New("email is already registered")
)

// User represents an account in the database.
// The email address is the unique identifier, there is no separate username.
// Password always holds the bcrypt hash, never the plaintext.
type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null"`
	Password    string `gorm:"not null"`
	Name        string
	IsStaff     bool
	IsSuperuser bool
	IsActive    bool `gorm:"default:true"`
}

// NormalizeEmail lowercases and trims an email address. Stored emails are
// always normalized so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser persists a new user. The email is normalized before storing.
func (c *Client) CreateUser(ctx context.Context, user *User) (*User, error) {
	user.Email = NormalizeEmail(user.Email)
	if user.Email == "" {
		return nil, ErrEmailRequired
	}

	if _, err := c.GetUserByEmail(ctx, user.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := c.db.WithContext(ctx).Create(user).Error; err != nil {
		log.Error("failed to create user", "error", err)
		return nil, err
	}
	return user, nil
}

func (c *Client) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get user by ID", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get user by email", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies the given column updates to a user.
func (c *Client) UpdateUser(ctx context.Context, user *User, updates map[string]any) error {
	if err := c.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
		log.Error("failed to update user", "error", err)
		return err
	}
	return nil
}

// GetAllUsers returns every user, for the admin endpoints.
func (c *Client) GetAllUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		log.Error("failed to get all users", "error", err)
		return nil, err
	}
	return users, nil
}

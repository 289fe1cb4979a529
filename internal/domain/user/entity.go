// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Provider is how the account signs in
type Provider string

const (
	ProviderEmail    Provider = "email"
	ProviderGoogle   Provider = "google"
	ProviderFacebook Provider = "facebook"
)

// Role of the account
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Profile describes the couple behind an account
type Profile struct {
	CoupleName   string `gorm:"size:100" json:"couple_name,omitempty" validate:"max=100"`
	Partner1Name string `gorm:"size:100" json:"partner1_name,omitempty" validate:"max=100"`
	Partner1Age  int    `json:"partner1_age,omitempty" validate:"omitempty,gte=18,lte=120"`
	Partner2Name string `gorm:"size:100" json:"partner2_name,omitempty" validate:"max=100"`
	Partner2Age  int    `json:"partner2_age,omitempty" validate:"omitempty,gte=18,lte=120"`
	Location     string `gorm:"size:255" json:"location,omitempty" validate:"max=255"`
	Bio          string `gorm:"type:text" json:"bio,omitempty" validate:"max=1000"`
	Interests    string `gorm:"size:500" json:"interests,omitempty" validate:"max=500"`
	LookingFor   string `gorm:"size:20" json:"looking_for,omitempty" validate:"omitempty,oneof=couples singles both groups"`
}

// User represents a shopper account
type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string     `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password      string     `gorm:"size:255" json:"-"`
	EmailVerified bool       `gorm:"default:false" json:"email_verified"`
	Provider      Provider   `gorm:"size:20;not null;default:email" json:"provider"`
	Role          Role       `gorm:"size:20;not null;default:user" json:"role"`
	Profile       Profile    `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an id and normalizes the email
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = NormalizeEmail(u.Email)
	return nil
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterRequest represents user registration request
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required" validate:"required,email"`
	Password string  `json:"password" binding:"required"`
	Profile  Profile `json:"profile"`
}

// LoginRequest represents user login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful login or registration
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

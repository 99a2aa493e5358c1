package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Trust counters are monotonic: resolutions only ever add to
// them, and no expungement operation exists in this subsystem.
type User struct {
	id                 uuid.UUID
	email              Email
	passwordHash       string
	role               Role
	falseHomeSizeCount int32
	falseClaimCount    int32
	lastLogin          *time.Time
	isActive           bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewUser(email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	falseHomeSizeCount, falseClaimCount int32,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:                 id,
		email:              email,
		passwordHash:       passwordHash,
		role:               role,
		falseHomeSizeCount: falseHomeSizeCount,
		falseClaimCount:    falseClaimCount,
		lastLogin:          lastLogin,
		isActive:           isActive,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (u *User) ID() uuid.UUID             { return u.id }
func (u *User) Email() Email              { return u.email }
func (u *User) PasswordHash() string      { return u.passwordHash }
func (u *User) Role() Role                { return u.role }
func (u *User) FalseHomeSizeCount() int32 { return u.falseHomeSizeCount }
func (u *User) FalseClaimCount() int32    { return u.falseClaimCount }
func (u *User) LastLogin() *time.Time     { return u.lastLogin }
func (u *User) IsActive() bool            { return u.isActive }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }

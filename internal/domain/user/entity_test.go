//go:build unit

package user_test

import (
	"testing"

	"homeshine/internal/domain/user"
	"homeshine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleHomeowner, actual.Role())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Zero(t, actual.FalseHomeSizeCount())
		assert.Zero(t, actual.FalseClaimCount())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("cleaner@homeshine.io") },
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("not-an-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("someone@") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "homeowner",
				mutate: func(b *builder.UserBuilder) { b.WithRole("homeowner") },
			},
			{
				name:   "cleaner",
				mutate: func(b *builder.UserBuilder) { b.WithRole("cleaner") },
			},
			{
				name:   "owner",
				mutate: func(b *builder.UserBuilder) { b.WithRole("owner") },
			},
			{
				name:   "human resources",
				mutate: func(b *builder.UserBuilder) { b.WithRole("human_resources") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestRoleEscalationAuthority(t *testing.T) {
	assert.True(t, user.RoleOwner.HasEscalationAuthority())
	assert.True(t, user.RoleHumanResources.HasEscalationAuthority())
	assert.False(t, user.RoleHomeowner.HasEscalationAuthority())
	assert.False(t, user.RoleCleaner.HasEscalationAuthority())
}

func TestPassword(t *testing.T) {
	t.Run("minimum length enforced", func(t *testing.T) {
		_, err := user.NewPassword("short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

		_, err = user.NewPassword("12345678")
		assert.NoError(t, err)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

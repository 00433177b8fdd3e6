//go:build unit

package user_test

import (
	"testing"

	"petstay/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "plain address", input: "ana@example.com", valid: true},
		{name: "subdomain and plus tag", input: "ana+pets@mail.example.com.br", valid: true},
		{name: "surrounding whitespace trimmed", input: "  ana@example.com  ", valid: true},
		{name: "missing at sign", input: "ana.example.com", valid: false},
		{name: "missing tld", input: "ana@example", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := user.NewEmail(tc.input)
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, user.ErrInvalidEmail)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	t.Run("eight characters is the floor", func(t *testing.T) {
		_, err := user.NewPassword("12345678")
		require.NoError(t, err)

		_, err = user.NewPassword("1234567")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestRole(t *testing.T) {
	t.Run("valid roles", func(t *testing.T) {
		for _, s := range []string{"customer", "staff", "admin"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := user.NewRole("superuser")
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("staff gate", func(t *testing.T) {
		assert.False(t, user.RoleCustomer.IsStaff())
		assert.True(t, user.RoleStaff.IsStaff())
		assert.True(t, user.RoleAdmin.IsStaff())
	})
}

func TestUser(t *testing.T) {
	email, err := user.NewEmail("ana@example.com")
	require.NoError(t, err)

	t.Run("new users start active", func(t *testing.T) {
		u := user.NewUser("Ana", email, "hashed", user.RoleCustomer)
		assert.True(t, u.IsActive())
		assert.Nil(t, u.LastLogin())
	})

	t.Run("actor carries id and role", func(t *testing.T) {
		u := user.NewUser("Ana", email, "hashed", user.RoleStaff)
		actor := u.Actor()
		assert.Equal(t, u.ID(), actor.ID)
		assert.True(t, actor.IsStaff())
	})
}

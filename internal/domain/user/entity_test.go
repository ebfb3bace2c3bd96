//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"ecopoints/internal/domain/user"
	"ecopoints/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		reg, _ := user.NewRegistration("Budi Santoso", "081234567890", "test@example.com", "password123")
		expected := user.NewUser(reg, "hashed_password", user.RoleMember, time.Now())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, "Budi Santoso", actual.FullName().Value())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid email", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "empty email", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "missing domain", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "missing @", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
			{
				name:   "longer than 255",
				mutate: func(b *builder.UserBuilder) { b.WithEmail(strings.Repeat("a", 250) + "@example.com") },
				errIs:  user.ErrEmailTooLong,
			},
		})
	})

	t.Run("full name and phone", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "two-letter name ok", mutate: func(b *builder.UserBuilder) { b.WithFullName("Al") }},
			{name: "one-letter name", mutate: func(b *builder.UserBuilder) { b.WithFullName("A") }, errIs: user.ErrFullNameTooShort},
			{name: "name of 101", mutate: func(b *builder.UserBuilder) { b.WithFullName(strings.Repeat("n", 101)) }, errIs: user.ErrFullNameTooLong},
			{name: "phone of 9", mutate: func(b *builder.UserBuilder) { b.WithPhone("081234567") }, errIs: user.ErrPhoneTooShort},
			{name: "phone of 21", mutate: func(b *builder.UserBuilder) { b.WithPhone(strings.Repeat("1", 21)) }, errIs: user.ErrPhoneTooLong},
		})
	})

	t.Run("password", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "six chars ok", mutate: func(b *builder.UserBuilder) { b.WithPassword("abcdef") }},
			{name: "five chars", mutate: func(b *builder.UserBuilder) { b.WithPassword("abcde") }, errIs: user.ErrPasswordTooShort},
			{name: "101 chars", mutate: func(b *builder.UserBuilder) { b.WithPassword(strings.Repeat("p", 101)) }, errIs: user.ErrPasswordTooLong},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{name: "operator", mutate: func(b *builder.UserBuilder) { b.WithRole("operator") }},
			{name: "member", mutate: func(b *builder.UserBuilder) { b.WithRole("member") }},
			{name: "unknown role", mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") }, errIs: user.ErrInvalidRole},
			{name: "empty role", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})
}

func TestRoleLevel(t *testing.T) {
	assert.Less(t, user.RoleMember.Level(), user.RoleOperator.Level())
	assert.Less(t, user.RoleOperator.Level(), user.RoleAdmin.Level())
	assert.Equal(t, 0, user.Role("ghost").Level())
}

func TestNewCredentials(t *testing.T) {
	creds, err := user.NewCredentials(" Test@Example.com ", "x")
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", creds.Email().Value())

	_, err = user.NewCredentials("test@example.com", "")
	assert.ErrorIs(t, err, user.ErrPasswordTooShort)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

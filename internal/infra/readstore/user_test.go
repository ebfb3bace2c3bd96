//go:build unit

package readstore

import (
	"context"
	"testing"

	"ecopoints/internal/infra"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db pgquery.DBTX, email string) (pgquery.User, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(pgquery.User), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.User, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgquery.User), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().WithEmail("inactive@example.com").AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn pgquery.User
		mockError  error
		wantHash   string
		wantError  bool
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			email:      testUser.Email,
			mockReturn: testUser,
			wantHash:   testUser.PasswordHash,
		},
		{
			name:       "success - inactive user (for validation)",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
			wantHash:   inactiveUser.PasswordHash,
		},
		{
			name:       "user not found",
			email:      "notfound@example.com",
			mockReturn: pgquery.User{},
			mockError:  pgx.ErrNoRows,
			wantError:  true,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			email:      testUser.Email,
			mockReturn: pgquery.User{},
			mockError:  assert.AnError,
			wantError:  true,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, view)
				assert.Equal(t, tt.email, view.Email)
				assert.Equal(t, tt.mockReturn.FullName, view.FullName)
				assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
				assert.Equal(t, tt.wantHash, hash)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn pgquery.User
		mockError  error
		wantError  bool
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			userID:     testUser.ID,
			mockReturn: testUser,
		},
		{
			name:       "user not found",
			userID:     uuid.New(),
			mockReturn: pgquery.User{},
			mockError:  pgx.ErrNoRows,
			wantError:  true,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			userID:     testUser.ID,
			mockReturn: pgquery.User{},
			mockError:  assert.AnError,
			wantError:  true,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, view.ID)
				assert.Equal(t, "member", view.Role)
				assert.Nil(t, view.LastLogin)
				assert.Equal(t, tt.mockReturn.CreatedAt.Time, view.CreatedAt)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

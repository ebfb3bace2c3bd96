//go:build unit

package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockPickupReadStore struct {
	mock.Mock
}

func (m *mockPickupReadStore) FindByID(ctx context.Context, userID, id uuid.UUID) (*PickupView, error) {
	args := m.Called(ctx, userID, id)
	v, _ := args.Get(0).(*PickupView)
	return v, args.Error(1)
}

func (m *mockPickupReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*PickupView, error) {
	args := m.Called(ctx, userID, limit)
	v, _ := args.Get(0).([]*PickupView)
	return v, args.Error(1)
}

func (m *mockPickupReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PickupView, error) {
	args := m.Called(ctx, userID, lastCreatedAt, lastID, limit)
	v, _ := args.Get(0).([]*PickupView)
	return v, args.Error(1)
}

type mockPointsReadStore struct {
	mock.Mock
}

func (m *mockPointsReadStore) Balance(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPointsReadStore) Summary(ctx context.Context, userID uuid.UUID) (*BalanceView, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).(*BalanceView)
	return v, args.Error(1)
}

func (m *mockPointsReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*TransactionView, error) {
	args := m.Called(ctx, userID, limit)
	v, _ := args.Get(0).([]*TransactionView)
	return v, args.Error(1)
}

func (m *mockPointsReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*TransactionView, error) {
	args := m.Called(ctx, userID, lastCreatedAt, lastID, limit)
	v, _ := args.Get(0).([]*TransactionView)
	return v, args.Error(1)
}

type mockUserReadStore struct {
	mock.Mock
}

func (m *mockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*UserView)
	return v, args.Error(1)
}

func (m *mockUserReadStore) FindByEmail(ctx context.Context, email string) (*UserView, string, error) {
	args := m.Called(ctx, email)
	v, _ := args.Get(0).(*UserView)
	return v, args.String(1), args.Error(2)
}

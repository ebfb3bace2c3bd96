package shared

import (
	"context"
	"time"

	"ecopoints/internal/domain/exchange"
	"ecopoints/internal/domain/ledger"
	"ecopoints/internal/domain/notification"
	"ecopoints/internal/domain/pickup"
	"ecopoints/internal/domain/profile"
	"ecopoints/internal/domain/user"
	"ecopoints/internal/infra/pgquery"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Profiles() ProfileRepository
	Pickups() PickupRepository
	Orders() OrderRepository
	Ledger() LedgerRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() pgquery.DBTX
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID, at time.Time) error
	// LockForUpdate takes the per-user row lock that serialises balance changes.
	LockForUpdate(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID) error
}

type ProfileRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, p *profile.Profile) error
	UpdateSettings(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID, s profile.Settings, now time.Time) error
}

type PickupRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, r *pickup.Request) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx pgquery.DBTX, o *exchange.Order) error
}

type LedgerRepository interface {
	Append(ctx context.Context, tx pgquery.DBTX, e *ledger.Entry) error
	BalanceOf(ctx context.Context, tx pgquery.DBTX, userID uuid.UUID) (int64, error)
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the user.
	TryInsert(ctx context.Context, tx pgquery.DBTX, claim IdempotencyClaim, now time.Time) (bool, error)
	ClaimExpired(ctx context.Context, tx pgquery.DBTX, claim IdempotencyClaim, now time.Time) (bool, error)
	MarkCompleted(ctx context.Context, tx pgquery.DBTX, key, userID, resultID uuid.UUID, now time.Time) error
	DeleteExpired(ctx context.Context, tx pgquery.DBTX, now time.Time) (int64, error)
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, tx pgquery.DBTX, job notification.Job) error
	ClaimDue(ctx context.Context, tx pgquery.DBTX, now time.Time, limit int32) ([]NotificationJobRecord, error)
	UpdateStatus(ctx context.Context, tx pgquery.DBTX, id uuid.UUID, status notification.Status, lastError *string, retryAt *time.Time) error
}

//go:build unit

package commands

import (
	"context"
	"sync"
	"time"

	"ecopoints/internal/domain/exchange"
	"ecopoints/internal/domain/ledger"
	"ecopoints/internal/domain/notification"
	"ecopoints/internal/domain/pickup"
	"ecopoints/internal/domain/profile"
	"ecopoints/internal/domain/user"
	"ecopoints/internal/infra"
	"ecopoints/internal/infra/pgquery"
	"ecopoints/internal/usecase/queries"
	"ecopoints/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

// memState is everything the fake database holds. Transactions work on a copy
// and swap it in on commit, so a failed closure leaves no trace.
type memState struct {
	users    map[uuid.UUID]*shared.UserSnapshot
	profiles map[uuid.UUID]*profile.Profile
	pickups  []*pickup.Request
	orders   []*exchange.Order
	entries  []*ledger.Entry
	keys     map[idemKey]shared.IdempotencyRecord
	jobs     []notification.Job
}

func (s *memState) clone() *memState {
	c := &memState{
		users:    make(map[uuid.UUID]*shared.UserSnapshot, len(s.users)),
		profiles: make(map[uuid.UUID]*profile.Profile, len(s.profiles)),
		pickups:  append([]*pickup.Request(nil), s.pickups...),
		orders:   append([]*exchange.Order(nil), s.orders...),
		entries:  append([]*ledger.Entry(nil), s.entries...),
		keys:     make(map[idemKey]shared.IdempotencyRecord, len(s.keys)),
		jobs:     append([]notification.Job(nil), s.jobs...),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.profiles {
		c.profiles[k] = v
	}
	for k, v := range s.keys {
		c.keys[k] = v
	}
	return c
}

func (s *memState) balance(userID uuid.UUID) int64 {
	var sum int64
	for _, e := range s.entries {
		if e.UserID() == userID {
			sum += e.Amount()
		}
	}
	return sum
}

func (s *memState) userByEmail(email string) *shared.UserSnapshot {
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

type fakeUoW struct {
	mu          sync.Mutex
	state       *memState
	withinCalls int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{state: (&memState{}).clone()}
}

func (u *fakeUoW) snapshot() *memState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.clone()
}

func (u *fakeUoW) seedUser(snap *shared.UserSnapshot) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.users[snap.ID] = snap
}

func (u *fakeUoW) seedBalance(userID uuid.UUID, points int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	e, err := ledger.NewEarnedEntry(userID, points, "seed", uuid.New(), time.Now().Add(-time.Hour))
	if err != nil {
		panic(err)
	}
	u.state.entries = append(u.state.entries, e)
}

// Within serialises transactions with one mutex, which is what the user row lock
// gives the real implementation for balance changes.
func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.withinCalls++

	tx := &fakeTx{state: u.state.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	u.state = tx.state
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db pgquery.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{state: u.snapshot()}
}

type fakeTx struct {
	state *memState
}

func (t *fakeTx) Users() shared.UserRepository                 { return fakeUsers{t} }
func (t *fakeTx) Profiles() shared.ProfileRepository           { return fakeProfiles{t} }
func (t *fakeTx) Pickups() shared.PickupRepository             { return fakePickups{t} }
func (t *fakeTx) Orders() shared.OrderRepository               { return fakeOrders{t} }
func (t *fakeTx) Ledger() shared.LedgerRepository              { return fakeLedger{t} }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository    { return fakeIdempotency{t} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return fakeNotifications{t} }
func (t *fakeTx) Reads() shared.CommandReads                   { return &fakeReads{state: t.state} }
func (t *fakeTx) DB() pgquery.DBTX                             { return nil }

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", pgx.ErrNoRows, infra.KindNotFound)
}

type fakeUsers struct{ tx *fakeTx }

func (r fakeUsers) Create(_ context.Context, _ pgquery.DBTX, u *user.User) error {
	if r.tx.state.userByEmail(u.Email().Value()) != nil {
		return infra.WrapRepoErr("failed to create user", &pgconn.PgError{Code: "23505"})
	}
	r.tx.state.users[u.ID()] = &shared.UserSnapshot{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		FullName:     u.FullName().Value(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	}
	return nil
}

func (r fakeUsers) UpdateLastLogin(_ context.Context, _ pgquery.DBTX, userID uuid.UUID, _ time.Time) error {
	if _, ok := r.tx.state.users[userID]; !ok {
		return notFound("user")
	}
	return nil
}

func (r fakeUsers) LockForUpdate(_ context.Context, _ pgquery.DBTX, userID uuid.UUID) error {
	if _, ok := r.tx.state.users[userID]; !ok {
		return notFound("user")
	}
	return nil
}

type fakeProfiles struct{ tx *fakeTx }

func (r fakeProfiles) Create(_ context.Context, _ pgquery.DBTX, p *profile.Profile) error {
	r.tx.state.profiles[p.UserID()] = p
	return nil
}

func (r fakeProfiles) UpdateSettings(_ context.Context, _ pgquery.DBTX, userID uuid.UUID, s profile.Settings, now time.Time) error {
	p, ok := r.tx.state.profiles[userID]
	if !ok {
		return notFound("profile")
	}
	updated := *p
	updated.Apply(s, now)
	r.tx.state.profiles[userID] = &updated
	return nil
}

type fakePickups struct{ tx *fakeTx }

func (r fakePickups) Create(_ context.Context, _ pgquery.DBTX, req *pickup.Request) error {
	r.tx.state.pickups = append(r.tx.state.pickups, req)
	return nil
}

type fakeOrders struct{ tx *fakeTx }

func (r fakeOrders) Create(_ context.Context, _ pgquery.DBTX, o *exchange.Order) error {
	r.tx.state.orders = append(r.tx.state.orders, o)
	return nil
}

type fakeLedger struct{ tx *fakeTx }

func (r fakeLedger) Append(_ context.Context, _ pgquery.DBTX, e *ledger.Entry) error {
	r.tx.state.entries = append(r.tx.state.entries, e)
	return nil
}

func (r fakeLedger) BalanceOf(_ context.Context, _ pgquery.DBTX, userID uuid.UUID) (int64, error) {
	return r.tx.state.balance(userID), nil
}

type fakeIdempotency struct{ tx *fakeTx }

func (r fakeIdempotency) TryInsert(_ context.Context, _ pgquery.DBTX, c shared.IdempotencyClaim, _ time.Time) (bool, error) {
	k := idemKey{c.Key, c.UserID}
	if _, exists := r.tx.state.keys[k]; exists {
		return false, nil
	}
	r.tx.state.keys[k] = shared.IdempotencyRecord{
		Key:         c.Key,
		UserID:      c.UserID,
		Endpoint:    c.Endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: c.RequestHash,
		ExpiresAt:   c.ExpiresAt,
	}
	return true, nil
}

func (r fakeIdempotency) ClaimExpired(_ context.Context, _ pgquery.DBTX, c shared.IdempotencyClaim, now time.Time) (bool, error) {
	k := idemKey{c.Key, c.UserID}
	rec, exists := r.tx.state.keys[k]
	if !exists || !now.After(rec.ExpiresAt) {
		return false, nil
	}
	r.tx.state.keys[k] = shared.IdempotencyRecord{
		Key:         c.Key,
		UserID:      c.UserID,
		Endpoint:    c.Endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: c.RequestHash,
		ExpiresAt:   c.ExpiresAt,
	}
	return true, nil
}

func (r fakeIdempotency) MarkCompleted(_ context.Context, _ pgquery.DBTX, key, userID, resultID uuid.UUID, _ time.Time) error {
	k := idemKey{key, userID}
	rec, exists := r.tx.state.keys[k]
	if !exists {
		return notFound("idempotency key")
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultID = &resultID
	r.tx.state.keys[k] = rec
	return nil
}

func (r fakeIdempotency) DeleteExpired(_ context.Context, _ pgquery.DBTX, now time.Time) (int64, error) {
	var n int64
	for k, rec := range r.tx.state.keys {
		if now.After(rec.ExpiresAt) {
			delete(r.tx.state.keys, k)
			n++
		}
	}
	return n, nil
}

type fakeNotifications struct{ tx *fakeTx }

func (r fakeNotifications) Enqueue(_ context.Context, _ pgquery.DBTX, job notification.Job) error {
	r.tx.state.jobs = append(r.tx.state.jobs, job)
	return nil
}

func (r fakeNotifications) ClaimDue(context.Context, pgquery.DBTX, time.Time, int32) ([]shared.NotificationJobRecord, error) {
	return nil, nil
}

func (r fakeNotifications) UpdateStatus(context.Context, pgquery.DBTX, uuid.UUID, notification.Status, *string, *time.Time) error {
	return nil
}

type fakeReads struct {
	state *memState
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	if u := r.state.userByEmail(email); u != nil {
		return u, nil
	}
	return nil, notFound("user")
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if u, ok := r.state.users[id]; ok {
		return u, nil
	}
	return nil, notFound("user")
}

func (r *fakeReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.state.keys[idemKey{key, userID}]
	if !ok {
		return nil, notFound("idempotency key")
	}
	return &rec, nil
}

// memQueries answers the read-after-write lookups from committed state.
type memQueries struct {
	uow *fakeUoW
}

func (q memQueries) GetPickup(_ context.Context, userID, id uuid.UUID) (*queries.PickupView, error) {
	for _, p := range q.uow.snapshot().pickups {
		if p.ID() == id && p.UserID() == userID {
			return &queries.PickupView{
				ID:              p.ID(),
				UserID:          p.UserID(),
				Address:         p.Address().String(),
				WasteType:       p.Category().String(),
				EstimatedWeight: p.Weight().Kilograms(),
				PreferredDate:   p.PreferredDate().String(),
				PointsAwarded:   p.PointsAwarded(),
				CreatedAt:       p.CreatedAt(),
			}, nil
		}
	}
	return nil, queries.ErrPickupNotFound
}

func (q memQueries) ListPickups(context.Context, uuid.UUID, *queries.Cursor, int) ([]*queries.PickupView, *queries.Cursor, error) {
	return nil, nil, nil
}

func (q memQueries) QuoteReward(context.Context, string, float64) (*queries.RewardQuoteView, error) {
	return nil, nil
}

func (q memQueries) GetOrder(_ context.Context, userID, id uuid.UUID) (*queries.OrderView, error) {
	for _, o := range q.uow.snapshot().orders {
		if o.ID() == id && o.UserID() == userID {
			return &queries.OrderView{
				ID:          o.ID(),
				UserID:      o.UserID(),
				ProductID:   o.ProductID(),
				ProductName: o.ProductName(),
				Quantity:    o.Quantity().Int(),
				PointsSpent: o.PointsSpent(),
				CreatedAt:   o.CreatedAt(),
			}, nil
		}
	}
	return nil, queries.ErrOrderNotFound
}

func (q memQueries) ListOrders(context.Context, uuid.UUID, *queries.Cursor, int) ([]*queries.OrderView, *queries.Cursor, error) {
	return nil, nil, nil
}

func (q memQueries) QuoteExchange(context.Context, uuid.UUID, int, exchange.Quantity) (*queries.ExchangeQuoteView, error) {
	return nil, nil
}

func (q memQueries) GetBalance(_ context.Context, userID uuid.UUID) (*queries.BalanceView, error) {
	return &queries.BalanceView{UserID: userID, Balance: q.uow.snapshot().balance(userID)}, nil
}

func (q memQueries) GetUserBalance(ctx context.Context, userID uuid.UUID) (*queries.BalanceView, error) {
	return q.GetBalance(ctx, userID)
}

func (q memQueries) ListTransactions(context.Context, uuid.UUID, *queries.Cursor, int) ([]*queries.TransactionView, *queries.Cursor, error) {
	return nil, nil, nil
}

func (q memQueries) GetProfile(_ context.Context, userID uuid.UUID) (*queries.ProfileView, error) {
	p, ok := q.uow.snapshot().profiles[userID]
	if !ok {
		return nil, queries.ErrProfileNotFound
	}
	view := &queries.ProfileView{
		ID:        p.UserID(),
		FullName:  p.FullName(),
		Phone:     p.Phone(),
		Theme:     string(p.Preferences().Theme),
		Language:  string(p.Preferences().Language),
		UpdatedAt: p.UpdatedAt(),
	}
	if a := p.Address(); a != nil {
		s := a.String()
		view.Address = &s
	}
	if g := p.Gender(); g != nil {
		s := g.String()
		view.Gender = &s
	}
	return view, nil
}

package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"ecopoints/internal/pkg/errs"
	"ecopoints/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrIdempotencyInProgress = errs.New("idempotency in progress")
	errMissingResult         = errs.New("completed idempotency key has no result")
)

// idempotencyRequest describes one keyed write. A nil Key disables deduplication.
type idempotencyRequest struct {
	Key         *uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
}

// claimIdempotencyKey reserves the key inside tx. It returns the stored result id
// when the same request already completed, and nil when the caller should proceed.
func claimIdempotencyKey(ctx context.Context, tx shared.Tx, req idempotencyRequest, now time.Time, ttl time.Duration) (*uuid.UUID, error) {
	if req.Key == nil {
		return nil, nil
	}

	claim := shared.IdempotencyClaim{
		Key:         *req.Key,
		UserID:      req.UserID,
		Endpoint:    req.Endpoint,
		RequestHash: req.RequestHash,
		ExpiresAt:   now.Add(ttl),
	}

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), claim, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, *req.Key, req.UserID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	if now.After(existing.ExpiresAt) {
		claimed, cerr := tx.Idempotency().ClaimExpired(ctx, tx.DB(), claim, now)
		if cerr != nil {
			return nil, errs.Mark(cerr, errs.ErrIdempotencyCheckFailed)
		}
		if claimed {
			return nil, nil
		}
		return nil, ErrIdempotencyInProgress
	}

	if existing.Endpoint != req.Endpoint || existing.RequestHash != req.RequestHash {
		return nil, errs.ErrIdempotencyConflict
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultID == nil {
			return nil, errMissingResult
		}
		return existing.ResultID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func completeIdempotencyKey(ctx context.Context, tx shared.Tx, req idempotencyRequest, resultID uuid.UUID, now time.Time) error {
	if req.Key == nil {
		return nil
	}
	if err := tx.Idempotency().MarkCompleted(ctx, tx.DB(), *req.Key, req.UserID, resultID, now); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// requestHash binds a key to the endpoint and the exact body it was first used with.
func requestHash(endpoint string, body any) string {
	data, _ := json.Marshal(body)
	h := sha256.New()
	h.Write([]byte(endpoint))
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"hbnb_web/internal/domain"
)

// FlightTimeout bounds a shared submission once it no longer follows the
// context of the request that started it.
const FlightTimeout = 30 * time.Second

// Commands sends the form submissions. Identical submissions that arrive
// while one is in flight share its outcome instead of reaching the API twice.
type Commands struct {
	api     domain.APIClient
	flights singleflight.Group
	timeout time.Duration
}

func NewCommands(api domain.APIClient) *Commands {
	return &Commands{api: api, timeout: FlightTimeout}
}

func (c *Commands) Login(ctx context.Context, cr domain.Credentials) (domain.APIResponse, error) {
	key := "login:" + digest(cr.Email, cr.Password)
	return c.once(ctx, key, func(ctx context.Context) (domain.APIResponse, error) {
		return c.api.Post(ctx, endpointLogin, cr, false)
	})
}

// SubmitReview posts the draft with the caller's bearer token. Only the same
// draft from the same token shares a flight.
func (c *Commands) SubmitReview(ctx context.Context, token string, d domain.ReviewDraft) (domain.APIResponse, error) {
	key := "review:" + digest(token, d.PlaceID, strconv.Itoa(d.Rating), d.Text)
	return c.once(ctx, key, func(ctx context.Context) (domain.APIResponse, error) {
		return c.api.Post(ctx, endpointReviews, d, true)
	})
}

// once runs fn for the first caller of key and lets later callers wait on it.
// The call is detached from the leader's cancellation, so an aborted first
// request does not fail the duplicates; each caller still stops waiting when
// its own ctx ends.
func (c *Commands) once(ctx context.Context, key string, fn func(context.Context) (domain.APIResponse, error)) (domain.APIResponse, error) {
	ch := c.flights.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return fn(fctx)
	})
	select {
	case r := <-ch:
		if r.Err != nil {
			return domain.APIResponse{}, r.Err
		}
		return r.Val.(domain.APIResponse), nil
	case <-ctx.Done():
		return domain.APIResponse{}, ctx.Err()
	}
}

func digest(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

package domain

import (
	"context"
	"encoding/json"
	"strings"
)

// APIClient is the HBnB REST client. Responses are returned raw; only
// transport failures surface as errors.
type APIClient interface {
	Get(ctx context.Context, endpoint string, authenticated bool) (APIResponse, error)
	Post(ctx context.Context, endpoint string, body any, authenticated bool) (APIResponse, error)
	Put(ctx context.Context, endpoint string, body any, authenticated bool) (APIResponse, error)
	Delete(ctx context.Context, endpoint string, authenticated bool) (APIResponse, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// CookieJar is the single-name cookie store of the current request.
type CookieJar interface {
	Get(name string) (string, bool)
	Set(name, value string, days int)
	Delete(name string)
}

type APIResponse struct {
	Status int
	Body   []byte
}

func (r APIResponse) OK() bool { return r.Status >= 200 && r.Status < 300 }

func (r APIResponse) Decode(dst any) error { return json.Unmarshal(r.Body, dst) }

// ErrorMessage returns the `error` field of an error payload, or "".
func (r APIResponse) ErrorMessage() string {
	var p struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(r.Body, &p); err != nil {
		return ""
	}
	return strings.TrimSpace(p.Error)
}

package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"hbnb_web/internal/adapters/memcache"
	"hbnb_web/internal/app"
	"hbnb_web/internal/dom"
	"hbnb_web/internal/domain"
	"hbnb_web/internal/shared"
)

// ---- fakes ----

type call struct {
	Method        string
	Endpoint      string
	Body          any
	Authenticated bool
}

type reply struct {
	res domain.APIResponse
	err error
}

// fakeAPI answers "METHOD endpoint" keys; unknown keys are a network error.
type fakeAPI struct {
	mu      sync.Mutex
	replies map[string]reply
	calls   []call
}

var errNetwork = errors.New("connection refused")

func newFakeAPI() *fakeAPI { return &fakeAPI{replies: map[string]reply{}} }

func (f *fakeAPI) on(method, endpoint string, status int, body string) *fakeAPI {
	f.replies[method+" "+endpoint] = reply{res: domain.APIResponse{Status: status, Body: []byte(body)}}
	return f
}

func (f *fakeAPI) fail(method, endpoint string) *fakeAPI {
	f.replies[method+" "+endpoint] = reply{err: errNetwork}
	return f
}

func (f *fakeAPI) do(method, endpoint string, body any, auth bool) (domain.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{Method: method, Endpoint: endpoint, Body: body, Authenticated: auth})
	r, ok := f.replies[method+" "+endpoint]
	if !ok {
		return domain.APIResponse{}, errNetwork
	}
	return r.res, r.err
}

func (f *fakeAPI) Get(_ context.Context, ep string, auth bool) (domain.APIResponse, error) {
	return f.do("GET", ep, nil, auth)
}
func (f *fakeAPI) Post(_ context.Context, ep string, body any, auth bool) (domain.APIResponse, error) {
	return f.do("POST", ep, body, auth)
}
func (f *fakeAPI) Put(_ context.Context, ep string, body any, auth bool) (domain.APIResponse, error) {
	return f.do("PUT", ep, body, auth)
}
func (f *fakeAPI) Delete(_ context.Context, ep string, auth bool) (domain.APIResponse, error) {
	return f.do("DELETE", ep, nil, auth)
}

func (f *fakeAPI) count(method, endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method && c.Endpoint == endpoint {
			n++
		}
	}
	return n
}

type fakeJar struct {
	m    map[string]string
	days map[string]int
}

func newJar(kv ...string) *fakeJar {
	j := &fakeJar{m: map[string]string{}, days: map[string]int{}}
	for i := 0; i+1 < len(kv); i += 2 {
		j.m[kv[i]] = kv[i+1]
	}
	return j
}

func (j *fakeJar) Get(name string) (string, bool) {
	v, ok := j.m[name]
	return v, ok
}
func (j *fakeJar) Set(name, value string, days int) {
	j.m[name] = value
	j.days[name] = days
}
func (j *fakeJar) Delete(name string) { delete(j.m, name) }

// ---- helpers ----

func newControllers(api domain.APIClient) *app.Controllers {
	return app.NewControllers(api, memcache.New(), 10*time.Minute, zerolog.Nop())
}

func newDoc(t *testing.T, page app.Page, rawURL string) *dom.Document {
	t.Helper()
	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("parse %q: %v", rawURL, err)
	}
	return dom.NewDocument(string(page), u, app.Elements(page)...)
}

func loggedIn() (*app.Auth, *fakeJar) {
	jar := newJar("token", "tok-123")
	return app.NewAuth(jar, shared.DefaultAuth()), jar
}

func anonymous() (*app.Auth, *fakeJar) {
	jar := newJar()
	return app.NewAuth(jar, shared.DefaultAuth()), jar
}

func jsonOf(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

package hbnb_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"hbnb_web/internal/adapters/hbnb"
)

func staticToken(tok string) hbnb.TokenSource {
	return hbnb.TokenFunc(func(context.Context) (string, bool) { return tok, tok != "" })
}

func TestClient_GetBuildsBasePathWithoutAuth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/places" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if h := r.Header.Get("Authorization"); h != "" {
			t.Errorf("unexpected Authorization %q", h)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"p1","price":40}]`))
	}))
	defer ts.Close()

	cl, err := hbnb.New(ts.URL+"/", staticToken("secret"), 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	res, err := cl.Get(context.Background(), "/places", false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.OK() || res.Status != 200 {
		t.Fatalf("unexpected status %d", res.Status)
	}
	var out []map[string]any
	if err := res.Decode(&out); err != nil || len(out) != 1 {
		t.Fatalf("decode: %v %+v", err, out)
	}
}

func TestClient_PostAttachesFreshBearerToken(t *testing.T) {
	var gotAuth, gotCT string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"r1"}`))
	}))
	defer ts.Close()

	tok := "first"
	cl, _ := hbnb.New(ts.URL, hbnb.TokenFunc(func(context.Context) (string, bool) { return tok, true }), 0)

	tok = "second" // the token is read at call time
	res, err := cl.Post(context.Background(), "/reviews/", map[string]any{"text": "nice", "rating": 5, "place_id": "p1"}, true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Status != http.StatusCreated {
		t.Fatalf("status %d", res.Status)
	}
	if gotAuth != "Bearer second" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotCT != "application/json" {
		t.Fatalf("Content-Type = %q", gotCT)
	}
	if gotBody["text"] != "nice" || gotBody["place_id"] != "p1" {
		t.Fatalf("body = %+v", gotBody)
	}
}

func TestClient_NonSuccessIsReturnedRaw(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Place not found"}`))
	}))
	defer ts.Close()

	cl, _ := hbnb.New(ts.URL, nil, 100)
	res, err := cl.Get(context.Background(), "/places/nope", false)
	if err != nil {
		t.Fatalf("non-2xx must not be an error: %v", err)
	}
	if res.OK() || res.Status != 404 || res.ErrorMessage() != "Place not found" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("expected exactly one call, got %d", hits)
	}
}

func TestClient_PutDeleteMethods(t *testing.T) {
	var methods []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path+" "+r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	cl, _ := hbnb.New(ts.URL, staticToken("t"), 0)
	ctx := context.Background()
	if _, err := cl.Put(ctx, "/places/p1", map[string]any{"title": "x"}, true); err != nil {
		t.Fatal(err)
	}
	if _, err := cl.Delete(ctx, "/reviews/r1", true); err != nil {
		t.Fatal(err)
	}
	want := []string{"PUT /api/v1/places/p1 Bearer t", "DELETE /api/v1/reviews/r1 Bearer t"}
	if strings.Join(methods, "|") != strings.Join(want, "|") {
		t.Fatalf("got %v", methods)
	}
}

func TestClient_NetworkFailureIsError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close() // connection refused from here on

	cl, _ := hbnb.New(url, nil, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := cl.Get(ctx, "/places", false); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestClient_CanceledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	cl, _ := hbnb.New(ts.URL, nil, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := cl.Get(ctx, "/places", false)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestNew_RejectsRelativeOrigin(t *testing.T) {
	if _, err := hbnb.New("localhost:5000", nil, 0); err == nil {
		t.Fatalf("expected error for relative origin")
	}
}

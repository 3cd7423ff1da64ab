package cookies

import (
	"net/http"
	"time"
)

var expired = time.Unix(0, 0).UTC()

// Store reads cookies from the incoming request and writes Set-Cookie
// headers to the response. Writes are remembered so later reads in the
// same request observe them.
type Store struct {
	w       http.ResponseWriter
	r       *http.Request
	now     func() time.Time
	pending map[string]*string
}

func New(w http.ResponseWriter, r *http.Request) *Store {
	return &Store{w: w, r: r, now: time.Now, pending: map[string]*string{}}
}

// Get returns the cookie value; ok is false when absent.
func (s *Store) Get(name string) (string, bool) {
	if v, seen := s.pending[name]; seen {
		if v == nil {
			return "", false
		}
		return *v, true
	}
	c, err := s.r.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

// Set writes name=value expiring days from now on the root path.
// The value is written as is.
func (s *Store) Set(name, value string, days int) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  s.now().Add(time.Duration(days) * 24 * time.Hour),
		SameSite: http.SameSiteLaxMode,
	})
	v := value
	s.pending[name] = &v
}

// Delete overwrites the cookie with an already expired one.
func (s *Store) Delete(name string) {
	http.SetCookie(s.w, &http.Cookie{
		Name:    name,
		Value:   "",
		Path:    "/",
		Expires: expired,
		MaxAge:  -1,
	})
	s.pending[name] = nil
}

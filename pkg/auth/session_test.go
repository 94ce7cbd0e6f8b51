package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/redis/go-redis/v9"
)

var (
	testAuthKey = []byte("test-auth-key-must-be-32-bytes!!")
	testEncKey  = []byte("test-enc-key-must-be-32-bytes!!!")
)

// unreachableStore points at a Redis that is never contacted by the cases
// below: none of them carries a cookie that decodes.
func unreachableStore(opts SessionOptions) *RedisStore {
	opts.AuthKey, opts.EncryptionKey = testAuthKey, testEncKey
	return NewSessionStore(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), opts)
}

func TestNewSessionStore_Defaults(t *testing.T) {
	s := unreachableStore(SessionOptions{Secure: true})

	if s.options.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
		t.Errorf("MaxAge: got %d", s.options.MaxAge)
	}
	if !s.options.Secure || !s.options.HttpOnly || s.options.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie options: got %+v", s.options)
	}
	if got := s.key("abc"); got != "commercial:session:abc" {
		t.Errorf("key: got %q", got)
	}
}

func TestNewSessionStore_Overrides(t *testing.T) {
	s := unreachableStore(SessionOptions{MaxAge: time.Hour, KeyPrefix: "test:"})

	if s.options.MaxAge != 3600 {
		t.Errorf("MaxAge: got %d, want 3600", s.options.MaxAge)
	}
	if got := s.key("abc"); got != "test:abc" {
		t.Errorf("key: got %q", got)
	}
}

func TestRedisStore_New_WithoutValidCookie(t *testing.T) {
	s := unreachableStore(SessionOptions{})
	foreign := securecookie.New([]byte(strings.Repeat("k", 32)), nil)
	forged, err := foreign.Encode(sessionName, "some-id")
	if err != nil {
		t.Fatalf("encode forged cookie: %v", err)
	}

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"garbage", &http.Cookie{Name: sessionName, Value: "not-a-cookie"}},
		{"foreign key", &http.Cookie{Name: sessionName, Value: forged}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie)
			}
			session, err := s.New(r, sessionName)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !session.IsNew || session.ID != "" || len(session.Values) != 0 {
				t.Errorf("expected a fresh session, got %+v", session)
			}
		})
	}
}

func TestRedisStore_Save_ExpireWithoutID(t *testing.T) {
	s := unreachableStore(SessionOptions{})
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	session, err := s.New(r, sessionName)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	session.Options.MaxAge = -1
	if err := s.Save(r, w, session); err != nil {
		t.Fatalf("save: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Errorf("expected an expiring cookie, got %+v", cookies)
	}
}

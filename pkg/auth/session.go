// Package auth reads the member session that gates catalog mutations.
//
// Session keys should be 32 or 64 bytes for HMAC authentication,
// and 16, 24, or 32 bytes for AES encryption. Production deployments
// must use cryptographically random keys generated with:
//
//	openssl rand -base64 32
package auth

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const (
	defaultSessionMaxAge    = 7 * 24 * time.Hour
	defaultSessionKeyPrefix = "commercial:session:"
)

// SessionOptions configures a RedisStore.
type SessionOptions struct {
	AuthKey       []byte // 32 or 64 bytes, HMAC
	EncryptionKey []byte // 16, 24 or 32 bytes, AES
	// Secure marks the cookie HTTPS-only. Set in production.
	Secure bool
	// MaxAge bounds both the cookie and the Redis key. Zero means seven days.
	MaxAge time.Duration
	// KeyPrefix namespaces session keys in Redis.
	KeyPrefix string
}

// RedisStore is a sessions.Store that keeps session values in Redis. The
// cookie carries only the signed and encrypted session id.
//
// Values are gob-encoded; register custom types with gob.Register before use.
type RedisStore struct {
	client  redis.Cmdable
	codecs  []securecookie.Codec
	prefix  string
	options sessions.Options
}

// NewSessionStore returns a Redis-backed session store. The cookie is HttpOnly
// and SameSite=Lax.
//
//	store := auth.NewSessionStore(app.Redis.Redis(), auth.SessionOptions{
//	    AuthKey:       []byte(cfg.SessionAuthKey),
//	    EncryptionKey: []byte(cfg.SessionEncryptionKey),
//	    Secure:        cfg.Environment == config.EnvProduction,
//	})
func NewSessionStore(client redis.Cmdable, opts SessionOptions) *RedisStore {
	maxAge := opts.MaxAge
	if maxAge <= 0 {
		maxAge = defaultSessionMaxAge
	}
	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = defaultSessionKeyPrefix
	}

	codecs := securecookie.CodecsFromPairs(opts.AuthKey, opts.EncryptionKey)
	for _, c := range codecs {
		if sc, ok := c.(*securecookie.SecureCookie); ok {
			sc.MaxAge(int(maxAge.Seconds()))
		}
	}

	return &RedisStore{
		client: client,
		codecs: codecs,
		prefix: prefix,
		options: sessions.Options{
			Path:     "/",
			MaxAge:   int(maxAge.Seconds()),
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

// Get returns the request-scoped session called name.
func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New returns the session referenced by the request cookie. A missing,
// tampered or expired cookie, or an id with no Redis entry, yields a fresh
// session. Redis failures other than a missing key are returned.
func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := s.options
	session.Options = &opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}
	var id string
	if err := securecookie.DecodeMulti(name, c.Value, &id, s.codecs...); err != nil {
		return session, nil
	}

	values, err := s.load(r.Context(), id)
	switch {
	case errors.Is(err, redis.Nil):
		return session, nil
	case err != nil:
		return session, err
	}

	session.ID = id
	session.Values = values
	session.IsNew = false
	return session, nil
}

// Save writes the session to Redis and sets the cookie. A negative MaxAge
// deletes both.
func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if session.ID != "" {
			if err := s.client.Del(r.Context(), s.key(session.ID)).Err(); err != nil {
				return fmt.Errorf("delete session: %w", err)
			}
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if err := s.store(r.Context(), session); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) store(ctx context.Context, session *sessions.Session) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(session.Values); err != nil {
		return fmt.Errorf("encode session values: %w", err)
	}
	ttl := time.Duration(session.Options.MaxAge) * time.Second
	if err := s.client.Set(ctx, s.key(session.ID), buf.Bytes(), ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *RedisStore) load(ctx context.Context, id string) (map[any]any, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		return nil, err
	}
	values := make(map[any]any)
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&values); err != nil {
		return nil, fmt.Errorf("decode session values: %w", err)
	}
	return values, nil
}

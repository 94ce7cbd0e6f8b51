package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/sessions"

	"github.com/youbeemuhwan/commercial/pkg/httpx"
	"github.com/youbeemuhwan/commercial/pkg/logger"
)

const (
	sessionName        = "commercial_session"
	sessionMemberIDKey = "member_id"
	sessionRoleKey     = "role"
)

// StartSession stores p in a new or existing session and writes the cookie.
// Sessions are issued by the member login flow; the catalog only reads them.
func StartSession(store sessions.Store, w http.ResponseWriter, r *http.Request, p Principal) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return err
	}
	session.Values[sessionMemberIDKey] = strconv.FormatInt(p.MemberID, 10)
	session.Values[sessionRoleKey] = p.Role
	return session.Save(r, w)
}

var errNoMember = errors.New("session has no member")

// principalFrom reads the member id and role written by StartSession.
func principalFrom(session *sessions.Session) (Principal, error) {
	raw, _ := session.Values[sessionMemberIDKey].(string)
	if raw == "" {
		return Principal{}, errNoMember
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Principal{}, fmt.Errorf("member id %q: %w", raw, err)
	}
	if id <= 0 {
		return Principal{}, fmt.Errorf("member id %d: %w", id, errNoMember)
	}
	role, _ := session.Values[sessionRoleKey].(string)
	return Principal{MemberID: id, Role: role}, nil
}

// RequireAuth answers 401 unless the request carries a session naming a
// member. The Principal is available to later handlers via PrincipalFromCtx.
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err == nil {
				var p Principal
				if p, err = principalFrom(session); err == nil {
					next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
					return
				}
			}
			log.WarnContext(r.Context(), "unauthenticated request", "path", r.URL.Path, "error", err)
			httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		})
	}
}

// RequireAdmin runs RequireAuth and additionally rejects non-admin members
// with 403 Forbidden.
func RequireAdmin(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	authn := RequireAuth(store, log)
	return func(next http.Handler) http.Handler {
		return authn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := PrincipalFromCtx(r.Context())
			if err != nil || !p.IsAdmin() {
				log.WarnContext(r.Context(), "catalog mutation denied", "member_id", p.MemberID, "role", p.Role)
				httpx.JSONError(w, http.StatusForbidden, "admin role required")
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"blog-service/internal/shared/jwt"
)

type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Error is a status-bearing error. Handlers return one when they already
// know the HTTP status; everything else is treated as a server fault.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func BadRequest(msg string) *Error   { return &Error{Status: http.StatusBadRequest, Message: msg} }
func Unauthorized(msg string) *Error { return &Error{Status: http.StatusUnauthorized, Message: msg} }
func Forbidden(msg string) *Error    { return &Error{Status: http.StatusForbidden, Message: msg} }
func NotFound(msg string) *Error     { return &Error{Status: http.StatusNotFound, Message: msg} }
func Conflict(msg string) *Error     { return &Error{Status: http.StatusConflict, Message: msg} }

func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		var herr *Error
		if errors.As(err, &herr) {
			WriteJSON(w, map[string]any{"message": herr.Message}, herr.Status)
			return
		}
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		WriteJSON(w, map[string]any{"message": "internal server error"}, http.StatusInternalServerError)
	})
}

func Decode[T any](r *http.Request) (T, error) {
	var t T
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		return t, BadRequest("invalid request body")
	}
	return t, nil
}

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Stable string key to avoid mismatches if multiple copies of the package
// are linked.
var ctxUserIDKey = "httpx.user_id"

var ErrUnauthorized = Unauthorized("unauthorized")

// AuthMiddleware gates a route on a valid Bearer token and stores the
// token's user id in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			WriteJSON(w, map[string]any{"message": "unauthorized"}, http.StatusUnauthorized)
			return
		}
		tok := strings.TrimSpace(h[7:])
		uid, err := jwt.Parse(tok)
		if err != nil || uid == 0 {
			WriteJSON(w, map[string]any{"message": "unauthorized"}, http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserIDKey, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserFromCtx(r *http.Request) (uint, error) {
	uid, _ := r.Context().Value(ctxUserIDKey).(uint)
	if uid == 0 {
		return 0, ErrUnauthorized
	}
	return uid, nil
}

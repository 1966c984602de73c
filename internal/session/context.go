package session

import "context"

// ctxKey is a private type for the context key; prevents collisions.
type ctxKey struct{}

// WithContext returns a context carrying the given session. The route guard
// places it there; the backend client reads the API token from it when
// building requests.
func WithContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext retrieves the session placed in the context by the route
// guard. The boolean reports whether one was present.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}

package services

import "context"

// AuthSvc exchanges credentials for a backend API token. This is the one
// call made against the bare origin instead of the /api/ namespace.
type AuthSvc interface {
	ObtainToken(ctx context.Context, username, password string) (string, error)
}

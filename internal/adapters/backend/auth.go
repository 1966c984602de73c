package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	portssvc "github.com/hevile/prestacao-web/internal/core/ports/services"
	"github.com/hevile/prestacao-web/internal/dto"
)

// Ensure Client implements the auth port.
var _ portssvc.AuthSvc = (*Client)(nil)

// ObtainToken exchanges credentials for an API token. This endpoint lives
// on the bare origin, outside the /api/ namespace, and is the only call
// made without the Authorization header.
func (c *Client) ObtainToken(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.origin+"/api-token-auth/", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", decodeError(resp)
	}

	var out dto.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	return out.Token, nil
}

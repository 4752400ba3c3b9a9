package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/srgjo27/seatflow/internal/core/domain"
)

type authRequestDTO struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type authResponseDTO struct {
	IDToken string `json:"id_token"`
}

// AuthAPI exchanges credentials for a JWT.
type AuthAPI struct {
	c *client
}

func NewAuthAPI(baseURL string, httpClient *http.Client, logger *slog.Logger) *AuthAPI {
	return &AuthAPI{c: newClient(baseURL, httpClient, nil, logger)}
}

func (a *AuthAPI) Authenticate(ctx context.Context, username, password string) (string, error) {
	var resp authResponseDTO
	body := authRequestDTO{Username: username, Password: password, RememberMe: true}

	status, err := a.c.do(ctx, http.MethodPost, "/api/authenticate", body, &resp)
	if err != nil {
		var appErr *domain.AppError
		if !errors.As(err, &appErr) {
			return "", err
		}

		switch {
		case status == http.StatusUnauthorized:
			return "", domain.NewError(domain.KindAuth, "Invalid username or password", err)
		case status == http.StatusBadRequest:
			return "", domain.NewError(domain.KindValidation, "Invalid login data", err)
		case status >= 200 && status < 300:
			// the backend answers bad credentials with an undecodable 2xx body
			return "", domain.NewError(domain.KindAuth, "Invalid username or password", err)
		}

		return "", err
	}

	if strings.TrimSpace(resp.IDToken) == "" {
		return "", domain.NewError(domain.KindAuth, "Invalid username or password", domain.ErrNotAuthenticated)
	}

	return resp.IDToken, nil
}

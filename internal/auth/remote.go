package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Remote authenticates against an external identity-toolkit style REST
// provider. Only the outcome is consumed; on failure the provider's own
// message is surfaced to the user unchanged.
type Remote struct {
	httpClient *resty.Client
	apiKey     string
}

func NewRemote(baseURL, apiKey string) *Remote {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &Remote{httpClient: client, apiKey: apiKey}
}

type credentialsPayload struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type providerResponse struct {
	Email string `json:"email"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *Remote) SignIn(ctx context.Context, email, password string) (Identity, error) {
	return g.post(ctx, "/v1/accounts:signInWithPassword", email, password)
}

func (g *Remote) SignUp(ctx context.Context, email, password string) (Identity, error) {
	return g.post(ctx, "/v1/accounts:signUp", email, password)
}

// SignOut has no server-side call on this provider; the session just ends.
func (g *Remote) SignOut(ctx context.Context) error {
	return nil
}

func (g *Remote) post(ctx context.Context, endpoint, email, password string) (Identity, error) {
	if email == "" || password == "" {
		return Identity{}, ErrMissingCredentials
	}

	var result providerResponse
	resp, err := g.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetBody(credentialsPayload{Email: email, Password: password, ReturnSecureToken: true}).
		SetResult(&result).
		SetError(&result).
		Post(endpoint)
	if err != nil {
		return Identity{}, fmt.Errorf("auth provider unreachable: %w", err)
	}

	if resp.IsError() {
		message := result.Error.Message
		if message == "" {
			message = fmt.Sprintf("auth provider error (%d)", resp.StatusCode())
		}
		return Identity{}, errors.New(message)
	}

	return Identity{Email: normalizeEmail(result.Email)}, nil
}

package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/attendance/internal/entity"
	"github.com/samandr77/microservices/attendance/pkg/config"
)

const (
	authenticatePath    = "/api/v1/authenticate"
	defaultRetryWaitMin = 200 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
)

// Client checks credentials against a remote identity service.
type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient(cfg config.IdentityConfig) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout

	retryClient.Logger = nil

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: strings.TrimRight(cfg.ServiceURL, "/"),
	}
}

type authenticateRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

type accountResponse struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Role       string `json:"role"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	JobTitle   string `json:"job_title"`
	AvatarURL  string `json:"avatar_url"`
	Team       string `json:"team"`
}

func (c *Client) Authenticate(ctx context.Context, identifier, password string, role entity.Role) (entity.Account, error) {
	body, err := json.Marshal(authenticateRequest{
		Identifier: identifier,
		Password:   password,
		Role:       string(role),
	})
	if err != nil {
		return entity.Account{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+authenticatePath, bytes.NewReader(body))
	if err != nil {
		return entity.Account{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.Account{}, fmt.Errorf("%w: %w", entity.ErrIdentityUnavailable, err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.Account{}, fmt.Errorf("%w: read body: %w", entity.ErrIdentityUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusNotFound:
		return entity.Account{}, entity.ErrInvalidCredentials
	default:
		return entity.Account{}, fmt.Errorf("%w: status %d", entity.ErrIdentityUnavailable, resp.StatusCode)
	}

	var ar accountResponse
	if err := json.Unmarshal(respBody, &ar); err != nil {
		return entity.Account{}, fmt.Errorf("%w: decode response: %w", entity.ErrIdentityUnavailable, err)
	}

	return ar.toAccount()
}

func (ar accountResponse) toAccount() (entity.Account, error) {
	id, err := uuid.FromString(ar.ID)
	if err != nil {
		return entity.Account{}, fmt.Errorf("%w: account id: %w", entity.ErrIdentityUnavailable, err)
	}

	role, err := entity.ParseRole(ar.Role)
	if err != nil {
		return entity.Account{}, fmt.Errorf("%w: account role %q", entity.ErrIdentityUnavailable, ar.Role)
	}

	return entity.Account{
		ID:         id,
		Identifier: ar.Identifier,
		Role:       role,
		FullName:   ar.FullName,
		Email:      ar.Email,
		JobTitle:   ar.JobTitle,
		AvatarURL:  ar.AvatarURL,
		Team:       ar.Team,
	}, nil
}

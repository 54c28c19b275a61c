package galaxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const apiKeyHeader = "x-api-key"

// Client is the HTTP implementation of API.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a Galaxy API client. baseURL is the server root
// (e.g. https://usegalaxy.ca) without a trailing slash.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: galaxy returned %d: %s", method, endpoint, resp.StatusCode, bytes.TrimSpace(snippet))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, endpoint, err)
	}
	return nil
}

func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) Roles(ctx context.Context) ([]Role, error) {
	var roles []Role
	if err := c.do(ctx, http.MethodGet, "/api/roles", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *Client) Groups(ctx context.Context) ([]Group, error) {
	var groups []Group
	if err := c.do(ctx, http.MethodGet, "/api/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) CreateRole(ctx context.Context, name, description string) (Role, error) {
	payload := RoleDefinition{Name: name, Description: description}
	var role Role
	if err := c.do(ctx, http.MethodPost, "/api/roles", payload, &role); err != nil {
		return Role{}, err
	}
	return role, nil
}

func (c *Client) CreateGroup(ctx context.Context, name string) (Group, error) {
	payload := GroupCreate{Name: name}
	var group Group
	if err := c.do(ctx, http.MethodPost, "/api/groups", payload, &group); err != nil {
		return Group{}, err
	}
	return group, nil
}

func (c *Client) UpdateGroup(ctx context.Context, groupID string, upd GroupUpdate) (Group, error) {
	var group Group
	endpoint := "/api/groups/" + groupID
	if err := c.do(ctx, http.MethodPut, endpoint, upd, &group); err != nil {
		return Group{}, err
	}
	return group, nil
}

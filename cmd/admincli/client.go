package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/digiserv/backend/subm"
)

// apiClient talks to the backend's admin surface. The JWT obtained at
// login is kept in memory only.
type apiClient struct {
	baseURL string
	client  *http.Client
	token   string
}

func newApiClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type jsonResponse struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	ErrMsg  string          `json:"message"`
	ErrCode string          `json:"code"`
}

func (c *apiClient) do(method, path string, body any, out any) error {
	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, &reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	var parsed jsonResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("failed to parse server response (%s)", resp.Status)
	}
	if parsed.Status != "success" {
		if parsed.ErrMsg != "" {
			return errors.New(parsed.ErrMsg)
		}
		return fmt.Errorf("request failed (%s)", resp.Status)
	}
	if out != nil {
		if err := json.Unmarshal(parsed.Data, out); err != nil {
			return fmt.Errorf("failed to parse response data: %w", err)
		}
	}
	return nil
}

func (c *apiClient) Login(email, password string) error {
	var token string
	err := c.do(http.MethodPost, "/api/admin/login",
		map[string]string{"email": email, "password": password}, &token)
	if err != nil {
		return err
	}
	c.token = token
	return nil
}

func (c *apiClient) Logout() {
	c.token = ""
}

func (c *apiClient) ListSubmissions() ([]subm.Submission, error) {
	var subms []subm.Submission
	if err := c.do(http.MethodGet, "/api/admin/submissions", nil, &subms); err != nil {
		return nil, err
	}
	return subms, nil
}

func (c *apiClient) UpdateStatus(id string, status subm.Status) error {
	path := fmt.Sprintf("/api/admin/submissions/%s/status", id)
	return c.do(http.MethodPatch, path, map[string]string{"status": string(status)}, nil)
}

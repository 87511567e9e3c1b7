package proofcli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/getwilds/proof-lib-go/pkg/proof"
	"resty.dev/v3"
)

// AuthHeader returns the header set sent on authenticated calls: a
// single Authorization header carrying the token verbatim. An empty or
// malformed token is the caller's responsibility.
func AuthHeader(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

// HTTPClient implements the Client interface using Resty v3
type HTTPClient struct {
	client    *resty.Client
	engineURL string
}

// NewHTTPClient creates a new PROOF API client
func NewHTTPClient(cfg *Config) *HTTPClient {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetDisableWarn(true)

	if cfg.Debug {
		client.SetDebug(true)
	}

	return &HTTPClient{
		client:    client,
		engineURL: cfg.EngineURL,
	}
}

// apiResult holds the status code and raw body of a completed call.
// The public methods collapse non-200 results to nil; keeping the
// status here lets a future version surface it without an API break.
type apiResult struct {
	status int
	body   []byte
}

func (r *apiResult) ok() bool {
	return r.status == http.StatusOK
}

func (r *apiResult) decode(v any) error {
	if len(r.body) == 0 {
		return nil
	}
	return json.Unmarshal(r.body, v)
}

func readResult(resp *resty.Response) (*apiResult, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &apiResult{status: resp.StatusCode(), body: body}, nil
}

// withAuth applies the auth header set to a request
func withAuth(req *resty.Request, token string) *resty.Request {
	for name, values := range AuthHeader(token) {
		for _, value := range values {
			req.SetHeader(name, value)
		}
	}
	return req
}

// Authenticate exchanges credentials for a bearer token. A non-200
// response, bad credentials included, returns the empty string with a
// nil error.
func (c *HTTPClient) Authenticate(ctx context.Context, username, password string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(proof.Credentials{Username: username, Password: password}).
		Post("/authenticate")

	if err != nil {
		return "", fmt.Errorf("failed to authenticate: %w", err)
	}

	result, err := readResult(resp)
	if err != nil {
		return "", err
	}
	if !result.ok() {
		return "", nil
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := result.decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode authenticate response: %w", err)
	}

	return body.Token, nil
}

// GetJobStatus retrieves the caller's job status from the control
// plane. A non-200 response returns nil with a nil error.
func (c *HTTPClient) GetJobStatus(ctx context.Context, token string) (proof.JobStatusInfo, error) {
	resp, err := withAuth(c.client.R().SetContext(ctx), token).
		Get("/cromwell-server")

	if err != nil {
		return nil, fmt.Errorf("failed to get job status: %w", err)
	}

	result, err := readResult(resp)
	if err != nil {
		return nil, err
	}
	if !result.ok() {
		return nil, nil
	}

	var info proof.JobStatusInfo
	if err := result.decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode job status response: %w", err)
	}

	return info, nil
}

// startJobRequest is the job start payload. pi_name is omitted when
// the caller belongs to exactly one execution account.
type startJobRequest struct {
	PiName *string `json:"pi_name,omitempty"`
}

// StartJob provisions a server-side job for the caller. Not
// idempotent: every successful call starts another job. A non-200
// response returns nil with a nil error.
func (c *HTTPClient) StartJob(ctx context.Context, token string, piName *string) (proof.JobStartResult, error) {
	resp, err := withAuth(c.client.R().SetContext(ctx), token).
		SetBody(startJobRequest{PiName: piName}).
		Post("/cromwell-server")

	if err != nil {
		return nil, fmt.Errorf("failed to start job: %w", err)
	}

	result, err := readResult(resp)
	if err != nil {
		return nil, err
	}
	if !result.ok() {
		return nil, nil
	}

	var started proof.JobStartResult
	if err := result.decode(&started); err != nil {
		return nil, fmt.Errorf("failed to decode job start response: %w", err)
	}

	return started, nil
}

// CancelJob terminates the caller's running job server-side. A non-200
// response returns nil with a nil error.
func (c *HTTPClient) CancelJob(ctx context.Context, token string) (map[string]any, error) {
	resp, err := withAuth(c.client.R().SetContext(ctx), token).
		Delete("/cromwell-server")

	if err != nil {
		return nil, fmt.Errorf("failed to cancel job: %w", err)
	}

	result, err := readResult(resp)
	if err != nil {
		return nil, err
	}
	if !result.ok() {
		return nil, nil
	}

	var cancelled map[string]any
	if err := result.decode(&cancelled); err != nil {
		return nil, fmt.Errorf("failed to decode job cancel response: %w", err)
	}

	return cancelled, nil
}

// GetEngineVersion queries the workflow engine's version endpoint. The
// engine URL is resolved per call: the explicit argument wins, then
// the configured EngineURL. Both the resolved URL and the token must
// be present or the call fails before any network attempt, with
// proof.ErrMissingEngineURL or proof.ErrMissingToken.
//
// Unlike the control-plane operations, the response status is not
// checked: whatever body the engine returns is decoded and handed
// back, error bodies on non-200 included.
func (c *HTTPClient) GetEngineVersion(ctx context.Context, engineURL, token string) (proof.EngineVersion, error) {
	if engineURL == "" {
		engineURL = c.engineURL
	}
	if engineURL == "" {
		return nil, proof.ErrMissingEngineURL
	}
	if token == "" {
		return nil, proof.ErrMissingToken
	}

	resp, err := withAuth(c.client.R().SetContext(ctx), token).
		Get(strings.TrimSuffix(engineURL, "/") + "/engine/v1/version")

	if err != nil {
		return nil, fmt.Errorf("failed to get engine version: %w", err)
	}

	result, err := readResult(resp)
	if err != nil {
		return nil, err
	}

	var version proof.EngineVersion
	if err := result.decode(&version); err != nil {
		return nil, fmt.Errorf("failed to decode engine version response: %w", err)
	}

	return version, nil
}

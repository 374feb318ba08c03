// Package cloudflare is a minimal Cloudflare v4 API client for Pages
// deployment management.
package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the Cloudflare v4 API root.
const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

// Operation names reported to the Observer and carried by APIError.
const (
	OpGetProject       = "get_project"
	OpListDeployments  = "list_deployments"
	OpDeleteDeployment = "delete_deployment"
)

// Observer is notified once per API call with its outcome.
type Observer func(operation string, duration time.Duration, err error)

// Client is a minimal Cloudflare API client for Pages projects.
type Client struct {
	apiToken   string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	observer   Observer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, e.g. for tests or API proxies.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient sets the HTTP client used for all requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithObserver registers a callback invoked after every API call.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// Project is the subset of a Pages project the client cares about.
type Project struct {
	Name                string      `json:"name"`
	Subdomain           string      `json:"subdomain"`
	ProductionBranch    string      `json:"production_branch"`
	CanonicalDeployment *Deployment `json:"canonical_deployment"`
}

// Deployment represents a Cloudflare Pages deployment.
type Deployment struct {
	ID          string    `json:"id"`
	ShortID     string    `json:"short_id"`
	ProjectName string    `json:"project_name"`
	Environment string    `json:"environment"`
	URL         string    `json:"url"`
	Aliases     []string  `json:"aliases"`
	CreatedOn   time.Time `json:"created_on"`
}

type apiResponse struct {
	Success bool            `json:"success"`
	Errors  []apiError      `json:"errors"`
	Result  json.RawMessage `json:"result"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewClient creates a new Cloudflare API client.
func NewClient(apiToken string, opts ...Option) *Client {
	c := &Client{
		apiToken:   apiToken,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetProject fetches the Pages project metadata.
func (c *Client) GetProject(ctx context.Context, accountID, projectName string) (*Project, error) {
	var project Project
	err := c.call(ctx, OpGetProject, http.MethodGet, projectPath(accountID, projectName), nil, &project)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", projectName, err)
	}
	return &project, nil
}

// ListDeployments returns one page of deployments. Pages are 1-based.
// An empty slice means there are no more deployments.
func (c *Client) ListDeployments(ctx context.Context, accountID, projectName string, page, perPage int) ([]Deployment, error) {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))

	var deployments []Deployment
	err := c.call(ctx, OpListDeployments, http.MethodGet, projectPath(accountID, projectName)+"/deployments", q, &deployments)
	if err != nil {
		return nil, fmt.Errorf("list deployments page %d: %w", page, err)
	}
	return deployments, nil
}

// DeleteDeployment deletes a deployment by ID. With force set, deployments
// that are still reachable through an alias are deleted as well.
func (c *Client) DeleteDeployment(ctx context.Context, accountID, projectName, deploymentID string, force bool) error {
	var q url.Values
	if force {
		q = url.Values{"force": []string{"true"}}
	}

	path := projectPath(accountID, projectName) + "/deployments/" + url.PathEscape(deploymentID)
	if err := c.call(ctx, OpDeleteDeployment, http.MethodDelete, path, q, nil); err != nil {
		return fmt.Errorf("delete deployment %s: %w", deploymentID, err)
	}
	return nil
}

func projectPath(accountID, projectName string) string {
	return "/accounts/" + url.PathEscape(accountID) + "/pages/projects/" + url.PathEscape(projectName)
}

func (c *Client) call(ctx context.Context, operation, method, path string, query url.Values, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, operation, method, path, query, out)
	if c.observer != nil {
		c.observer(operation, time.Since(start), err)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, operation, method, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, method, path, query)
	if err != nil {
		return err
	}

	var resp apiResponse
	status, err := c.do(req, &resp)
	if err != nil {
		return err
	}

	if !resp.Success || status < 200 || status >= 300 {
		return newAPIError(operation, status, resp.Errors)
	}

	if out == nil || len(resp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return fmt.Errorf("parse result: %w", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out *apiResponse) (int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, fmt.Errorf("parse response: %w (status %d)", err, resp.StatusCode)
	}

	return resp.StatusCode, nil
}

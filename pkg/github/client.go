package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"
)

// Repo is the subset of a GitHub repository listing this API exposes.
type Repo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
}

// RepoLister lists a user's public repositories. Services depend on this
// interface only; the GitHub API is an external collaborator.
type RepoLister interface {
	ListRepos(ctx context.Context, username string, limit int) ([]Repo, error)
}

// ErrUserNotFound reports an unknown GitHub username.
var ErrUserNotFound = fmt.Errorf("github user not found")

// Client implements RepoLister against api.github.com with retrying
// heimdall transport.
type Client struct {
	http    *httpclient.Client
	baseURL string
	token   string
}

func NewClient(baseURL, token string, timeout time.Duration, retries int) *Client {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	backoff := heimdall.NewConstantBackoff(500*time.Millisecond, 50*time.Millisecond)
	c := httpclient.NewClient(
		httpclient.WithHTTPTimeout(timeout),
		httpclient.WithRetrier(heimdall.NewRetrier(backoff)),
		httpclient.WithRetryCount(retries),
	)
	return &Client{http: c, baseURL: baseURL, token: token}
}

func (c *Client) ListRepos(ctx context.Context, username string, limit int) ([]Repo, error) {
	u := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=created:asc", c.baseURL, url.PathEscape(username), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github responded %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var repos []Repo
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

var _ RepoLister = (*Client)(nil)

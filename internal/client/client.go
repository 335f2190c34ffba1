package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"resty.dev/v3"

	"resume-builder/internal/domain"
)

// Client talks to the resume API. Every authenticated call carries the
// bearer token; a 401 anywhere discards local credential state and fires
// the onUnauthorized hook. No retries - failures surface to the caller.

var ErrUnauthorized = errors.New("session expired")

type Client struct {
	http *resty.Client

	mu             sync.Mutex
	token          string
	onUnauthorized func()
}

type Option func(*Client)

// WithToken seeds an existing credential.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// OnUnauthorized installs the boundary-wide 401 reaction (the web client
// redirects to login here).
func OnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second).
			SetHeader("Content-Type", "application/json"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Close() error { return c.http.Close() }

func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) request(ctx context.Context) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if t := c.Token(); t != "" {
		r.SetAuthToken(t)
	}
	return r
}

// check maps the response to an error, applying the 401 policy.
func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		c.mu.Lock()
		c.token = ""
		hook := c.onUnauthorized
		c.mu.Unlock()
		if hook != nil {
			hook()
		}
		return ErrUnauthorized
	}
	if resp.IsError() {
		return fmt.Errorf("api: %s: %s", resp.Status(), resp.String())
	}
	return nil
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// Login exchanges credentials for a bearer token and stores it.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out loginResponse
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/auth/login")
	if err := c.check(resp, err); err != nil {
		return err
	}
	c.mu.Lock()
	c.token = out.Token
	c.mu.Unlock()
	return nil
}

func (c *Client) Register(ctx context.Context, email, password, firstName, lastName string) error {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]string{
			"email":     email,
			"password":  password,
			"firstName": firstName,
			"lastName":  lastName,
		}).
		Post("/auth/register")
	return c.check(resp, err)
}

func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("token", token).
		Get("/auth/verify-email")
	return c.check(resp, err)
}

func (c *Client) ListResumes(ctx context.Context) ([]domain.ResumeSummary, error) {
	var out []domain.ResumeSummary
	resp, err := c.request(ctx).SetResult(&out).Get("/resume")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetResume(ctx context.Context, id string) (*domain.Resume, error) {
	var out domain.Resume
	resp, err := c.request(ctx).SetResult(&out).Get("/resume/" + id)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateResume(ctx context.Context, title string) (*domain.ResumeSummary, error) {
	var out domain.ResumeSummary
	resp, err := c.request(ctx).
		SetBody(map[string]string{"title": title}).
		SetResult(&out).
		Post("/resume")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateResume(ctx context.Context, id string, up domain.ResumeUpdate) error {
	resp, err := c.request(ctx).SetBody(up).Put("/resume/" + id)
	return c.check(resp, err)
}

func (c *Client) DeleteResume(ctx context.Context, id string) error {
	resp, err := c.request(ctx).Delete("/resume/" + id)
	return c.check(resp, err)
}

func (c *Client) UserStats(ctx context.Context) (*domain.UserStats, error) {
	var out domain.UserStats
	resp, err := c.request(ctx).SetResult(&out).Get("/user/stats")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

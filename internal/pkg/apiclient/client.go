package apiclient

import (
	"context"
	"net/url"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/nekogravitycat/court-booking-planner/internal/auth"
)

// Client is a thin JSON client for the reservation API.
// It never retries and sets no timeout beyond the transport default.
type Client struct {
	rc     *resty.Client
	logger *zap.Logger
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, logger *zap.Logger) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0).
		SetLogger(logger.Sugar())

	return &Client{rc: rc, logger: logger}
}

// Get issues a GET for path with the given query and decodes a 2xx body into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	req := c.request(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	return c.do(req, resty.MethodGet, path, out)
}

// Post issues a JSON POST for path and decodes a 2xx body into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	req := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	return c.do(req, resty.MethodPost, path, out)
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.rc.R().SetContext(ctx)
	if token := auth.TokenFromContext(ctx); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (c *Client) do(req *resty.Request, method, path string, out any) error {
	if out != nil {
		req.SetResult(out)
	}
	req.SetError(&errorBody{})

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Debug("reservation api unreachable",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &TransportError{Err: err}
	}

	if resp.IsError() {
		apiErr := newError(resp)
		c.logger.Debug("reservation api error response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", apiErr.Status),
			zap.Strings("messages", apiErr.Messages),
		)
		return apiErr
	}

	return nil
}

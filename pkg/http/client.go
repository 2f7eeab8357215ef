package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/dashboard-auth/pkg/log"
)

const defaultClientTimeout = 10 * time.Second

type (
	ClientOption func(*resty.Client)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
		Cookies(url string) []*http.Cookie
	}

	client struct {
		impl *resty.Client
	}
)

// NewClient keeps cookies between requests like a browser does.
func NewClient(opts ...ClientOption) Client {
	impl := resty.New().SetTimeout(defaultClientTimeout)
	for _, opt := range opts {
		opt(impl)
	}

	return client{impl: impl}
}

func (c client) NewRequest(ctx context.Context) *resty.Request {
	return c.impl.NewRequest().SetContext(ctx)
}

func (c client) Cookies(rawURL string) []*http.Cookie {
	req, err := http.NewRequest(http.MethodGet, rawURL, http.NoBody)
	if err != nil || c.impl.GetClient().Jar == nil {
		return nil
	}

	return c.impl.GetClient().Jar.Cookies(req.URL)
}

func WithBaseURL(url string) ClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(url)
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *resty.Client) {
		c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			level := infoLevel
			if resp.StatusCode() >= http.StatusInternalServerError {
				level = errorLevel
			}

			logger.With(log.Fields{
				"method":       resp.Request.Method,
				"url":          resp.Request.URL,
				"responseCode": resp.StatusCode(),
				"duration":     resp.Time().String(),
			}).Log(resp.Request.Context(), level, "http call completed")
			return nil
		})

		c.OnError(func(req *resty.Request, err error) {
			logger.WithError(err).With(log.Fields{
				"method": req.Method,
				"url":    req.URL,
			}).Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

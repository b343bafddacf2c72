package comdirect

import (
	"context"
	"time"

	"github.com/imroc/req/v3"
	"github.com/samber/lo"
)

// The API terms of use allow at most 10 requests per second. The limiter
// blocks the calling goroutine, it does not queue or drop.
const requestsPerSecond = 10

// perform sends one catalog request, enforces its accepted status set and
// runs its response handler against the session.
func (c *Client) perform(ctx context.Context, r request) (*req.Response, error) {
	if r.authenticated && !c.tokens.isAccessValid(time.Now()) {
		return nil, ErrSessionExpired
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	httpReq := c.cl.R().
		SetContext(ctx).
		SetHeaders(r.headers)

	if r.body != "" {
		httpReq.SetBody(r.body)
	}

	resp, err := httpReq.Send(r.method, c.cfg.BaseURL+r.path)
	if err != nil {
		return nil, err
	}

	if !lo.Contains(r.accepted, resp.StatusCode) {
		return nil, &ProtocolError{
			Accepted:   r.accepted,
			StatusCode: resp.StatusCode,
			Body:       resp.String(),
		}
	}

	if r.handle != nil {
		if err = r.handle(c, resp); err != nil {
			return nil, err
		}
	}

	return resp, nil
}

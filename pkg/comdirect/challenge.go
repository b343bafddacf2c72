package comdirect

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

const (
	authInfoHeader = "x-once-authentication-info"

	// P_TAN_PUSH is the only challenge type that completes without the
	// user typing a TAN into the client.
	challengeTypePush = "P_TAN_PUSH"

	challengeStatusPending       = "PENDING"
	challengeStatusAuthenticated = "AUTHENTICATED"
)

type challengeOutcome int

const (
	challengeGranted challengeOutcome = iota
	challengeMissing
	challengeMalformed
	challengeUnsupported
)

// challenge is the out-of-band TAN confirmation captured from the
// validate-session response. It lives for one login flow.
type challenge struct {
	id         string
	typ        string
	statusPath string
	status     string
}

type authInfo struct {
	Typ  string `json:"typ"`
	ID   string `json:"id"`
	Link struct {
		Href string `json:"href"`
	} `json:"link"`
}

func parseChallenge(header string) (challenge, challengeOutcome) {
	if header == "" {
		return challenge{}, challengeMissing
	}

	var info authInfo
	if err := json.Unmarshal([]byte(header), &info); err != nil {
		return challenge{}, challengeMalformed
	}

	if info.Typ == "" || info.ID == "" {
		return challenge{}, challengeMalformed
	}

	parsed := challenge{
		id:         info.ID,
		typ:        info.Typ,
		statusPath: info.Link.Href,
	}

	if info.Typ != challengeTypePush {
		return parsed, challengeUnsupported
	}

	return parsed, challengeGranted
}

// waitForChallenge polls the challenge status endpoint until the
// challenge leaves the PENDING state. With MaxPollAttempts at its zero
// default the loop is unbounded, like the reference flow; callers wanting
// a ceiling set the knob or cancel the context.
func (c *Client) waitForChallenge(ctx context.Context) error {
	c.challenge.status = challengeStatusPending

	attempts := 0
	for c.challenge.status == challengeStatusPending {
		if c.cfg.MaxPollAttempts > 0 && attempts >= c.cfg.MaxPollAttempts {
			return errors.Wrapf(ErrAuthentication,
				"TAN challenge still pending after %v attempts", attempts)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.cfg.PollInterval):
		}

		if _, err := c.perform(ctx, c.challengeStatusRequest()); err != nil {
			return err
		}

		attempts++
		zerolog.Ctx(ctx).Debug().
			Str("status", c.challenge.status).
			Int("attempts", attempts).
			Msg("polled TAN challenge")
	}

	return nil
}

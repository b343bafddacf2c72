package comdirect

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/imroc/req/v3"
)

// Endpoint paths follow the numbering of the comdirect REST API
// documentation (2.x login flow, 3.x token refresh, 4.x banking,
// 9.x postbox).
const (
	oauthTokenPath      = "/oauth/token"
	sessionsPath        = "/api/session/clients/user/v1/sessions"
	balancesPath        = "/api/banking/clients/user/v2/accounts/balances"
	transactionsPath    = "/api/banking/v1/accounts/%s/transactions?paging-first=%d&transactionState=BOOKED"
	postboxPath         = "/api/messages/clients/user/v2/documents?paging-first=%d"
	postboxDocumentPath = "/api/messages/v2/documents/%s"
)

type responseHandler func(c *Client, resp *req.Response) error

// request is one immutable descriptor from the catalog: everything the
// transport needs to issue the call and digest its response.
type request struct {
	method        string
	path          string
	headers       map[string]string
	body          string
	accepted      []int
	authenticated bool
	handle        responseHandler
}

func (c *Client) formHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
		"Accept":       "application/json",
	}
}

func (c *Client) authHeaders() map[string]string {
	return map[string]string{
		"Accept":              "application/json",
		"Authorization":       "Bearer " + c.tokens.accessToken,
		"x-http-request-info": c.requestInfo(),
		"Content-Type":        "application/json",
	}
}

// requestInfo renders the mandatory correlation header carrying the
// session id and the per-login-flow request id.
func (c *Client) requestInfo() string {
	info, _ := json.Marshal(map[string]interface{}{
		"clientRequestId": map[string]string{
			"sessionId": c.sessionID,
			"requestId": c.requestID,
		},
	})

	return string(info)
}

func (c *Client) sessionBody() string {
	body, _ := json.Marshal(map[string]interface{}{
		"identifier":       c.sessionUUID,
		"sessionTanActive": true,
		"activated2FA":     true,
	})

	return string(body)
}

func (c *Client) passwordGrantRequest() request {
	form := url.Values{}
	form.Set("client_id", c.cfg.Credentials.ClientID)
	form.Set("client_secret", c.cfg.Credentials.ClientSecret)
	form.Set("grant_type", "password")
	form.Set("username", c.cfg.Credentials.Zugangsnummer)
	form.Set("password", c.cfg.Credentials.Pin)

	return request{
		method:   "POST",
		path:     oauthTokenPath,
		headers:  c.formHeaders(),
		body:     form.Encode(),
		accepted: []int{200},
		handle:   handleTokenGrant,
	}
}

func (c *Client) secondaryGrantRequest() request {
	form := url.Values{}
	form.Set("client_id", c.cfg.Credentials.ClientID)
	form.Set("client_secret", c.cfg.Credentials.ClientSecret)
	form.Set("grant_type", "cd_secondary")
	form.Set("token", c.tokens.accessToken)

	return request{
		method:   "POST",
		path:     oauthTokenPath,
		headers:  c.formHeaders(),
		body:     form.Encode(),
		accepted: []int{200},
		handle:   handleTokenGrant,
	}
}

func (c *Client) refreshGrantRequest() request {
	form := url.Values{}
	form.Set("client_id", c.cfg.Credentials.ClientID)
	form.Set("client_secret", c.cfg.Credentials.ClientSecret)
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", c.tokens.refreshToken)

	return request{
		method:   "POST",
		path:     oauthTokenPath,
		headers:  c.formHeaders(),
		body:     form.Encode(),
		accepted: []int{200},
		handle:   handleTokenGrant,
	}
}

func (c *Client) sessionStatusRequest() request {
	return request{
		method:        "GET",
		path:          sessionsPath,
		headers:       c.authHeaders(),
		accepted:      []int{200},
		authenticated: true,
		handle:        handleSessionStatus,
	}
}

func (c *Client) validateSessionRequest() request {
	return request{
		method:        "POST",
		path:          sessionsPath + "/" + c.sessionUUID + "/validate",
		headers:       c.authHeaders(),
		body:          c.sessionBody(),
		accepted:      []int{201},
		authenticated: true,
		handle:        handleValidateSession,
	}
}

func (c *Client) challengeStatusRequest() request {
	return request{
		method:        "GET",
		path:          c.challenge.statusPath,
		headers:       c.authHeaders(),
		accepted:      []int{200},
		authenticated: true,
		handle:        handleChallengeStatus,
	}
}

func (c *Client) activateSessionRequest() request {
	headers := c.authHeaders()
	headers["x-once-authentication-info"] = fmt.Sprintf(`{"id":"%s"}`, c.challenge.id)
	// The push challenge needs no user-entered TAN, the value is fixed.
	headers["x-once-authentication"] = "000000"

	return request{
		method:        "PATCH",
		path:          sessionsPath + "/" + c.sessionUUID,
		headers:       headers,
		body:          c.sessionBody(),
		accepted:      []int{200},
		authenticated: true,
		handle:        handleActivateSession,
	}
}

func (c *Client) accountBalancesRequest() request {
	return request{
		method:        "GET",
		path:          balancesPath,
		headers:       c.authHeaders(),
		accepted:      []int{200},
		authenticated: true,
		handle:        handleAccountBalances,
	}
}

// The transactions endpoint only honors paging-first for BOOKED
// transactions, so the state filter stays fixed.
func (c *Client) accountTransactionsRequest(pagingFirst int) request {
	return request{
		method:        "GET",
		path:          fmt.Sprintf(transactionsPath, c.accountUUID, pagingFirst),
		headers:       c.authHeaders(),
		accepted:      []int{200},
		authenticated: true,
	}
}

func (c *Client) postboxListRequest(pagingFirst int) request {
	return request{
		method:        "GET",
		path:          fmt.Sprintf(postboxPath, pagingFirst),
		headers:       c.authHeaders(),
		accepted:      []int{200},
		authenticated: true,
	}
}

// Responses of this descriptor may carry binary document content and are
// never logged or dumped.
func (c *Client) postboxDocumentContentRequest(documentID, mimeType string) request {
	headers := c.authHeaders()
	headers["Accept"] = mimeType

	return request{
		method:        "GET",
		path:          fmt.Sprintf(postboxDocumentPath, documentID),
		headers:       headers,
		accepted:      []int{200},
		authenticated: true,
	}
}

func handleTokenGrant(c *Client, resp *req.Response) error {
	var grant tokenResponse
	if err := resp.UnmarshalJson(&grant); err != nil {
		return err
	}

	if grant.AccessToken == "" || grant.RefreshToken == "" {
		return errors.Newf("token grant response is missing tokens: %v", spew.Sdump(grant))
	}

	c.tokens.update(grant.AccessToken, grant.RefreshToken, grant.ExpiresIn)
	return nil
}

func handleSessionStatus(c *Client, resp *req.Response) error {
	var sessions []sessionStatus
	if err := resp.UnmarshalJson(&sessions); err != nil {
		return err
	}

	if len(sessions) == 0 {
		return errors.New("server returned no sessions")
	}

	c.sessionUUID = sessions[0].Identifier
	return nil
}

func handleValidateSession(c *Client, resp *req.Response) error {
	challenge, outcome := parseChallenge(resp.Header.Get(authInfoHeader))

	switch outcome {
	case challengeGranted:
		c.challenge = challenge
		return nil
	case challengeUnsupported:
		return errors.Wrapf(ErrAuthentication, "unsupported TAN type: %s", challenge.typ)
	case challengeMissing:
		return errors.New("no TAN challenge received")
	default:
		return errors.Newf("invalid TAN challenge received: %s", resp.Header.Get(authInfoHeader))
	}
}

func handleChallengeStatus(c *Client, resp *req.Response) error {
	var status struct {
		Status string `json:"status"`
	}
	if err := resp.UnmarshalJson(&status); err != nil {
		return err
	}

	c.challenge.status = status.Status
	return nil
}

func handleActivateSession(c *Client, resp *req.Response) error {
	var session sessionStatus
	if err := resp.UnmarshalJson(&session); err != nil {
		return err
	}

	if !session.SessionTanActive || !session.Activated2FA {
		return errors.Wrapf(ErrAuthentication,
			"session TAN or 2FA not active: %v", spew.Sdump(session))
	}

	c.sessionUUID = session.Identifier
	return nil
}

func handleAccountBalances(c *Client, resp *req.Response) error {
	var balances accountBalances
	if err := resp.UnmarshalJson(&balances); err != nil {
		return err
	}

	if len(balances.Values) == 0 {
		return errors.New("server returned no accounts")
	}

	// TODO: request transactions for every account instead of the first
	// one once multi-account configuration exists.
	c.accountUUID = balances.Values[0].AccountID
	return nil
}

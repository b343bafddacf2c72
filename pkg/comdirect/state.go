package comdirect

import "time"

// State is the serializable snapshot of a session. It round-trips
// everything a fresh Client needs to continue where a previous process
// stopped: both tokens with their expiries plus the identifiers the
// server handed out during the last login flow.
type State struct {
	AccessToken        string    `json:"accessToken"`
	RefreshToken       string    `json:"refreshToken"`
	AccessTokenExpiry  time.Time `json:"accessTokenExpiry"`
	RefreshTokenExpiry time.Time `json:"refreshTokenExpiry"`
	SessionID          string    `json:"sessionId"`
	RequestID          string    `json:"requestId"`
	SessionUUID        string    `json:"sessionUuid"`
	AccountUUID        string    `json:"accountUuid"`
}

func (c *Client) State() State {
	return State{
		AccessToken:        c.tokens.accessToken,
		RefreshToken:       c.tokens.refreshToken,
		AccessTokenExpiry:  c.tokens.accessTokenExpiry,
		RefreshTokenExpiry: c.tokens.refreshTokenExpiry,
		SessionID:          c.sessionID,
		RequestID:          c.requestID,
		SessionUUID:        c.sessionUUID,
		AccountUUID:        c.accountUUID,
	}
}

func (c *Client) RestoreState(state State) {
	c.tokens = tokenState{
		accessToken:        state.AccessToken,
		refreshToken:       state.RefreshToken,
		accessTokenExpiry:  state.AccessTokenExpiry,
		refreshTokenExpiry: state.RefreshTokenExpiry,
	}
	c.sessionID = state.SessionID
	c.requestID = state.RequestID
	c.sessionUUID = state.SessionUUID
	c.accountUUID = state.AccountUUID
}

package comdirect

import "time"

// The API invalidates the whole session 20 minutes after the last token
// grant, no matter what lifetime it declares for the access token.
const refreshTokenCeiling = 20*time.Minute - time.Second

type tokenState struct {
	accessToken        string
	refreshToken       string
	accessTokenExpiry  time.Time
	refreshTokenExpiry time.Time
}

func (t *tokenState) isAccessValid(now time.Time) bool {
	return t.accessToken != "" && t.accessTokenExpiry.After(now)
}

func (t *tokenState) isRefreshValid(now time.Time) bool {
	return t.refreshToken != "" && t.refreshTokenExpiry.After(now)
}

// invalidate forces both expiries into the past so the next Login
// performs a full flow instead of trusting cached tokens.
func (t *tokenState) invalidate() {
	now := time.Now()
	t.accessTokenExpiry = now
	t.refreshTokenExpiry = now
}

func (t *tokenState) update(accessToken, refreshToken string, expiresIn int64) {
	now := time.Now()
	t.accessToken = accessToken
	t.refreshToken = refreshToken
	t.accessTokenExpiry = now.Add(time.Duration(expiresIn) * time.Second)
	t.refreshTokenExpiry = now.Add(refreshTokenCeiling)
}

package comdirect

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const bookingDateLayout = "2006-01-02"

// Client holds one comdirect API session: credentials, tokens, the
// identifiers the server hands out during a login flow and the transport
// shared by every request. It is not safe for concurrent use; the
// deployment serializes banking operations behind a single lock.
type Client struct {
	cl      *req.Client
	cfg     Config
	limiter *rate.Limiter

	tokens tokenState

	sessionID   string
	requestID   string
	sessionUUID string
	accountUUID string

	challenge challenge
}

func NewClient(
	cfg Config,
	cl *req.Client,
) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 3 * time.Second
	}

	return &Client{
		cl:      cl,
		cfg:     cfg,
		limiter: rate.NewLimiter(requestsPerSecond, requestsPerSecond),
	}
}

// Login makes sure the session holds a usable access token. It reuses a
// valid token, refreshes when only the refresh token is still alive and
// otherwise runs the full TAN login flow. In non-interactive mode the
// full flow is never started and Login reports false instead.
func (c *Client) Login(ctx context.Context, interactive bool) (bool, error) {
	log := zerolog.Ctx(ctx)
	now := time.Now()

	if c.tokens.isAccessValid(now) {
		log.Debug().Msg("access token is still valid")
		return true, nil
	}

	if c.tokens.isRefreshValid(now) {
		log.Debug().Msg("refresh token is still valid, performing access token refresh")

		if _, err := c.perform(ctx, c.refreshGrantRequest()); err != nil {
			c.tokens.invalidate()
			return false, errors.Wrap(err, "token refresh failed")
		}

		return true, nil
	}

	if !interactive {
		log.Info().Msg("tokens are no longer valid, login with TAN not performed in non-interactive mode")
		return false, nil
	}

	log.Debug().Msg("tokens are no longer valid, starting login flow")

	if err := c.performLoginFlow(ctx); err != nil {
		c.tokens.invalidate()
		return false, errors.Wrap(err, "login flow failed")
	}

	return true, nil
}

func (c *Client) performLoginFlow(ctx context.Context) error {
	sessionID, err := newSessionID()
	if err != nil {
		return err
	}
	requestID, err := newRequestID()
	if err != nil {
		return err
	}
	c.sessionID = sessionID
	c.requestID = requestID

	if _, err = c.perform(ctx, c.passwordGrantRequest()); err != nil {
		return err
	}

	if _, err = c.perform(ctx, c.sessionStatusRequest()); err != nil {
		return err
	}

	if _, err = c.perform(ctx, c.validateSessionRequest()); err != nil {
		return err
	}

	if err = c.waitForChallenge(ctx); err != nil {
		return err
	}

	if c.challenge.status != challengeStatusAuthenticated {
		return errors.Wrapf(ErrAuthentication,
			"TAN challenge failed, status was %s", c.challenge.status)
	}

	if _, err = c.perform(ctx, c.activateSessionRequest()); err != nil {
		return err
	}

	if _, err = c.perform(ctx, c.secondaryGrantRequest()); err != nil {
		return err
	}

	return nil
}

// GetTransactions returns the booked transactions with a valuta date at
// or after earliest. Transactions without a valuta date are always
// included. A false non-interactive login yields an empty result, not an
// error.
func (c *Client) GetTransactions(
	ctx context.Context,
	earliest time.Time,
	interactive bool,
) ([]*Transaction, error) {
	ok, err := c.Login(ctx, interactive)
	if err != nil {
		return nil, err
	}
	if !ok {
		zerolog.Ctx(ctx).Info().Msg("not logged in, stopping transaction retrieval")
		return nil, nil
	}

	transactions, err := c.fetchTransactions(ctx, earliest)
	if err != nil {
		c.tokens.invalidate()
		return nil, errors.Wrap(err, "failed to retrieve account transactions")
	}

	return transactions, nil
}

func (c *Client) fetchTransactions(ctx context.Context, earliest time.Time) ([]*Transaction, error) {
	if _, err := c.perform(ctx, c.accountBalancesRequest()); err != nil {
		return nil, err
	}

	var transactions []*Transaction

	pagingFirst := 0
	latestBookingDate := time.Now()

	for !latestBookingDate.Before(earliest) {
		resp, err := c.perform(ctx, c.accountTransactionsRequest(pagingFirst))
		if err != nil {
			return nil, err
		}

		var page transactionPage
		if err = json.Unmarshal(resp.Bytes(), &page); err != nil {
			return nil, err
		}

		latestBookingDate, err = time.Parse(bookingDateLayout,
			page.Aggregated.BookingDateLatestTransaction)
		if err != nil {
			return nil, errors.Wrap(err, "invalid bookingDateLatestTransaction")
		}

		for _, tx := range page.Values {
			if tx.ValutaDate == "" {
				transactions = append(transactions, tx)
				continue
			}

			valutaDate, valutaErr := time.Parse(bookingDateLayout, tx.ValutaDate)
			if valutaErr != nil {
				return nil, errors.Wrapf(valutaErr, "invalid valutaDate %s", tx.ValutaDate)
			}

			if !valutaDate.Before(earliest) {
				transactions = append(transactions, tx)
			}
		}

		// paging-first is an absolute offset, so each page advances the
		// cursor by the number of items it contained.
		pagingFirst += len(page.Values)

		if len(page.Values) == 0 || pagingFirst >= page.Paging.Matches {
			break
		}
	}

	return transactions, nil
}

// GetPostboxDocuments lists the postbox and fetches the content of every
// document that passes the advertisement/archived/read filters. Filtered
// documents are never fetched.
func (c *Client) GetPostboxDocuments(
	ctx context.Context,
	interactive bool,
	getAds bool,
	getArchived bool,
	getRead bool,
) ([]*Document, error) {
	ok, err := c.Login(ctx, interactive)
	if err != nil {
		return nil, err
	}
	if !ok {
		zerolog.Ctx(ctx).Info().Msg("not logged in, stopping postbox retrieval")
		return nil, nil
	}

	documents, err := c.fetchPostboxDocuments(ctx, getAds, getArchived, getRead)
	if err != nil {
		c.tokens.invalidate()
		return nil, errors.Wrap(err, "failed to retrieve postbox documents")
	}

	return documents, nil
}

func (c *Client) fetchPostboxDocuments(
	ctx context.Context,
	getAds bool,
	getArchived bool,
	getRead bool,
) ([]*Document, error) {
	var documents []*Document

	pagingFirst := 0
	matches := 999 // unknown until the first page arrives

	for pagingFirst < matches-1 {
		resp, err := c.perform(ctx, c.postboxListRequest(pagingFirst))
		if err != nil {
			return nil, err
		}

		var page documentPage
		if err = json.Unmarshal(resp.Bytes(), &page); err != nil {
			return nil, err
		}

		if len(page.Values) == 0 {
			break
		}

		// The postbox endpoint repeats the last item of a page as the
		// first item of the next one, hence the len-1 advance.
		pagingFirst += len(page.Values) - 1
		matches = page.Paging.Matches

		for _, document := range page.Values {
			filtered := document.Advertisement && !getAds
			filtered = filtered || (document.DocumentMetaData.Archived && !getArchived)
			filtered = filtered || (document.DocumentMetaData.AlreadyRead && !getRead)
			if filtered {
				continue
			}

			contentResp, contentErr := c.perform(ctx,
				c.postboxDocumentContentRequest(document.DocumentID, document.MimeType))
			if contentErr != nil {
				return nil, contentErr
			}

			document.Content = contentResp.Bytes()
			documents = append(documents, document)
		}
	}

	return documents, nil
}

func newSessionID() (string, error) {
	b := make([]byte, 15)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

func newRequestID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return fmt.Sprintf("%09d", binary.BigEndian.Uint64(b)%1_000_000_000), nil
}

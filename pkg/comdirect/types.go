package comdirect

import (
	"encoding/json"
	"time"
)

const DefaultBaseURL = "https://api.comdirect.de"

type Credentials struct {
	ClientID      string
	ClientSecret  string
	Zugangsnummer string
	Pin           string
}

type Config struct {
	Credentials Credentials

	// BaseURL defaults to DefaultBaseURL.
	BaseURL string

	// PollInterval is the sleep between TAN challenge status polls.
	// Defaults to 3 seconds.
	PollInterval time.Duration

	// MaxPollAttempts bounds the challenge poll loop. The default of 0
	// polls until the challenge leaves the PENDING state, matching the
	// behavior of the API documentation examples.
	MaxPollAttempts int
}

type AmountValue struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// Transaction is one booked account transaction. Raw carries every field
// the server returned so callers can map properties the typed fields do
// not cover.
type Transaction struct {
	Reference      string      `json:"reference"`
	BookingDate    string      `json:"bookingDate"`
	ValutaDate     string      `json:"valutaDate"`
	Amount         AmountValue `json:"amount"`
	RemittanceInfo string      `json:"remittanceInfo"`

	Raw map[string]interface{} `json:"-"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &p.Raw); err != nil {
		return err
	}

	*t = Transaction(p)
	return nil
}

type DocumentMetaData struct {
	Archived          bool `json:"archived"`
	AlreadyRead       bool `json:"alreadyRead"`
	PredocumentExists bool `json:"predocumentExists"`
}

// Document is one postbox entry. Content is populated by a follow-up
// fetch and may be binary.
type Document struct {
	DocumentID       string           `json:"documentId"`
	Name             string           `json:"name"`
	DateCreation     string           `json:"dateCreation"`
	MimeType         string           `json:"mimeType"`
	Advertisement    bool             `json:"advertisement"`
	DocumentMetaData DocumentMetaData `json:"documentMetaData"`

	Raw     map[string]interface{} `json:"-"`
	Content []byte                 `json:"-"`
}

func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &p.Raw); err != nil {
		return err
	}

	*d = Document(p)
	return nil
}

type paging struct {
	Index   int `json:"index"`
	Matches int `json:"matches"`
}

type transactionPage struct {
	Paging     paging         `json:"paging"`
	Aggregated txAggregated   `json:"aggregated"`
	Values     []*Transaction `json:"values"`
}

type txAggregated struct {
	BookingDateLatestTransaction string `json:"bookingDateLatestTransaction"`
}

type documentPage struct {
	Paging paging      `json:"paging"`
	Values []*Document `json:"values"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type sessionStatus struct {
	Identifier       string `json:"identifier"`
	SessionTanActive bool   `json:"sessionTanActive"`
	Activated2FA     bool   `json:"activated2FA"`
}

type accountBalances struct {
	Values []struct {
		AccountID string `json:"accountId"`
	} `json:"values"`
}

package reconciler

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mayan-tools/mayan-comdirect-importer/pkg/comdirect"
	"github.com/mayan-tools/mayan-comdirect-importer/pkg/config"
	"github.com/mayan-tools/mayan-comdirect-importer/pkg/mayan"
)

type Config struct {
	Bank     Bank
	Docs     DocumentStore
	Sessions SessionStore

	Rules *config.Rules

	// PostboxDocumentType is the label of the Mayan document type
	// imported postbox documents are filed under.
	PostboxDocumentType string
}

// Reconciler glues the banking session and the document store together:
// it matches invoice documents against transactions, writes the matched
// transaction's fields back as metadata and tags, and imports postbox
// documents.
type Reconciler struct {
	cfg *Config
}

func NewReconciler(
	cfg *Config,
) *Reconciler {
	return &Reconciler{
		cfg: cfg,
	}
}

type searchCriteria struct {
	amount        decimal.Decimal
	invoiceNumber string
	invoiceDate   time.Time
}

// ProcessDocument looks up the document's invoice metadata, searches the
// transactions since the invoice date for one with the same amount whose
// remittance info mentions the invoice number, and on a match writes the
// mapped metadata and the configured tags.
func (r *Reconciler) ProcessDocument(
	ctx context.Context,
	documentID string,
	interactive bool,
) error {
	defer r.saveState(ctx)

	log := zerolog.Ctx(ctx)

	if _, err := strconv.Atoi(documentID); err != nil {
		return errors.Newf("document value %s must be numeric", documentID)
	}

	document, err := r.cfg.Docs.GetDocument(ctx, documentID)
	if err != nil {
		return errors.Wrap(err, "could not retrieve document")
	}

	metadata, err := r.cfg.Docs.DocumentMetadata(ctx, document)
	if err != nil {
		return err
	}

	byName := lo.SliceToMap(metadata, func(item *mayan.DocumentMetadata) (string, *mayan.DocumentMetadata) {
		return item.MetadataType.Name, item
	})

	criteria, err := r.buildCriteria(byName)
	if err != nil {
		return err
	}

	transactions, err := r.cfg.Bank.GetTransactions(ctx, criteria.invoiceDate, interactive)
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		log.Info().Str("documentId", documentID).Msg("no transactions to match against")
		return nil
	}

	transaction := r.findMatch(transactions, criteria)
	if transaction == nil {
		log.Info().Str("documentId", documentID).Msg("no matching transaction found")
		return nil
	}

	log.Info().
		Str("documentId", documentID).
		Str("reference", transaction.Reference).
		Msg("found transaction for document")

	return r.applyMatch(ctx, document, byName, transaction)
}

func (r *Reconciler) buildCriteria(byName map[string]*mayan.DocumentMetadata) (*searchCriteria, error) {
	matching := r.cfg.Rules.Matching

	amountMeta, ok := byName[matching.InvoiceAmount.MetadataType]
	if !ok {
		return nil, errors.Newf("document has no %s metadata", matching.InvoiceAmount.MetadataType)
	}

	amount, err := parseLocalizedAmount(amountMeta.Value, matching.InvoiceAmount.Locale)
	if err != nil {
		return nil, err
	}

	numberMeta, ok := byName[matching.InvoiceNumber.MetadataType]
	if !ok || numberMeta.Value == "" {
		return nil, errors.Newf("document has no %s metadata", matching.InvoiceNumber.MetadataType)
	}

	dateMeta, ok := byName[matching.InvoiceDate.MetadataType]
	if !ok {
		return nil, errors.Newf("document has no %s metadata", matching.InvoiceDate.MetadataType)
	}

	invoiceDate, err := time.Parse(matching.InvoiceDate.DateFormat, dateMeta.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse invoice date %q", dateMeta.Value)
	}

	return &searchCriteria{
		amount:        amount,
		invoiceNumber: numberMeta.Value,
		invoiceDate:   invoiceDate,
	}, nil
}

func (r *Reconciler) findMatch(
	transactions []*comdirect.Transaction,
	criteria *searchCriteria,
) *comdirect.Transaction {
	for _, transaction := range transactions {
		value := transaction.Amount.Value
		if r.cfg.Rules.Matching.InvoiceAmount.Unsigned {
			value = strings.ReplaceAll(value, "-", "")
		}

		amount, err := decimal.NewFromString(value)
		if err != nil {
			continue
		}

		if amount.Equal(criteria.amount) &&
			strings.Contains(transaction.RemittanceInfo, criteria.invoiceNumber) {
			return transaction
		}
	}

	return nil
}

func (r *Reconciler) applyMatch(
	ctx context.Context,
	document *mayan.Document,
	byName map[string]*mayan.DocumentMetadata,
	transaction *comdirect.Transaction,
) error {
	log := zerolog.Ctx(ctx)

	values := map[string]string{}
	for property, metadataName := range r.cfg.Rules.Mapping {
		raw, ok := transaction.Raw[property]
		if !ok {
			log.Error().Str("property", property).Msg("property not found in transaction")
			continue
		}

		values[metadataName] = stringifyProperty(raw)
	}

	for _, linked := range r.cfg.Docs.DocumentTypeMetadataTypes(document.DocumentType.Label) {
		name := linked.MetadataType.Name

		value, ok := values[name]
		if !ok {
			continue
		}

		if existing, exists := byName[name]; exists {
			if err := r.cfg.Docs.UpdateMetadata(ctx, document, existing.ID, value); err != nil {
				return err
			}
		} else {
			log.Info().
				Str("metadata", name).
				Str("value", value).
				Str("document", document.URL).
				Msg("adding metadata")

			if err := r.cfg.Docs.CreateMetadata(ctx, document, linked.MetadataType.ID, value); err != nil {
				return err
			}
		}
	}

	for _, label := range r.cfg.Rules.Tagging.Tags {
		tag, ok := r.cfg.Docs.TagByLabel(label)
		if !ok {
			log.Info().Str("tag", label).Msg("tag not defined in system")
			continue
		}

		if err := r.cfg.Docs.AttachTag(ctx, document, tag.ID); err != nil {
			return err
		}
	}

	return nil
}

// ImportPostbox fetches the bank's postbox documents and files each one
// in the document store under the configured document type.
func (r *Reconciler) ImportPostbox(
	ctx context.Context,
	interactive bool,
	getAds bool,
	getArchived bool,
	getRead bool,
) error {
	defer r.saveState(ctx)

	documentType, ok := r.cfg.Docs.DocumentTypeByLabel(r.cfg.PostboxDocumentType)
	if !ok {
		return errors.Newf("document type %s not defined in system", r.cfg.PostboxDocumentType)
	}

	documents, err := r.cfg.Bank.GetPostboxDocuments(ctx, interactive, getAds, getArchived, getRead)
	if err != nil {
		return err
	}

	for _, document := range documents {
		if len(document.Content) == 0 {
			continue
		}

		err = r.cfg.Docs.UploadDocument(ctx, documentType.ID,
			uploadLabel(document), document.Content)
		if err != nil {
			return errors.Wrapf(err, "failed to upload document %s", document.DocumentID)
		}
	}

	zerolog.Ctx(ctx).Info().Int("count", len(documents)).Msg("imported postbox documents")

	return nil
}

// Keepalive refreshes the cached session while the refresh token is
// still alive, so scheduled runs keep a TAN-free window open.
func (r *Reconciler) Keepalive(ctx context.Context) error {
	defer r.saveState(ctx)

	_, err := r.cfg.Bank.Login(ctx, false)
	return err
}

// saveState persists the session even after failures: a failed sequence
// invalidates the tokens and the cache must reflect that.
func (r *Reconciler) saveState(ctx context.Context) {
	if err := r.cfg.Sessions.Save(ctx, r.cfg.Bank.State()); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to cache session state")
	}
}

func stringifyProperty(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		encoded, _ := json.Marshal(v)
		return string(encoded)
	}
}

func uploadLabel(document *comdirect.Document) string {
	extensions := map[string]string{
		"application/pdf": ".pdf",
		"text/html":       ".html",
	}

	extension := extensions[document.MimeType]
	if extension == "" || strings.HasSuffix(document.Name, extension) {
		return document.Name
	}

	return document.Name + extension
}

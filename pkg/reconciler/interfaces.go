package reconciler

import (
	"context"
	"time"

	"github.com/mayan-tools/mayan-comdirect-importer/pkg/comdirect"
	"github.com/mayan-tools/mayan-comdirect-importer/pkg/mayan"
)

//go:generate mockgen -destination interfaces_mocks_test.go -package reconciler_test -source=interfaces.go

type Bank interface {
	Login(ctx context.Context, interactive bool) (bool, error)
	GetTransactions(
		ctx context.Context,
		earliest time.Time,
		interactive bool,
	) ([]*comdirect.Transaction, error)
	GetPostboxDocuments(
		ctx context.Context,
		interactive bool,
		getAds bool,
		getArchived bool,
		getRead bool,
	) ([]*comdirect.Document, error)
	State() comdirect.State
}

type DocumentStore interface {
	GetDocument(ctx context.Context, id string) (*mayan.Document, error)
	DocumentMetadata(ctx context.Context, document *mayan.Document) ([]*mayan.DocumentMetadata, error)
	DocumentTypeMetadataTypes(label string) []*mayan.DocumentTypeMetadataType
	DocumentTypeByLabel(label string) (*mayan.DocumentType, bool)
	TagByLabel(label string) (*mayan.Tag, bool)
	CreateMetadata(ctx context.Context, document *mayan.Document, metadataTypeID int, value string) error
	UpdateMetadata(ctx context.Context, document *mayan.Document, metadataID int, value string) error
	AttachTag(ctx context.Context, document *mayan.Document, tagID int) error
	UploadDocument(ctx context.Context, documentTypeID int, label string, content []byte) error
}

type SessionStore interface {
	Save(ctx context.Context, state comdirect.State) error
}

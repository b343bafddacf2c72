package mayan

type MetadataTypeRef struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

type DocumentTypeRef struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

type Document struct {
	ID           int             `json:"id"`
	Label        string          `json:"label"`
	URL          string          `json:"url"`
	DocumentType DocumentTypeRef `json:"document_type"`
}

// DocumentMetadata is one metadata value attached to a document.
type DocumentMetadata struct {
	ID           int             `json:"id"`
	URL          string          `json:"url"`
	Value        string          `json:"value"`
	MetadataType MetadataTypeRef `json:"metadata_type"`
}

// DocumentTypeMetadataType links a metadata type to a document type,
// declaring which metadata a document of that type may carry.
type DocumentTypeMetadataType struct {
	ID           int             `json:"id"`
	Required     bool            `json:"required"`
	MetadataType MetadataTypeRef `json:"metadata_type"`
}

type DocumentType struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`

	MetadataTypes []*DocumentTypeMetadataType `json:"-"`
}

type Tag struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// page is the list envelope every Mayan collection endpoint returns,
// with cursor pagination via the next link.
type page[T any] struct {
	Count   int    `json:"count"`
	Next    string `json:"next"`
	Results []T    `json:"results"`
}

package mayan

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
)

// Mayan is a client for the Mayan EDMS REST API. Load caches the
// document types, their metadata types and the tags once per login; the
// caches are read-only afterwards.
type Mayan struct {
	cl      *req.Client
	baseURL string
	token   string

	documentTypes map[string]*DocumentType
	tags          map[string]*Tag
}

func NewMayan(
	baseURL string,
	cl *req.Client,
) *Mayan {
	return &Mayan{
		cl:      cl,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// EP resolves a relative endpoint path against the API base URL,
// following the trailing-slash convention of the Mayan API.
func (m *Mayan) EP(path string) string {
	return m.baseURL + "/api/v4/" + strings.Trim(path, "/") + "/"
}

func joinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.Trim(path, "/") + "/"
}

func (m *Mayan) r(ctx context.Context) *req.Request {
	httpReq := m.cl.R().SetContext(ctx)
	if m.token != "" {
		httpReq.SetHeader("Authorization", "Token "+m.token)
	}

	return httpReq
}

func (m *Mayan) Login(ctx context.Context, username, password string) error {
	var result struct {
		Token string `json:"token"`
	}

	resp, err := m.cl.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"username": username,
			"password": password,
		}).
		SetSuccessResult(&result).
		Post(m.EP("auth/token/obtain") + "?format=json")
	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return errors.Newf("login failed: %v and message %v", resp.StatusCode, resp.String())
	}

	if result.Token == "" {
		return errors.New("login response contained no token")
	}

	m.token = result.Token
	return nil
}

// Load caches document types (with their metadata types) and tags.
func (m *Mayan) Load(ctx context.Context) error {
	documentTypes, err := fetchAll[*DocumentType](ctx, m, m.EP("document_types"))
	if err != nil {
		return err
	}

	m.documentTypes = map[string]*DocumentType{}
	for _, documentType := range documentTypes {
		documentType.MetadataTypes, err = fetchAll[*DocumentTypeMetadataType](
			ctx, m, joinURL(documentType.URL, "metadata_types"))
		if err != nil {
			return err
		}

		m.documentTypes[documentType.Label] = documentType
	}

	tags, err := fetchAll[*Tag](ctx, m, m.EP("tags"))
	if err != nil {
		return err
	}

	m.tags = map[string]*Tag{}
	for _, tag := range tags {
		m.tags[tag.Label] = tag
	}

	return nil
}

func (m *Mayan) DocumentTypeByLabel(label string) (*DocumentType, bool) {
	documentType, ok := m.documentTypes[label]
	return documentType, ok
}

// DocumentTypeMetadataTypes lists the metadata types documents of the
// labelled type may carry, or nil for an unknown label.
func (m *Mayan) DocumentTypeMetadataTypes(label string) []*DocumentTypeMetadataType {
	documentType, ok := m.documentTypes[label]
	if !ok {
		return nil
	}

	return documentType.MetadataTypes
}

func (m *Mayan) TagByLabel(label string) (*Tag, bool) {
	tag, ok := m.tags[label]
	return tag, ok
}

func (m *Mayan) GetDocument(ctx context.Context, id string) (*Document, error) {
	var document Document

	resp, err := m.r(ctx).
		SetSuccessResult(&document).
		Get(m.EP("documents/" + id))
	if err != nil {
		return nil, err
	}

	if resp.IsErrorState() {
		return nil, errors.Newf("got error response: %s", resp.String())
	}

	return &document, nil
}

func (m *Mayan) DocumentMetadata(ctx context.Context, document *Document) ([]*DocumentMetadata, error) {
	return fetchAll[*DocumentMetadata](ctx, m, joinURL(document.URL, "metadata"))
}

func (m *Mayan) CreateMetadata(
	ctx context.Context,
	document *Document,
	metadataTypeID int,
	value string,
) error {
	resp, err := m.r(ctx).
		SetBody(map[string]interface{}{
			"metadata_type_pk": metadataTypeID,
			"value":            value,
		}).
		Post(joinURL(document.URL, "metadata"))
	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return errors.Newf("got error response: %s", resp.String())
	}

	return nil
}

func (m *Mayan) UpdateMetadata(
	ctx context.Context,
	document *Document,
	metadataID int,
	value string,
) error {
	resp, err := m.r(ctx).
		SetBody(map[string]interface{}{
			"value": value,
		}).
		Put(joinURL(document.URL, fmt.Sprintf("metadata/%d", metadataID)))
	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return errors.Newf("got error response: %s", resp.String())
	}

	return nil
}

func (m *Mayan) AttachTag(ctx context.Context, document *Document, tagID int) error {
	resp, err := m.r(ctx).
		SetBody(map[string]interface{}{
			"tag_pk": tagID,
		}).
		Post(joinURL(document.URL, "tags"))
	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return errors.Newf("got error response: %s", resp.String())
	}

	return nil
}

// UploadDocument creates a new document of the given type from an
// in-memory file.
func (m *Mayan) UploadDocument(
	ctx context.Context,
	documentTypeID int,
	label string,
	content []byte,
) error {
	resp, err := m.r(ctx).
		SetFormData(map[string]string{
			"document_type_id": fmt.Sprint(documentTypeID),
			"label":            label,
		}).
		SetFileBytes("file", label, content).
		Post(m.EP("documents/upload"))
	if err != nil {
		return err
	}

	if resp.IsErrorState() {
		return errors.Newf("got error response: %s", resp.String())
	}

	return nil
}

func fetchAll[T any](ctx context.Context, m *Mayan, url string) ([]T, error) {
	var results []T

	next := url
	for next != "" {
		var current page[T]

		resp, err := m.r(ctx).
			SetSuccessResult(&current).
			Get(next)
		if err != nil {
			return nil, err
		}

		if resp.IsErrorState() {
			return nil, errors.Newf("got error response: %s", resp.String())
		}

		results = append(results, current.Results...)
		next = current.Next
	}

	return results, nil
}

// Package nocodb wraps the NocoDB v2 REST API, the system of record for
// startup and partner records.
package nocodb

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"startup-directory-api/config"

	"github.com/google/uuid"
)

// HTTPClient is the transport shared by all NocoDB clients. Tests swap
// its transport to stub the provider.
var HTTPClient = &http.Client{Timeout: 30 * time.Second}

// Client talks to one NocoDB instance.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient constructs a Client for the given instance and token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		http:    HTTPClient,
	}
}

// FromEnv builds a client from environment configuration. Fails closed
// before any network call when the token is unset.
func FromEnv() (*Client, error) {
	if config.NocoDBToken() == "" {
		return nil, errors.New("NocoDB credentials are not configured")
	}
	return NewClient(config.NocoDBBaseURL(), config.NocoDBToken()), nil
}

// BaseURL returns the instance URL, used to build attachment links.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xc-token", c.token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("nocodb %s %s failed with status %d: %s", method, path, resp.StatusCode, truncate(string(data), 200))
	}

	return data, nil
}

func recordsPath(tableID string) string {
	return "/api/v2/tables/" + tableID + "/records"
}

// List returns up to limit records from a table. No pagination: callers
// rely on the directory staying well under the limit.
func (c *Client) List(ctx context.Context, tableID string, limit int) ([]map[string]any, error) {
	query := url.Values{}
	query.Set("limit", fmt.Sprintf("%d", limit))

	data, err := c.do(ctx, http.MethodGet, recordsPath(tableID), query, nil, "")
	if err != nil {
		return nil, err
	}

	var payload struct {
		List []map[string]any `json:"list"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("nocodb list: decoding response: %w", err)
	}
	return payload.List, nil
}

// Get returns one record by its provider id.
func (c *Client) Get(ctx context.Context, tableID, recordID string) (map[string]any, error) {
	data, err := c.do(ctx, http.MethodGet, recordsPath(tableID)+"/"+url.PathEscape(recordID), nil, nil, "")
	if err != nil {
		return nil, err
	}

	var rec map[string]any
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("nocodb get: decoding response: %w", err)
	}
	return rec, nil
}

// Create inserts a record and returns the provider-assigned id.
func (c *Client) Create(ctx context.Context, tableID string, fields map[string]any) (int, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return 0, err
	}

	data, err := c.do(ctx, http.MethodPost, recordsPath(tableID), nil, bytes.NewReader(body), "application/json")
	if err != nil {
		return 0, err
	}

	var created struct {
		ID float64 `json:"Id"`
	}
	if err := json.Unmarshal(data, &created); err != nil {
		return 0, fmt.Errorf("nocodb create: decoding response: %w", err)
	}
	return int(created.ID), nil
}

// Update patches fields of an existing record.
func (c *Client) Update(ctx context.Context, tableID string, recordID int, fields map[string]any) error {
	payload := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["Id"] = recordID

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodPatch, recordsPath(tableID), nil, bytes.NewReader(body), "application/json")
	return err
}

// Delete removes a record by id. Uploaded files are not cleaned up.
func (c *Client) Delete(ctx context.Context, tableID string, recordID int) error {
	body, err := json.Marshal(map[string]any{"Id": recordID})
	if err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodDelete, recordsPath(tableID), nil, bytes.NewReader(body), "application/json")
	return err
}

// Attachment mirrors NocoDB's file attachment descriptor.
type Attachment struct {
	Title      string `json:"title,omitempty"`
	MimeType   string `json:"mimetype,omitempty"`
	Size       int64  `json:"size,omitempty"`
	SignedPath string `json:"signedPath,omitempty"`
	Path       string `json:"path,omitempty"`
}

// Upload stores raw file bytes in NocoDB storage and returns the
// attachment descriptors to embed in a record field. NocoDB sniffs the
// media type server-side.
func (c *Client) Upload(ctx context.Context, filename string, data []byte) ([]Attachment, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/v2/storage/upload", nil, &buf, w.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var attachments []Attachment
	if err := json.Unmarshal(resp, &attachments); err != nil {
		return nil, fmt.Errorf("nocodb upload: decoding response: %w", err)
	}
	if len(attachments) == 0 {
		return nil, errors.New("nocodb upload: empty attachment response")
	}
	return attachments, nil
}

// UploadBase64 decodes a data URI and stores it in NocoDB storage. The
// stored filename is uuid-derived since data URIs carry none.
func (c *Client) UploadBase64(ctx context.Context, dataURI string) ([]Attachment, error) {
	mimeType, data, err := DecodeDataURI(dataURI)
	if err != nil {
		return nil, err
	}

	ext := "bin"
	if i := strings.Index(mimeType, "/"); i >= 0 && i < len(mimeType)-1 {
		ext = mimeType[i+1:]
	}
	filename := uuid.NewString() + "." + ext

	return c.Upload(ctx, filename, data)
}

// IsDataURI reports whether an image field carries a fresh base64 upload
// rather than an already-hosted URL.
func IsDataURI(v string) bool {
	return strings.HasPrefix(v, "data:")
}

// DecodeDataURI splits a "data:<mime>;base64,<payload>" string into its
// media type and decoded bytes.
func DecodeDataURI(dataURI string) (string, []byte, error) {
	if !IsDataURI(dataURI) {
		return "", nil, errors.New("not a data URI")
	}

	meta, payload, ok := strings.Cut(dataURI[len("data:"):], ",")
	if !ok {
		return "", nil, errors.New("malformed data URI")
	}

	mimeType := meta
	if i := strings.Index(meta, ";"); i >= 0 {
		mimeType = meta[:i]
	}
	if !strings.Contains(meta, "base64") {
		return "", nil, errors.New("data URI is not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding base64 payload: %w", err)
	}
	return mimeType, data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// Package formclient implements the contact form submission pipeline used by
// site frontends and by the CLI smoke test: it holds the form fields, guards
// against duplicate in-flight submissions, and maps the server's response
// onto a small UI state machine.
package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"sync"
	"time"
)

// Status is the submission state shown to the user.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// User-facing failure messages. A transport-level failure gets its own
// message so the user knows the server never saw the submission.
const (
	NetworkErrorMessage = "Could not reach the server. Check your connection and try again."
	GenericErrorMessage = "Something went wrong on our side. Please try again later."
)

// File is an optional attachment selected by the user.
type File struct {
	Name    string
	Content []byte
}

// Fields holds the text inputs of the contact form.
type Fields struct {
	Name     string
	Email    string
	Phone    string
	City     string
	Timeline string
	Service  string
	Message  string
}

// Form is one contact form instance. All methods are safe for concurrent
// use; at most one submission is in flight at any time.
type Form struct {
	endpoint   string
	httpClient *http.Client

	mu       sync.Mutex
	inFlight bool
	fields   Fields
	file     *File
	status   Status
	errorMsg string
}

// Option is a function that configures the form.
type Option func(*Form)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Form) {
		f.httpClient = client
	}
}

// NewForm creates a form that submits to the given endpoint URL.
func NewForm(endpoint string, opts ...Option) *Form {
	f := &Form{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		status: StatusIdle,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fill replaces the form fields and selected file. It is a no-op while a
// submission is in flight.
func (f *Form) Fill(fields Fields, file *File) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight {
		return
	}
	f.fields = fields
	f.file = file
}

// Status returns the current submission status.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// ErrorMessage returns the user-facing message of the last failed
// submission, or "" if the form is not in the error state.
func (f *Form) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status != StatusError {
		return ""
	}
	return f.errorMsg
}

// Fields returns a copy of the current form fields.
func (f *Form) CurrentFields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Submit sends the form. It returns false without any network activity when
// another submission is already in flight or a required field is empty; the
// required-field check mirrors the form inputs, which refuse to submit when
// blank. Otherwise it blocks until the request settles and returns true.
//
// On success the fields and file are cleared. There is no automatic retry
// and no client-side timeout beyond the HTTP client's own.
func (f *Form) Submit(ctx context.Context) bool {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return false
	}
	fields := f.fields
	file := f.file
	if fields.Name == "" || fields.Email == "" || fields.Message == "" {
		f.mu.Unlock()
		return false
	}
	f.inFlight = true
	f.status = StatusSubmitting
	f.errorMsg = ""
	f.mu.Unlock()

	status, errorMsg := f.post(ctx, fields, file)

	f.mu.Lock()
	f.inFlight = false
	f.status = status
	f.errorMsg = errorMsg
	if status == StatusSuccess {
		f.fields = Fields{}
		f.file = nil
	}
	f.mu.Unlock()

	return true
}

// post performs the HTTP exchange and maps the outcome to a terminal status.
func (f *Form) post(ctx context.Context, fields Fields, file *File) (Status, string) {
	body, contentType, err := encodeMultipart(fields, file)
	if err != nil {
		return StatusError, GenericErrorMessage
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, body)
	if err != nil {
		return StatusError, GenericErrorMessage
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		// The request never produced a response: network-level failure.
		return StatusError, NetworkErrorMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return StatusSuccess, ""
	}

	var serverErr struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&serverErr); err != nil || serverErr.Error == "" {
		return StatusError, GenericErrorMessage
	}
	return StatusError, serverErr.Error
}

// encodeMultipart builds the multipart body: one part per text field, plus
// the file part only when a file was chosen.
func encodeMultipart(fields Fields, file *File) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	textFields := map[string]string{
		"name":     fields.Name,
		"email":    fields.Email,
		"phone":    fields.Phone,
		"city":     fields.City,
		"timeline": fields.Timeline,
		"service":  fields.Service,
		"message":  fields.Message,
	}
	for name, value := range textFields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	if file != nil {
		part, err := writer.CreateFormFile("file", file.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, "", fmt.Errorf("failed to write file part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-weave/pkg/interfaces"
)

func testPayload() interfaces.SyncPayload {
	return interfaces.SyncPayload{
		Title:       "Test Post",
		Slug:        "test-post",
		Content:     `<div class="card">content</div>`,
		Description: "summary",
		Tags:        []string{"go", "weave"},
	}
}

func TestHTTPSenderPostsPayload(t *testing.T) {
	var (
		gotMethod  string
		gotPayload interfaces.SyncPayload
		gotHeader  http.Header
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	sender, err := NewHTTPSender(HTTPSenderConfig{
		URL:     server.URL,
		Headers: map[string]string{"Authorization": "Bearer token"},
	})
	if err != nil {
		t.Fatalf("NewHTTPSender: %v", err)
	}

	if err := sender.Send(context.Background(), testPayload()); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %s", gotMethod)
	}
	if gotHeader.Get("Content-Type") != "application/json" {
		t.Fatalf("missing content type header: %v", gotHeader)
	}
	if gotHeader.Get("Authorization") != "Bearer token" {
		t.Fatalf("missing custom header: %v", gotHeader)
	}
	if gotPayload.Slug != "test-post" || gotPayload.Title != "Test Post" {
		t.Fatalf("payload mismatch: %#v", gotPayload)
	}
	if len(gotPayload.Tags) != 2 {
		t.Fatalf("tags not delivered: %#v", gotPayload.Tags)
	}
}

func TestHTTPSenderPutMethod(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
	}))
	defer server.Close()

	sender, err := NewHTTPSender(HTTPSenderConfig{URL: server.URL, Method: "put"})
	if err != nil {
		t.Fatalf("NewHTTPSender: %v", err)
	}
	if err := sender.Send(context.Background(), testPayload()); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Fatalf("expected PUT, got %s", gotMethod)
	}
}

func TestHTTPSenderRejectsUnsupportedMethod(t *testing.T) {
	_, err := NewHTTPSender(HTTPSenderConfig{URL: "http://localhost", Method: "DELETE"})
	if !errors.Is(err, ErrMethodUnsupported) {
		t.Fatalf("expected ErrMethodUnsupported, got %v", err)
	}
}

func TestHTTPSenderRequiresURL(t *testing.T) {
	_, err := NewHTTPSender(HTTPSenderConfig{})
	if !errors.Is(err, ErrURLRequired) {
		t.Fatalf("expected ErrURLRequired, got %v", err)
	}
}

func TestHTTPSenderStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer server.Close()

	sender, err := NewHTTPSender(HTTPSenderConfig{URL: server.URL})
	if err != nil {
		t.Fatalf("NewHTTPSender: %v", err)
	}

	err = sender.Send(context.Background(), testPayload())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Fatalf("unexpected status code %d", statusErr.StatusCode)
	}
}

type stubSender struct {
	payloads []interfaces.SyncPayload
	err      error
}

func (s *stubSender) Send(_ context.Context, payload interfaces.SyncPayload) error {
	s.payloads = append(s.payloads, payload)
	return s.err
}

func TestDispatcherBuildsPayload(t *testing.T) {
	sender := &stubSender{}
	dispatcher, err := NewDispatcher(sender, nil)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}

	doc := interfaces.RenderedDocument{
		Slug: "test-post",
		Metadata: interfaces.Metadata{
			Title:       "Test Post",
			Description: "summary",
			Tags:        []string{"go"},
		},
		HTML:        `<div class="card">content</div>`,
		ContentHash: "abc",
	}
	if err := dispatcher.Dispatch(context.Background(), doc); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	if len(sender.payloads) != 1 {
		t.Fatalf("expected one dispatch, got %d", len(sender.payloads))
	}
	payload := sender.payloads[0]
	if payload.Slug != "test-post" || payload.Content != doc.HTML || payload.Title != "Test Post" {
		t.Fatalf("payload mismatch: %#v", payload)
	}
}

func TestDispatcherSendsEmptyTagArray(t *testing.T) {
	sender := &stubSender{}
	dispatcher, err := NewDispatcher(sender, nil)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}

	doc := interfaces.RenderedDocument{
		Slug:     "untagged",
		Metadata: interfaces.Metadata{Title: "Untagged"},
		HTML:     "<p>body</p>",
	}
	if err := dispatcher.Dispatch(context.Background(), doc); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	payload := sender.payloads[0]
	if payload.Tags == nil {
		t.Fatalf("expected empty tag slice in payload, got nil")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if !bytes.Contains(data, []byte(`"tags":[]`)) {
		t.Fatalf("expected tags to serialize as an empty array, got %s", data)
	}
}

func TestDispatcherPropagatesSendError(t *testing.T) {
	wantErr := errors.New("boom")
	dispatcher, err := NewDispatcher(&stubSender{err: wantErr}, nil)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}

	err = dispatcher.Dispatch(context.Background(), interfaces.RenderedDocument{Slug: "x"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected send error, got %v", err)
	}
}

func TestDispatcherRequiresSender(t *testing.T) {
	if _, err := NewDispatcher(nil, nil); !errors.Is(err, ErrSenderRequired) {
		t.Fatalf("expected ErrSenderRequired, got %v", err)
	}
}

package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/yungbote/recordvault-backend/internal/pkg/logger"
	"github.com/yungbote/recordvault-backend/internal/platform/apierr"
)

func newTestClient() *client {
	return &client{
		log:        &logger.Logger{SugaredLogger: zap.NewNop().Sugar()},
		httpClient: &http.Client{},
	}
}

func TestFindRecordDecodesFirstMatch(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": "abcd", "volumeInfo": {"title": "test name", "description": "test description", "pageCount": 100}},
				{"id": "wxyz", "volumeInfo": {"title": "other", "pageCount": 1}}
			]
		}`))
	}))
	defer srv.Close()

	rec, err := newTestClient().FindRecord(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("find record: %v", err)
	}
	if rec.ID != "abcd" || rec.Name != "test name" || rec.Description != "test description" || rec.PageCount != 100 {
		t.Fatalf("unexpected record: got=%+v", *rec)
	}
}

func TestFindRecordNoMatchesIsNotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient().FindRecord(context.Background(), srv.URL)
	if !apierr.HasCode(err, apierr.CodeNotFound) {
		t.Fatalf("empty result set: got=%v want code=%s", err, apierr.CodeNotFound)
	}
}

func TestFindRecordMalformedBodyIsDecodeFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [`))
	}))
	defer srv.Close()

	_, err := newTestClient().FindRecord(context.Background(), srv.URL)
	if !apierr.HasCode(err, apierr.CodeDecode) {
		t.Fatalf("malformed body: got=%v want code=%s", err, apierr.CodeDecode)
	}
}

func TestFindRecordUpstreamStatusIsUpstreamFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient().FindRecord(context.Background(), srv.URL)
	if !apierr.HasCode(err, apierr.CodeUpstream) {
		t.Fatalf("upstream 500: got=%v want code=%s", err, apierr.CodeUpstream)
	}
}

func TestFindRecordNetworkErrorIsUpstreamFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient().FindRecord(context.Background(), url)
	if !apierr.HasCode(err, apierr.CodeUpstream) {
		t.Fatalf("unreachable upstream: got=%v want code=%s", err, apierr.CodeUpstream)
	}
}

func TestFetchJSONGeneric(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count": 7}`))
	}))
	defer srv.Close()

	type counter struct {
		Count int `json:"count"`
	}
	got, err := FetchJSON[counter](context.Background(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("fetch json: %v", err)
	}
	if got.Count != 7 {
		t.Fatalf("unexpected decode: got=%d want=7", got.Count)
	}
}

package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFromClassifiedErrorPassesThrough(t *testing.T) {
	t.Parallel()
	src := NotFound(fmt.Errorf("record %q does not exist", "abcd"))
	wrapped := fmt.Errorf("get: %w", src)

	got := From(wrapped)
	if got != src {
		t.Fatalf("From re-wrapped a classified error: got=%+v want=%+v", got, src)
	}
	if got.Status != http.StatusNotFound || got.Code != CodeNotFound {
		t.Fatalf("unexpected classification: status=%d code=%q", got.Status, got.Code)
	}
}

func TestFromUnclassifiedErrorIsInternal(t *testing.T) {
	t.Parallel()
	got := From(errors.New("disk on fire"))
	if got.Status != http.StatusInternalServerError || got.Code != CodeInternal {
		t.Fatalf("unexpected classification: status=%d code=%q", got.Status, got.Code)
	}
}

func TestFromNil(t *testing.T) {
	t.Parallel()
	if got := From(nil); got != nil {
		t.Fatalf("From(nil): got=%+v want=nil", got)
	}
}

func TestHasCode(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("create: %w", Conflict(errors.New("duplicate")))
	if !HasCode(err, CodeConflict) {
		t.Fatalf("HasCode missed wrapped conflict: %v", err)
	}
	if HasCode(err, CodeNotFound) {
		t.Fatalf("HasCode matched wrong code: %v", err)
	}
	if HasCode(errors.New("plain"), CodeConflict) {
		t.Fatalf("HasCode matched unclassified error")
	}
}

func TestErrorString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"with cause", Upstream(errors.New("boom")), "boom"},
		{"code only", &Error{Code: CodeDecode}, CodeDecode},
		{"status only", &Error{Status: 502}, "api error (502)"},
		{"empty", &Error{}, "api error"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("%s: got=%q want=%q", tc.name, got, tc.want)
		}
	}
}

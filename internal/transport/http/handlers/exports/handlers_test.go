package exportshandler

import (
	"net/http/httptest"
	"testing"
)

func TestServeQuotesDispositionFilename(t *testing.T) {
	rec := httptest.NewRecorder()
	serve(rec, "documents.csv", "text/csv", []byte("a,b\n"))

	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="documents.csv"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Fatalf("unexpected content type %q", got)
	}
	if rec.Body.String() != "a,b\n" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

package documents

import (
	"testing"

	"docman/internal/dates"
)

func TestFromInputConvertsDates(t *testing.T) {
	doc, err := fromInput(Input{Name: "Trade License", Number: "TL-1", IssueDate: "01-06-2023", ExpiryDate: "01-06-2025"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.IssueDate != "2023-06-01" {
		t.Fatalf("issue date not converted: %s", doc.IssueDate)
	}
	if doc.ExpiryDate != "2025-06-01" {
		t.Fatalf("expiry date not converted: %s", doc.ExpiryDate)
	}
}

func TestFromInputAllowsMissingExpiry(t *testing.T) {
	doc, err := fromInput(Input{Name: "Certificate", Number: "C-1", IssueDate: "01-06-2023"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ExpiryDate != "" {
		t.Fatalf("expected empty expiry, got %q", doc.ExpiryDate)
	}
}

func TestFromInputRejectsBadDate(t *testing.T) {
	_, err := fromInput(Input{Name: "Bad", Number: "B-1", IssueDate: "31-02-2024"})
	if err != dates.ErrInvalidFormat {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

package employees

import (
	"testing"

	"docman/internal/dates"
)

func TestFromInputConvertsStartDate(t *testing.T) {
	emp, err := fromInput(Input{Name: "Sara", Email: "sara@example.com", StartDate: "15-03-2024"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emp.StartDate != "2024-03-15" {
		t.Fatalf("start date not converted: %s", emp.StartDate)
	}
}

func TestFromInputAllowsMissingStartDate(t *testing.T) {
	emp, err := fromInput(Input{Name: "Sara", Email: "sara@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emp.StartDate != "" {
		t.Fatalf("expected empty start date, got %q", emp.StartDate)
	}
}

func TestFromInputRejectsBadStartDate(t *testing.T) {
	_, err := fromInput(Input{Name: "Sara", Email: "sara@example.com", StartDate: "2024-03-15"})
	if err != dates.ErrInvalidFormat {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

package salaries

import "testing"

func TestMonthKey(t *testing.T) {
	if got := monthKey(2024, 3); got != "2024-03" {
		t.Fatalf("expected 2024-03, got %s", got)
	}
	if got := monthKey(2024, 12); got != "2024-12" {
		t.Fatalf("expected 2024-12, got %s", got)
	}
	if got := monthKey(999, 1); got != "0999-01" {
		t.Fatalf("expected 0999-01, got %s", got)
	}
}

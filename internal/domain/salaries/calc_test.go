package salaries

import "testing"

func TestNetSalary(t *testing.T) {
	if got := NetSalary("5000", "300", "200"); got != 5100 {
		t.Fatalf("expected 5100, got %v", got)
	}
}

func TestNetSalaryForgivingFallback(t *testing.T) {
	if got := NetSalary("abc", "0", "0"); got != 0.0 {
		t.Fatalf("expected 0.0 for non-numeric basic, got %v", got)
	}
	if got := NetSalary("5000", "oops", "0"); got != 0.0 {
		t.Fatalf("expected 0.0 for non-numeric allowances, got %v", got)
	}
	if got := NetSalary("", "0", "0"); got != 0.0 {
		t.Fatalf("expected 0.0 for empty basic, got %v", got)
	}
}

func TestNetSalaryNegativeResult(t *testing.T) {
	if got := NetSalary("1000", "0", "1500"); got != -500 {
		t.Fatalf("expected -500, got %v", got)
	}
}

func TestAmount(t *testing.T) {
	if got := Amount("250.75"); got != 250.75 {
		t.Fatalf("expected 250.75, got %v", got)
	}
	if got := Amount("junk"); got != 0 {
		t.Fatalf("expected 0 fallback, got %v", got)
	}
}

func TestAnnualBasic(t *testing.T) {
	if got := AnnualBasic(5000); got != 60000 {
		t.Fatalf("expected 60000, got %v", got)
	}
}

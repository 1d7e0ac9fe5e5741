package exports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"docman/internal/domain/documents"
	"docman/internal/domain/salaries"
)

func TestWriteDocumentsCSV(t *testing.T) {
	rows := []documents.ExportRow{
		{Name: "Trade License", Number: "TL-1", Type: "license", Category: "legal",
			IssueDate: "01-06-2023", ExpiryDate: "01-06-2025", Status: "active", EmployeeName: "Sara"},
	}

	var buf bytes.Buffer
	if err := WriteDocumentsCSV(&buf, rows); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	if records[0][0] != "Document Name" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][1] != "TL-1" || records[1][4] != "01-06-2023" {
		t.Fatalf("unexpected row: %v", records[1])
	}
}

func TestWriteSalariesCSVFormatsAmounts(t *testing.T) {
	rows := []salaries.ExportRow{
		{EmployeeName: "Sara", Department: "Finance", BasicSalary: 5000, AnnualBasic: 60000,
			Allowances: 300, Deductions: 200, NetSalary: 5100, PaymentMethod: "bank", PaymentDate: "15-03-2024"},
	}

	var buf bytes.Buffer
	if err := WriteSalariesCSV(&buf, rows); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "5100.00") {
		t.Fatalf("expected formatted net salary in output: %s", out)
	}
	if !strings.Contains(out, "60000.00") {
		t.Fatalf("expected annual basic in output: %s", out)
	}
}

func TestDocumentsPDFProducesOutput(t *testing.T) {
	data, err := DocumentsPDF([]documents.ExportRow{{Name: "Permit", Number: "P-9"}})
	if err != nil {
		t.Fatalf("pdf failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("expected PDF header")
	}
}

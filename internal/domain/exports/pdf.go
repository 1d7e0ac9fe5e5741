package exports

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"docman/internal/domain/documents"
	"docman/internal/domain/salaries"
)

// DocumentsPDF renders the document register as a landscape table.
func DocumentsPDF(rows []documents.ExportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(40, 10, "Document Register")
	pdf.Ln(12)

	widths := []float64{50, 30, 25, 25, 25, 25, 22, 40, 35}
	writeHeaderRow(pdf, documentHeader, widths)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		cells := []string{row.Name, row.Number, row.Type, row.Category, row.IssueDate, row.ExpiryDate, row.Status, row.EmployeeName, row.Notes}
		writeRow(pdf, cells, widths)
	}

	return output(pdf)
}

// SalariesPDF renders the salary report as a landscape table.
func SalariesPDF(rows []salaries.ExportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(40, 10, "Salary Report")
	pdf.Ln(12)

	widths := []float64{45, 35, 28, 28, 25, 25, 25, 35, 28}
	writeHeaderRow(pdf, salaryHeader, widths)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		cells := []string{
			row.EmployeeName,
			row.Department,
			money(row.BasicSalary),
			money(row.AnnualBasic),
			money(row.Allowances),
			money(row.Deductions),
			money(row.NetSalary),
			row.PaymentMethod,
			row.PaymentDate,
		}
		writeRow(pdf, cells, widths)
	}

	return output(pdf)
}

func writeHeaderRow(pdf *gofpdf.Fpdf, header []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 9)
	for i, cell := range header {
		pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func writeRow(pdf *gofpdf.Fpdf, cells []string, widths []float64) {
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

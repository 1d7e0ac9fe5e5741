// Package exports renders display-formatted rows from the list-for-export
// queries into tabular files. Column naming lives here, not in the stores.
package exports

import (
	"encoding/csv"
	"fmt"
	"io"

	"docman/internal/domain/documents"
	"docman/internal/domain/salaries"
)

var documentHeader = []string{"Document Name", "Number", "Type", "Category", "Issue Date", "Expiry Date", "Status", "Employee", "Notes"}

var salaryHeader = []string{"Employee", "Department", "Basic Salary", "Annual Basic", "Allowances", "Deductions", "Net Salary", "Payment Method", "Payment Date"}

func WriteDocumentsCSV(w io.Writer, rows []documents.ExportRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(documentHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.Name, row.Number, row.Type, row.Category, row.IssueDate, row.ExpiryDate, row.Status, row.EmployeeName, row.Notes}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func WriteSalariesCSV(w io.Writer, rows []salaries.ExportRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(salaryHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
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
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func money(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

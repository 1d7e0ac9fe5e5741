package documents

type Document struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Number     string `json:"number"`
	Type       string `json:"type"`
	Category   string `json:"category"`
	IssueDate  string `json:"issueDate"`
	ExpiryDate string `json:"expiryDate"`
	Status     string `json:"status"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
	Notes      string `json:"notes"`
}

// Input carries document fields as entered by the user; dates are in display
// form and converted at the service boundary.
type Input struct {
	Name       string `json:"name"`
	Number     string `json:"number"`
	Type       string `json:"type"`
	Category   string `json:"category"`
	IssueDate  string `json:"issueDate"`
	ExpiryDate string `json:"expiryDate"`
	Status     string `json:"status"`
	EmployeeID *int64 `json:"employeeId"`
	Notes      string `json:"notes"`
}

// ListRow is a document joined with its employee's name and annotated with
// the expiry countdown, ready for a table view.
type ListRow struct {
	Document
	EmployeeName string `json:"employeeName"`
	Validity     string `json:"validity"`
}

// ExportRow is fully display-formatted: dates converted, employee resolved.
// The tabular-file writer consumes it as-is.
type ExportRow struct {
	Name         string `json:"name"`
	Number       string `json:"number"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	IssueDate    string `json:"issueDate"`
	ExpiryDate   string `json:"expiryDate"`
	Status       string `json:"status"`
	EmployeeName string `json:"employeeName"`
	Notes        string `json:"notes"`
}

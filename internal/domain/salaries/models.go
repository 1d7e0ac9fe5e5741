package salaries

type Salary struct {
	ID            int64   `json:"id"`
	EmployeeID    int64   `json:"employeeId"`
	BasicSalary   float64 `json:"basicSalary"`
	Allowances    float64 `json:"allowances"`
	Deductions    float64 `json:"deductions"`
	NetSalary     float64 `json:"netSalary"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentDate   string  `json:"paymentDate"`
}

// Input carries salary fields as entered by the user. Amounts stay strings
// so the forgiving net computation sees exactly what was typed; PaymentDate
// is in display form.
type Input struct {
	EmployeeID    int64  `json:"employeeId"`
	BasicSalary   string `json:"basicSalary"`
	Allowances    string `json:"allowances"`
	Deductions    string `json:"deductions"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentDate   string `json:"paymentDate"`
}

// ListRow joins a salary with its employee and carries the derived annual
// basic figure.
type ListRow struct {
	ID            int64   `json:"id"`
	EmployeeName  string  `json:"employeeName"`
	Department    string  `json:"department"`
	BasicSalary   float64 `json:"basicSalary"`
	AnnualBasic   float64 `json:"annualBasic"`
	Allowances    float64 `json:"allowances"`
	Deductions    float64 `json:"deductions"`
	NetSalary     float64 `json:"netSalary"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentDate   string  `json:"paymentDate"`
}

// ExportRow is the display-formatted shape handed to the tabular writers.
type ExportRow struct {
	EmployeeName  string  `json:"employeeName"`
	Department    string  `json:"department"`
	BasicSalary   float64 `json:"basicSalary"`
	AnnualBasic   float64 `json:"annualBasic"`
	Allowances    float64 `json:"allowances"`
	Deductions    float64 `json:"deductions"`
	NetSalary     float64 `json:"netSalary"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentDate   string  `json:"paymentDate"`
}

// HistoryRow is one employee's salary record with the derived annual basic.
type HistoryRow struct {
	ID            int64   `json:"id"`
	BasicSalary   float64 `json:"basicSalary"`
	AnnualBasic   float64 `json:"annualBasic"`
	Allowances    float64 `json:"allowances"`
	Deductions    float64 `json:"deductions"`
	NetSalary     float64 `json:"netSalary"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentDate   string  `json:"paymentDate"`
}

// LastSalary pre-fills a new entry from the employee's most recent one.
type LastSalary struct {
	BasicSalary   float64 `json:"basicSalary"`
	Allowances    float64 `json:"allowances"`
	Deductions    float64 `json:"deductions"`
	PaymentMethod string  `json:"paymentMethod"`
}

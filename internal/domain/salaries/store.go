package salaries

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, sal Salary) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO salaries (employee_id, basic_salary, allowances, deductions, net_salary, payment_method, payment_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, sal.EmployeeID, sal.BasicSalary, sal.Allowances, sal.Deductions, sal.NetSalary, sal.PaymentMethod, sal.PaymentDate).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, id int64, sal Salary) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE salaries
    SET employee_id = $1,
        basic_salary = $2,
        allowances = $3,
        deductions = $4,
        net_salary = $5,
        payment_method = $6,
        payment_date = $7
    WHERE id = $8
  `, sal.EmployeeID, sal.BasicSalary, sal.Allowances, sal.Deductions, sal.NetSalary, sal.PaymentMethod, sal.PaymentDate, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// EmployeeAndDate fetches the owning employee and payment date before a
// delete so the audit entry can name what was removed.
func (s *Store) EmployeeAndDate(ctx context.Context, id int64) (int64, string, error) {
	var employeeID int64
	var paymentDate string
	err := s.DB.QueryRow(ctx, "SELECT employee_id, payment_date FROM salaries WHERE id = $1", id).Scan(&employeeID, &paymentDate)
	if err == pgx.ErrNoRows {
		return 0, "", ErrNotFound
	}
	if err != nil {
		return 0, "", err
	}
	return employeeID, paymentDate, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM salaries WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]ListRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT s.id, e.name, e.department, s.basic_salary, s.allowances, s.deductions,
           s.net_salary, s.payment_method, s.payment_date
    FROM salaries s
    JOIN employees e ON s.employee_id = e.id
    ORDER BY s.payment_date DESC, s.id DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ListRow
	for rows.Next() {
		var row ListRow
		if err := rows.Scan(&row.ID, &row.EmployeeName, &row.Department, &row.BasicSalary,
			&row.Allowances, &row.Deductions, &row.NetSalary, &row.PaymentMethod, &row.PaymentDate); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) ListForExport(ctx context.Context) ([]ExportRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.name, e.department, s.basic_salary, s.allowances, s.deductions,
           s.net_salary, s.payment_method, s.payment_date
    FROM salaries s
    JOIN employees e ON s.employee_id = e.id
    ORDER BY s.payment_date DESC, s.id DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExportRow
	for rows.Next() {
		var row ExportRow
		if err := rows.Scan(&row.EmployeeName, &row.Department, &row.BasicSalary,
			&row.Allowances, &row.Deductions, &row.NetSalary, &row.PaymentMethod, &row.PaymentDate); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) LastForEmployee(ctx context.Context, employeeID int64) (LastSalary, error) {
	var last LastSalary
	err := s.DB.QueryRow(ctx, `
    SELECT basic_salary, allowances, deductions, payment_method
    FROM salaries
    WHERE employee_id = $1
    ORDER BY payment_date DESC, id DESC
    LIMIT 1
  `, employeeID).Scan(&last.BasicSalary, &last.Allowances, &last.Deductions, &last.PaymentMethod)
	if err == pgx.ErrNoRows {
		return LastSalary{}, ErrNotFound
	}
	if err != nil {
		return LastSalary{}, err
	}
	return last, nil
}

func (s *Store) HistoryForEmployee(ctx context.Context, employeeID int64) ([]HistoryRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, basic_salary, allowances, deductions, net_salary, payment_method, payment_date
    FROM salaries
    WHERE employee_id = $1
    ORDER BY payment_date DESC, id DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HistoryRow
	for rows.Next() {
		var row HistoryRow
		if err := rows.Scan(&row.ID, &row.BasicSalary, &row.Allowances, &row.Deductions,
			&row.NetSalary, &row.PaymentMethod, &row.PaymentDate); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ExistsForMonth reports whether the employee already has a salary dated in
// the given calendar month. Payment dates persist as YYYY-MM-DD text, so a
// prefix match on the first seven characters is the month check.
func (s *Store) ExistsForMonth(ctx context.Context, employeeID int64, year, month int) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM salaries
    WHERE employee_id = $1 AND left(payment_date, 7) = $2
  `, employeeID, monthKey(year, month)).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func monthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

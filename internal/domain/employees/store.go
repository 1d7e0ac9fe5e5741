package employees

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, emp Employee) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, position, department, start_date, phone, email, address, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, emp.Name, emp.Position, emp.Department, emp.StartDate, emp.Phone, emp.Email, emp.Address, emp.Notes).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, id int64, emp Employee) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $1,
        position = $2,
        department = $3,
        start_date = $4,
        phone = $5,
        email = $6,
        address = $7,
        notes = $8
    WHERE id = $9
  `, emp.Name, emp.Position, emp.Department, emp.StartDate, emp.Phone, emp.Email, emp.Address, emp.Notes, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Name(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.DB.QueryRow(ctx, "SELECT name FROM employees WHERE id = $1", id).Scan(&name)
	if err == pgx.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	return s.DB.Begin(ctx)
}

// UnlinkDocumentsTx nulls the employee reference on every document owned by
// the employee, returning how many were touched.
func (s *Store) UnlinkDocumentsTx(ctx context.Context, tx pgx.Tx, employeeID int64) (int64, error) {
	cmd, err := tx.Exec(ctx, "UPDATE documents SET employee_id = NULL WHERE employee_id = $1", employeeID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (s *Store) DeleteSalariesTx(ctx context.Context, tx pgx.Tx, employeeID int64) (int64, error) {
	cmd, err := tx.Exec(ctx, "DELETE FROM salaries WHERE employee_id = $1", employeeID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (s *Store) DeleteTx(ctx context.Context, tx pgx.Tx, employeeID int64) error {
	cmd, err := tx.Exec(ctx, "DELETE FROM employees WHERE id = $1", employeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, position, department, start_date, phone, email, address, notes
    FROM employees
    ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Position, &emp.Department, &emp.StartDate,
			&emp.Phone, &emp.Email, &emp.Address, &emp.Notes); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) IDNames(ctx context.Context) ([]IDName, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name FROM employees ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []IDName
	for rows.Next() {
		var pair IDName
		if err := rows.Scan(&pair.ID, &pair.Name); err != nil {
			return nil, err
		}
		out = append(out, pair)
	}
	return out, rows.Err()
}

func (s *Store) Departments(ctx context.Context) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT DISTINCT department
    FROM employees
    WHERE department IS NOT NULL AND department != ''
    ORDER BY department
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var dept string
		if err := rows.Scan(&dept); err != nil {
			return nil, err
		}
		out = append(out, dept)
	}
	return out, rows.Err()
}

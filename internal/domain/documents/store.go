package documents

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

func (s *Store) Insert(ctx context.Context, doc Document) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO documents (name, number, doc_type, category, issue_date, expiry_date, status, employee_id, notes)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id
  `, doc.Name, doc.Number, doc.Type, doc.Category, doc.IssueDate, doc.ExpiryDate, doc.Status, doc.EmployeeID, doc.Notes).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, id int64, doc Document) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE documents
    SET name = $1,
        number = $2,
        doc_type = $3,
        category = $4,
        issue_date = $5,
        expiry_date = $6,
        status = $7,
        employee_id = $8,
        notes = $9
    WHERE id = $10
  `, doc.Name, doc.Number, doc.Type, doc.Category, doc.IssueDate, doc.ExpiryDate, doc.Status, doc.EmployeeID, doc.Notes, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) NameNumber(ctx context.Context, id int64) (string, string, error) {
	var name, number string
	err := s.DB.QueryRow(ctx, "SELECT name, number FROM documents WHERE id = $1", id).Scan(&name, &number)
	if err == pgx.ErrNoRows {
		return "", "", ErrNotFound
	}
	if err != nil {
		return "", "", err
	}
	return name, number, nil
}

func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	return s.DB.Begin(ctx)
}

func (s *Store) DeleteTx(ctx context.Context, tx pgx.Tx, id int64) error {
	cmd, err := tx.Exec(ctx, "DELETE FROM documents WHERE id = $1", id)
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
    SELECT d.id, d.name, d.number, d.doc_type, d.category, d.issue_date, d.expiry_date,
           d.status, d.employee_id, COALESCE(e.name, ''), d.notes
    FROM documents d
    LEFT JOIN employees e ON d.employee_id = e.id
    ORDER BY d.id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ListRow
	for rows.Next() {
		var row ListRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Number, &row.Type, &row.Category,
			&row.IssueDate, &row.ExpiryDate, &row.Status, &row.EmployeeID, &row.EmployeeName, &row.Notes); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) ListForExport(ctx context.Context) ([]ExportRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT d.name, d.number, d.doc_type, d.category, d.issue_date, d.expiry_date,
           d.status, COALESCE(e.name, ''), d.notes
    FROM documents d
    LEFT JOIN employees e ON d.employee_id = e.id
    ORDER BY d.id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExportRow
	for rows.Next() {
		var row ExportRow
		if err := rows.Scan(&row.Name, &row.Number, &row.Type, &row.Category,
			&row.IssueDate, &row.ExpiryDate, &row.Status, &row.EmployeeName, &row.Notes); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT DISTINCT category
    FROM documents
    WHERE category IS NOT NULL AND category != ''
    ORDER BY category
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		out = append(out, category)
	}
	return out, rows.Err()
}

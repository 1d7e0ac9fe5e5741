package attachments

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

func (s *Store) Insert(ctx context.Context, att Attachment) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO attachments (document_id, file_name, file_path)
    VALUES ($1, $2, $3)
    RETURNING id
  `, att.DocumentID, att.FileName, att.FilePath).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id int64) (Attachment, error) {
	var att Attachment
	err := s.DB.QueryRow(ctx, `
    SELECT id, document_id, file_name, file_path
    FROM attachments
    WHERE id = $1
  `, id).Scan(&att.ID, &att.DocumentID, &att.FileName, &att.FilePath)
	if err == pgx.ErrNoRows {
		return Attachment{}, ErrNotFound
	}
	if err != nil {
		return Attachment{}, err
	}
	return att, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	cmd, err := s.DB.Exec(ctx, "DELETE FROM attachments WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListForDocument(ctx context.Context, documentID int64) ([]Attachment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, document_id, file_name, file_path
    FROM attachments
    WHERE document_id = $1
    ORDER BY id
  `, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Attachment
	for rows.Next() {
		var att Attachment
		if err := rows.Scan(&att.ID, &att.DocumentID, &att.FileName, &att.FilePath); err != nil {
			return nil, err
		}
		out = append(out, att)
	}
	return out, rows.Err()
}

// DeleteForDocumentTx removes every attachment row of a document inside the
// caller's transaction and returns the file paths so the physical files can
// be cleaned up after commit.
func (s *Store) DeleteForDocumentTx(ctx context.Context, tx pgx.Tx, documentID int64) ([]string, error) {
	rows, err := tx.Query(ctx, "SELECT file_path FROM attachments WHERE document_id = $1", documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if _, err := tx.Exec(ctx, "DELETE FROM attachments WHERE document_id = $1", documentID); err != nil {
		return nil, err
	}
	return paths, nil
}

package documents

import (
	"context"
	"fmt"

	"docman/internal/dates"
	"docman/internal/domain/attachments"
	"docman/internal/domain/audit"
	"docman/internal/platform/db"
	"docman/internal/platform/metrics"
)

type Service struct {
	store       *Store
	attachments *attachments.Store
	audit       *audit.Service
	metrics     *metrics.Metrics
}

func NewService(store *Store, attachmentStore *attachments.Store, auditSvc *audit.Service, m *metrics.Metrics) *Service {
	return &Service{store: store, attachments: attachmentStore, audit: auditSvc, metrics: m}
}

func (s *Service) Add(ctx context.Context, input Input) (int64, error) {
	doc, err := fromInput(input)
	if err != nil {
		return 0, err
	}

	id, err := s.store.Insert(ctx, doc)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return 0, ErrDuplicateNumber
		}
		return 0, err
	}

	if err := s.audit.Record(ctx, "Added document", fmt.Sprintf("%s (number: %s)", doc.Name, doc.Number)); err != nil {
		return 0, err
	}
	s.metrics.RecordMutation("document", "add")
	return id, nil
}

func (s *Service) Update(ctx context.Context, id int64, input Input) error {
	doc, err := fromInput(input)
	if err != nil {
		return err
	}

	if err := s.store.Update(ctx, id, doc); err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicateNumber
		}
		return err
	}

	if err := s.audit.Record(ctx, "Updated document", fmt.Sprintf("id: %d (number: %s)", id, doc.Number)); err != nil {
		return err
	}
	s.metrics.RecordMutation("document", "update")
	return nil
}

// Delete removes the document and its attachment rows in one transaction so
// a mid-cascade failure leaves everything in place. The physical files are
// removed only after the commit; losing that race leaves at worst a stray
// file, never a dangling row.
func (s *Service) Delete(ctx context.Context, id int64) error {
	name, number, err := s.store.NameNumber(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	paths, err := s.attachments.DeleteForDocumentTx(ctx, tx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteTx(ctx, tx, id); err != nil {
		return err
	}

	details := fmt.Sprintf("%s (number: %s) and %d attachments", name, number, len(paths))
	if err := s.audit.RecordTx(ctx, tx, "Deleted document", details); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	attachments.RemoveFiles(paths)
	s.metrics.RecordMutation("document", "delete")
	return nil
}

func (s *Service) List(ctx context.Context) ([]ListRow, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Validity = dates.RemainingValidity(list[i].ExpiryDate).String()
		list[i].IssueDate = dates.ToDisplay(list[i].IssueDate)
		list[i].ExpiryDate = dates.ToDisplay(list[i].ExpiryDate)
	}
	return list, nil
}

func (s *Service) ListForExport(ctx context.Context) ([]ExportRow, error) {
	list, err := s.store.ListForExport(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].IssueDate = dates.ToDisplay(list[i].IssueDate)
		list[i].ExpiryDate = dates.ToDisplay(list[i].ExpiryDate)
	}
	return list, nil
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.store.Categories(ctx)
}

func fromInput(input Input) (Document, error) {
	issueDate, err := dates.ToStorage(input.IssueDate)
	if err != nil {
		return Document{}, err
	}
	expiryDate, err := dates.ToStorage(input.ExpiryDate)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Name:       input.Name,
		Number:     input.Number,
		Type:       input.Type,
		Category:   input.Category,
		IssueDate:  issueDate,
		ExpiryDate: expiryDate,
		Status:     input.Status,
		EmployeeID: input.EmployeeID,
		Notes:      input.Notes,
	}, nil
}

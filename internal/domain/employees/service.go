package employees

import (
	"context"
	"fmt"

	"docman/internal/dates"
	"docman/internal/domain/audit"
	"docman/internal/platform/db"
	"docman/internal/platform/metrics"
)

type Service struct {
	store   *Store
	audit   *audit.Service
	metrics *metrics.Metrics
}

func NewService(store *Store, auditSvc *audit.Service, m *metrics.Metrics) *Service {
	return &Service{store: store, audit: auditSvc, metrics: m}
}

func (s *Service) Add(ctx context.Context, input Input) (int64, error) {
	emp, err := fromInput(input)
	if err != nil {
		return 0, err
	}

	id, err := s.store.Insert(ctx, emp)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}

	if err := s.audit.Record(ctx, "Added employee", fmt.Sprintf("%s (id: %d)", emp.Name, id)); err != nil {
		return 0, err
	}
	s.metrics.RecordMutation("employee", "add")
	return id, nil
}

func (s *Service) Update(ctx context.Context, id int64, input Input) error {
	emp, err := fromInput(input)
	if err != nil {
		return err
	}

	if err := s.store.Update(ctx, id, emp); err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	if err := s.audit.Record(ctx, "Updated employee", fmt.Sprintf("%s (id: %d)", emp.Name, id)); err != nil {
		return err
	}
	s.metrics.RecordMutation("employee", "update")
	return nil
}

// Delete removes the employee as one atomic unit: referencing documents keep
// their rows but lose the link, salary history goes with the employee.
func (s *Service) Delete(ctx context.Context, id int64) error {
	name, err := s.store.Name(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	unlinked, err := s.store.UnlinkDocumentsTx(ctx, tx, id)
	if err != nil {
		return err
	}
	removed, err := s.store.DeleteSalariesTx(ctx, tx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteTx(ctx, tx, id); err != nil {
		return err
	}

	details := fmt.Sprintf("%s (id: %d), %d documents unlinked, %d salary records removed", name, id, unlinked, removed)
	if err := s.audit.RecordTx(ctx, tx, "Deleted employee", details); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	s.metrics.RecordMutation("employee", "delete")
	return nil
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].StartDate = dates.ToDisplay(list[i].StartDate)
	}
	return list, nil
}

func (s *Service) IDNames(ctx context.Context) ([]IDName, error) {
	return s.store.IDNames(ctx)
}

func (s *Service) Departments(ctx context.Context) ([]string, error) {
	return s.store.Departments(ctx)
}

func fromInput(input Input) (Employee, error) {
	startDate, err := dates.ToStorage(input.StartDate)
	if err != nil {
		return Employee{}, err
	}
	return Employee{
		Name:       input.Name,
		Position:   input.Position,
		Department: input.Department,
		StartDate:  startDate,
		Phone:      input.Phone,
		Email:      input.Email,
		Address:    input.Address,
		Notes:      input.Notes,
	}, nil
}

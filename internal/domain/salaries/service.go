package salaries

import (
	"context"
	"fmt"

	"docman/internal/dates"
	"docman/internal/domain/audit"
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

// Add stores a salary record with the net amount derived from the raw form
// values. It does not enforce one-salary-per-month; callers that want that
// guard invoke ExistsForMonth first.
func (s *Service) Add(ctx context.Context, input Input) (int64, error) {
	sal, err := fromInput(input)
	if err != nil {
		return 0, err
	}

	id, err := s.store.Insert(ctx, sal)
	if err != nil {
		return 0, err
	}

	details := fmt.Sprintf("employee id: %d, date: %s", sal.EmployeeID, dates.ToDisplay(sal.PaymentDate))
	if err := s.audit.Record(ctx, "Added salary", details); err != nil {
		return 0, err
	}
	s.metrics.RecordMutation("salary", "add")
	return id, nil
}

func (s *Service) Update(ctx context.Context, id int64, input Input) error {
	sal, err := fromInput(input)
	if err != nil {
		return err
	}

	if err := s.store.Update(ctx, id, sal); err != nil {
		return err
	}

	if err := s.audit.Record(ctx, "Updated salary", fmt.Sprintf("id: %d, employee id: %d", id, sal.EmployeeID)); err != nil {
		return err
	}
	s.metrics.RecordMutation("salary", "update")
	return nil
}

// Delete removes a salary record and reports which employee and payment date
// it belonged to.
func (s *Service) Delete(ctx context.Context, id int64) (int64, string, error) {
	employeeID, paymentDate, err := s.store.EmployeeAndDate(ctx, id)
	if err != nil {
		return 0, "", err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return 0, "", err
	}

	displayDate := dates.ToDisplay(paymentDate)
	details := fmt.Sprintf("id: %d, employee id: %d, date: %s", id, employeeID, displayDate)
	if err := s.audit.Record(ctx, "Deleted salary", details); err != nil {
		return 0, "", err
	}
	s.metrics.RecordMutation("salary", "delete")
	return employeeID, displayDate, nil
}

func (s *Service) List(ctx context.Context) ([]ListRow, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].AnnualBasic = AnnualBasic(list[i].BasicSalary)
		list[i].PaymentDate = dates.ToDisplay(list[i].PaymentDate)
	}
	return list, nil
}

func (s *Service) ListForExport(ctx context.Context) ([]ExportRow, error) {
	list, err := s.store.ListForExport(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].AnnualBasic = AnnualBasic(list[i].BasicSalary)
		list[i].PaymentDate = dates.ToDisplay(list[i].PaymentDate)
	}
	return list, nil
}

func (s *Service) LastForEmployee(ctx context.Context, employeeID int64) (LastSalary, error) {
	return s.store.LastForEmployee(ctx, employeeID)
}

func (s *Service) HistoryForEmployee(ctx context.Context, employeeID int64) ([]HistoryRow, error) {
	history, err := s.store.HistoryForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	for i := range history {
		history[i].AnnualBasic = AnnualBasic(history[i].BasicSalary)
		history[i].PaymentDate = dates.ToDisplay(history[i].PaymentDate)
	}
	return history, nil
}

func (s *Service) ExistsForMonth(ctx context.Context, employeeID int64, year, month int) (bool, error) {
	return s.store.ExistsForMonth(ctx, employeeID, year, month)
}

func fromInput(input Input) (Salary, error) {
	paymentDate, err := dates.ToStorage(input.PaymentDate)
	if err != nil {
		return Salary{}, err
	}
	return Salary{
		EmployeeID:    input.EmployeeID,
		BasicSalary:   Amount(input.BasicSalary),
		Allowances:    Amount(input.Allowances),
		Deductions:    Amount(input.Deductions),
		NetSalary:     NetSalary(input.BasicSalary, input.Allowances, input.Deductions),
		PaymentMethod: input.PaymentMethod,
		PaymentDate:   paymentDate,
	}, nil
}

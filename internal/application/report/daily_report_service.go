package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/action"
	"github.com/kdirani/farms/internal/application/attachment"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/report"
	"github.com/kdirani/farms/internal/domain/shared"
)

// DailyReportService files and reviews daily production reports
type DailyReportService struct {
	reports report.Repository
	files   attachment.Purger
	pages   action.Invalidator
}

// NewDailyReportService creates a new DailyReportService
func NewDailyReportService(reports report.Repository, files attachment.Purger, pages action.Invalidator) *DailyReportService {
	return &DailyReportService{reports: reports, files: files, pages: pages}
}

func (s *DailyReportService) invalidate(ctx context.Context) {
	action.Invalidate(ctx, s.pages, document.KindDailyReport.Pages()...)
}

// Create files a report. A warehouse has at most one report per day.
func (s *DailyReportService) Create(ctx context.Context, req CreateDailyReportRequest) (*DailyReportResponse, error) {
	in, err := req.toDomain()
	if err != nil {
		return nil, err
	}
	r, err := report.New(in)
	if err != nil {
		return nil, err
	}
	exists, err := s.reports.ExistsForDate(ctx, r.WarehouseID, r.ReportDate)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("CONFLICT", "a daily report already exists for this warehouse and date")
	}
	if err := s.reports.Create(ctx, r); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	resp := ToDailyReportResponse(r)
	return &resp, nil
}

// List returns reports, newest first
func (s *DailyReportService) List(ctx context.Context, req ListDailyReportsRequest) ([]DailyReportResponse, error) {
	filter := report.Filter{WarehouseID: req.WarehouseID}
	var err error
	if filter.From, err = shared.ParseOptionalDate("from", req.From); err != nil {
		return nil, err
	}
	if filter.To, err = shared.ParseOptionalDate("to", req.To); err != nil {
		return nil, err
	}
	rows, err := s.reports.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]DailyReportResponse, len(rows))
	for i := range rows {
		out[i] = ToDailyReportResponse(&rows[i])
	}
	return out, nil
}

// Get returns a single report
func (s *DailyReportService) Get(ctx context.Context, id uuid.UUID) (*DailyReportResponse, error) {
	r, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToDailyReportResponse(r)
	return &resp, nil
}

// SetChecked marks a report as reviewed or not
func (s *DailyReportService) SetChecked(ctx context.Context, id uuid.UUID, checked bool) (uuid.UUID, error) {
	if err := s.reports.SetChecked(ctx, id, checked); err != nil {
		return uuid.Nil, err
	}
	s.invalidate(ctx)
	return id, nil
}

// Delete removes a report and its attachments
func (s *DailyReportService) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	err := s.files.Purge(ctx, document.KindDailyReport, id, func(ctx context.Context) error {
		return s.reports.Delete(ctx, id)
	})
	if err != nil {
		return uuid.Nil, err
	}
	s.invalidate(ctx)
	return id, nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"rollcall/internal/attendance/models"
	dErrors "rollcall/pkg/domain-errors"
)

// ExportSheet is the worksheet name used for summary exports.
const ExportSheet = "Attendance"

// Export renders the summaries for filter as an XLSX workbook.
func (s *Service) Export(ctx context.Context, filter models.QueryFilter) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "attendance.Export")
	defer span.End()

	rows, err := s.Summaries(ctx, filter)
	if err != nil {
		return nil, err
	}

	b, err := s.workbook(rows)
	if err != nil {
		span.RecordError(err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render export")
	}
	return b, nil
}

func (s *Service) workbook(rows []models.DailySummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ExportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	withLocation := s.engine.TracksLocation()
	withLateness := s.engine.TracksLateness()

	header := []any{"name", "rfid", "date"}
	if withLocation {
		header = append(header, "log_cabin")
	}
	header = append(header, "login_time", "logout_time", "Effective_login", "Break_hours", "Total_login", "errors")
	if withLateness {
		header = append(header, "late_status")
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		values := []any{row.Name, row.RFID, row.Date}
		if withLocation {
			values = append(values, deref(row.Location))
		}
		values = append(values, row.LoginTime, row.LogoutTime, row.EffectiveLogin, row.BreakHours, row.TotalLogin, anomalyText(row.Errors))
		if withLateness {
			values = append(values, deref(row.LateStatus))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(ExportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func anomalyText(a models.Anomalies) string {
	if len(a) == 0 {
		return models.AbsentMarker
	}
	return strings.Join(a, "; ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nominave/nomina-backend-go/internal/domain/attendance"
	"github.com/nominave/nomina-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	classifier     *Classifier
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	classifier *Classifier,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		classifier:     classifier,
	}
}

// RecordDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordDay(ctx context.Context, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !emp.IsActive {
		return attendance.RecordResponse{}, employee.ErrEmployeeInactive
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("parse date: %w", err)
	}

	if _, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date); err == nil {
		return attendance.RecordResponse{}, attendance.ErrRecordAlreadyExists
	} else if !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.RecordResponse{}, err
	}

	rec := attendance.Record{
		ID:                uuid.NewString(),
		EmployeeID:        req.EmployeeID,
		Date:              date,
		ClockIn:           req.ClockIn,
		ClockOut:          req.ClockOut,
		Justified:         req.Justified,
		JustificationType: req.JustificationType,
	}

	created, err := s.attendanceRepo.Create(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("create attendance record: %w", err)
	}

	return s.toResponse(created), nil
}

// Justify implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Justify(ctx context.Context, req attendance.JustifyRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if rec.Justified {
		return attendance.RecordResponse{}, attendance.ErrAlreadyJustified
	}

	updated, err := s.attendanceRepo.MarkJustified(ctx, req.ID, req.JustificationType)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("mark justified: %w", err)
	}

	return s.toResponse(updated), nil
}

// GetRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetRecord(ctx context.Context, id string) (attendance.RecordResponse, error) {
	rec, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return s.toResponse(rec), nil
}

// ListRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) (attendance.ListRecordResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, totalCount, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordResponse{}, err
	}

	data := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, s.toResponse(rec))
	}

	return attendance.ListRecordResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// AbsenceCount implements attendance.AttendanceService. Days with no record
// at all are not counted; the capture collaborator writes one row per
// scheduled day.
func (s *AttendanceServiceImpl) AbsenceCount(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	records, err := s.attendanceRepo.ListByEmployeeDateRange(ctx, employeeID, from, to)
	if err != nil {
		return 0, fmt.Errorf("list attendance records: %w", err)
	}

	count := 0
	for _, rec := range records {
		if s.classifier.Classify(rec).Status == attendance.StatusAbsent {
			count++
		}
	}
	return count, nil
}

func (s *AttendanceServiceImpl) toResponse(rec attendance.Record) attendance.RecordResponse {
	classification := s.classifier.Classify(rec)

	employeeName := ""
	if rec.EmployeeName != nil {
		employeeName = *rec.EmployeeName
	}

	return attendance.RecordResponse{
		ID:                rec.ID,
		EmployeeID:        rec.EmployeeID,
		EmployeeName:      employeeName,
		Date:              rec.Date.Format("2006-01-02"),
		ClockIn:           rec.ClockIn,
		ClockOut:          rec.ClockOut,
		Justified:         rec.Justified,
		JustificationType: rec.JustificationType,
		Status:            string(classification.Status),
		HoursWorked:       classification.HoursWorked.Round(2),
		Reason:            classification.Reason,
	}
}

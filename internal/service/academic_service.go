package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/khushijha-kj/signvibe-api/internal/authz"
	"github.com/khushijha-kj/signvibe-api/internal/models"
	appErrors "github.com/khushijha-kj/signvibe-api/pkg/errors"
	"github.com/khushijha-kj/signvibe-api/pkg/export"
)

type academicUserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	ListStudents(ctx context.Context) ([]models.StudentSummary, error)
}

type academicRecordRepository interface {
	ListWithStudents(ctx context.Context) ([]models.AcademicDetail, error)
	GetByStudent(ctx context.Context, studentID string) (*models.AcademicDetail, error)
	Upsert(ctx context.Context, req models.UpsertAcademicRequest) (*models.AcademicRecord, error)
}

type reportRenderer interface {
	Render(card export.ReportCard) ([]byte, error)
}

// AcademicService implements the role-scoped academic record operations.
// Every operation authorizes first, so a denied caller learns nothing about
// whether the target exists.
type AcademicService struct {
	users    academicUserRepository
	records  academicRecordRepository
	exporter reportRenderer
	logger   *zap.Logger
}

// NewAcademicService constructs an AcademicService instance.
func NewAcademicService(users academicUserRepository, records academicRecordRepository, exporter reportRenderer, logger *zap.Logger) *AcademicService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AcademicService{users: users, records: records, exporter: exporter, logger: logger}
}

// ListRecords returns every academic record with student identity, for
// admins and teachers.
func (s *AcademicService) ListRecords(ctx context.Context, identity *authz.Identity) ([]models.AcademicDetail, error) {
	if !authz.Authorize(identity, authz.OpListRecords, "") {
		return nil, appErrors.ErrForbidden
	}

	records, err := s.records.ListWithStudents(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return records, nil
}

// Upsert creates or merge-updates the academic record for a student. Only
// fields present in the request overwrite stored values; repeated identical
// payloads are idempotent.
func (s *AcademicService) Upsert(ctx context.Context, identity *authz.Identity, req models.UpsertAcademicRequest) (*models.AcademicRecord, error) {
	if !authz.Authorize(identity, authz.OpUpsertRecord, req.Student) {
		return nil, appErrors.ErrForbidden
	}

	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	student, err := s.users.FindByID(ctx, req.Student)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if student.Role != models.RoleStudent {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found.")
	}

	record, err := s.records.Upsert(ctx, req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.logger.Info("academic record upserted",
		zap.String("student_id", req.Student),
		zap.String("teacher_id", identity.ID),
	)
	return record, nil
}

// GetByStudent returns one student's record. Admins and teachers may read
// any record; a student may read only their own.
func (s *AcademicService) GetByStudent(ctx context.Context, identity *authz.Identity, studentID string) (*models.AcademicDetail, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Student id is required as string.")
	}
	if !authz.Authorize(identity, authz.OpGetRecord, studentID) {
		return nil, appErrors.ErrForbidden
	}

	record, err := s.records.GetByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Academic record not found.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return record, nil
}

// ListStudents returns the roster of all students, for teachers.
func (s *AcademicService) ListStudents(ctx context.Context, identity *authz.Identity) ([]models.StudentSummary, error) {
	if !authz.Authorize(identity, authz.OpListStudents, "") {
		return nil, appErrors.ErrForbidden
	}

	students, err := s.users.ListStudents(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return students, nil
}

// StudentDetail returns the record for one student from the teacher view.
// Student existence is checked before record existence so the caller can
// tell "no such student" from "student has no record yet".
func (s *AcademicService) StudentDetail(ctx context.Context, identity *authz.Identity, studentID string) (*models.AcademicDetail, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Student id is required as string.")
	}
	if !authz.Authorize(identity, authz.OpGetStudentDetail, studentID) {
		return nil, appErrors.ErrForbidden
	}

	return s.resolveDetail(ctx, studentID)
}

// ExportReport renders a PDF report card for one student, teacher-only.
func (s *AcademicService) ExportReport(ctx context.Context, identity *authz.Identity, studentID string) ([]byte, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Student id is required as string.")
	}
	if !authz.Authorize(identity, authz.OpGetStudentDetail, studentID) {
		return nil, appErrors.ErrForbidden
	}

	detail, err := s.resolveDetail(ctx, studentID)
	if err != nil {
		return nil, err
	}

	card := export.ReportCard{
		StudentName:      detail.Student.Name,
		StudentEmail:     detail.Student.Email,
		AssignedVideos:   detail.AssignedVideos,
		WatchedVideos:    detail.WatchedVideos,
		SubjectsEnrolled: detail.SubjectsEnrolled,
	}
	for _, g := range detail.Grades {
		card.Grades = append(card.Grades, export.GradeLine{Subject: g.Subject, Grade: g.Grade})
	}

	pdf, err := s.exporter.Render(card)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return pdf, nil
}

func (s *AcademicService) resolveDetail(ctx context.Context, studentID string) (*models.AcademicDetail, error) {
	student, err := s.users.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if student.Role != models.RoleStudent {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found.")
	}

	record, err := s.records.GetByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Academic record not found.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return record, nil
}

func validateUpsert(req models.UpsertAcademicRequest) error {
	if strings.TrimSpace(req.Student) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "student id is required as string.")
	}
	if req.AssignedVideos != nil && *req.AssignedVideos < 0 {
		return appErrors.Clone(appErrors.ErrValidation, "assignedVideos must be a non-negative number.")
	}
	if req.WatchedVideos != nil && *req.WatchedVideos < 0 {
		return appErrors.Clone(appErrors.ErrValidation, "watchedVideos must be a non-negative number.")
	}
	for _, g := range req.Grades {
		if strings.TrimSpace(g.Subject) == "" || strings.TrimSpace(g.Grade) == "" {
			return appErrors.Clone(appErrors.ErrValidation, "grades must be an array of {subject, grade} objects with strings.")
		}
	}
	return nil
}

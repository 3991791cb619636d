package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/khushijha-kj/signvibe-api/internal/models"
)

const academicDetailColumns = `a.id, a.assigned_videos, a.watched_videos, a.grades, a.subjects_enrolled, a.created_at, a.updated_at,
		a.student_id, u.name AS student_name, u.email AS student_email`

// AcademicRepository provides database access for academic records.
type AcademicRepository struct {
	db *sqlx.DB
}

// NewAcademicRepository creates a new instance of AcademicRepository.
func NewAcademicRepository(db *sqlx.DB) *AcademicRepository {
	return &AcademicRepository{db: db}
}

// ListWithStudents returns every academic record joined with its student's
// name and email.
func (r *AcademicRepository) ListWithStudents(ctx context.Context) ([]models.AcademicDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM academics a JOIN users u ON u.id = a.student_id ORDER BY a.created_at DESC`, academicDetailColumns)
	records := []models.AcademicDetail{}
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("list academic records: %w", err)
	}
	for i := range records {
		records[i].FoldStudent()
	}
	return records, nil
}

// GetByStudent returns the academic record for one student joined with the
// student's identity.
func (r *AcademicRepository) GetByStudent(ctx context.Context, studentID string) (*models.AcademicDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM academics a JOIN users u ON u.id = a.student_id WHERE a.student_id = $1 LIMIT 1`, academicDetailColumns)
	var record models.AcademicDetail
	if err := r.db.GetContext(ctx, &record, query, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get academic record: %w", err)
	}
	record.FoldStudent()
	return &record, nil
}

// Upsert creates the student's record if absent, otherwise merges only the
// provided fields. A single conditional statement keeps concurrent teacher
// upserts atomic per record.
func (r *AcademicRepository) Upsert(ctx context.Context, req models.UpsertAcademicRequest) (*models.AcademicRecord, error) {
	var grades interface{}
	if req.Grades != nil {
		grades = req.Grades
	}
	var subjects interface{}
	if req.SubjectsEnrolled != nil {
		subjects = models.StringList(req.SubjectsEnrolled)
	}

	const query = `INSERT INTO academics (id, student_id, assigned_videos, watched_videos, grades, subjects_enrolled, created_at, updated_at)
		VALUES ($1, $2, COALESCE($3::int, 0), COALESCE($4::int, 0), COALESCE($5::jsonb, '[]'::jsonb), COALESCE($6::jsonb, '[]'::jsonb), $7, $7)
		ON CONFLICT (student_id) DO UPDATE
		SET assigned_videos = COALESCE($3::int, academics.assigned_videos),
		    watched_videos = COALESCE($4::int, academics.watched_videos),
		    grades = COALESCE($5::jsonb, academics.grades),
		    subjects_enrolled = COALESCE($6::jsonb, academics.subjects_enrolled),
		    updated_at = $7
		RETURNING id, student_id, assigned_videos, watched_videos, grades, subjects_enrolled, created_at, updated_at`

	var record models.AcademicRecord
	err := r.db.GetContext(ctx, &record, query,
		uuid.NewString(),
		req.Student,
		req.AssignedVideos,
		req.WatchedVideos,
		grades,
		subjects,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert academic record: %w", err)
	}
	return &record, nil
}

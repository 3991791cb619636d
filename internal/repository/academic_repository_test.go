package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khushijha-kj/signvibe-api/internal/models"
)

func academicDetailRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "assigned_videos", "watched_videos", "grades", "subjects_enrolled",
		"created_at", "updated_at", "student_id", "student_name", "student_email",
	})
}

func TestListWithStudents(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAcademicRepository(db)

	rows := academicDetailRows().AddRow(
		"r1", 4, 2, []byte(`[{"subject":"Math","grade":"A"}]`), []byte(`["Math","Science"]`),
		time.Now(), time.Now(), "s1", "Alice", "alice@x.com",
	)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM academics a JOIN users u ON u.id = a.student_id ORDER BY a.created_at DESC`)).
		WillReturnRows(rows)

	records, err := repo.ListWithStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "r1", rec.ID)
	assert.Equal(t, models.GradeList{{Subject: "Math", Grade: "A"}}, rec.Grades)
	assert.Equal(t, models.StringList{"Math", "Science"}, rec.SubjectsEnrolled)
	assert.Equal(t, models.StudentSummary{ID: "s1", Name: "Alice", Email: "alice@x.com"}, rec.Student)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByStudent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAcademicRepository(db)

	rows := academicDetailRows().AddRow(
		"r1", 0, 0, []byte(`[]`), []byte(`[]`),
		time.Now(), time.Now(), "s1", "Alice", "alice@x.com",
	)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE a.student_id = $1`)).
		WithArgs("s1").
		WillReturnRows(rows)

	rec, err := repo.GetByStudent(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", rec.Student.Name)
	assert.Empty(t, rec.Grades)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByStudentNoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAcademicRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE a.student_id = $1`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByStudent(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func upsertResultRows(studentID string, assigned, watched int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "student_id", "assigned_videos", "watched_videos", "grades", "subjects_enrolled", "created_at", "updated_at",
	}).AddRow("r1", studentID, assigned, watched, []byte(`[]`), []byte(`[]`), time.Now(), time.Now())
}

func TestUpsertSendsNullsForAbsentFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAcademicRepository(db)

	// Absent pointer fields travel as NULL so COALESCE keeps stored values.
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO academics`)).
		WithArgs(sqlmock.AnyArg(), "s1", nil, nil, nil, nil, sqlmock.AnyArg()).
		WillReturnRows(upsertResultRows("s1", 0, 0))

	rec, err := repo.Upsert(context.Background(), models.UpsertAcademicRequest{Student: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "s1", rec.StudentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSendsProvidedFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAcademicRepository(db)

	assigned := 5
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO academics`)).
		WithArgs(
			sqlmock.AnyArg(), "s1", 5, nil,
			[]byte(`[{"subject":"Math","grade":"A"}]`),
			[]byte(`["Math"]`),
			sqlmock.AnyArg(),
		).
		WillReturnRows(upsertResultRows("s1", 5, 0))

	rec, err := repo.Upsert(context.Background(), models.UpsertAcademicRequest{
		Student:          "s1",
		AssignedVideos:   &assigned,
		Grades:           models.GradeList{{Subject: "Math", Grade: "A"}},
		SubjectsEnrolled: []string{"Math"},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, rec.AssignedVideos)
	assert.NoError(t, mock.ExpectationsWereMet())
}

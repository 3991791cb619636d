package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Grade is a single subject/grade pair on an academic record.
type Grade struct {
	Subject string `json:"subject"`
	Grade   string `json:"grade"`
}

// GradeList maps a JSONB column to a slice of grades.
type GradeList []Grade

// Value implements driver.Valuer.
func (g GradeList) Value() (driver.Value, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(g)
}

// Scan implements sql.Scanner.
func (g *GradeList) Scan(src interface{}) error {
	return scanJSON(src, g)
}

// StringList maps a JSONB column to a slice of strings.
type StringList []string

// Value implements driver.Valuer.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringList) Scan(src interface{}) error {
	return scanJSON(src, s)
}

func scanJSON(src, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// AcademicRecord stores the per-student academic state. At most one record
// exists per student; it is created implicitly on the first teacher upsert.
type AcademicRecord struct {
	ID               string     `db:"id" json:"id"`
	StudentID        string     `db:"student_id" json:"student"`
	AssignedVideos   int        `db:"assigned_videos" json:"assignedVideos"`
	WatchedVideos    int        `db:"watched_videos" json:"watchedVideos"`
	Grades           GradeList  `db:"grades" json:"grades"`
	SubjectsEnrolled StringList `db:"subjects_enrolled" json:"subjectsEnrolled"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updatedAt"`
}

// AcademicDetail is an academic record joined with its student's identity.
// The flat student_* columns are scanned by sqlx and folded into Student
// before the value is serialized.
type AcademicDetail struct {
	ID               string     `db:"id" json:"id"`
	AssignedVideos   int        `db:"assigned_videos" json:"assignedVideos"`
	WatchedVideos    int        `db:"watched_videos" json:"watchedVideos"`
	Grades           GradeList  `db:"grades" json:"grades"`
	SubjectsEnrolled StringList `db:"subjects_enrolled" json:"subjectsEnrolled"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updatedAt"`

	Student StudentSummary `db:"-" json:"student"`

	StudentID    string `db:"student_id" json:"-"`
	StudentName  string `db:"student_name" json:"-"`
	StudentEmail string `db:"student_email" json:"-"`
}

// FoldStudent populates the nested student projection from the joined
// columns.
func (d *AcademicDetail) FoldStudent() {
	d.Student = StudentSummary{ID: d.StudentID, Name: d.StudentName, Email: d.StudentEmail}
}

// UpsertAcademicRequest is the teacher upsert payload. Pointer fields
// distinguish "absent" from zero so the merge preserves prior values.
type UpsertAcademicRequest struct {
	Student          string    `json:"student"`
	AssignedVideos   *int      `json:"assignedVideos"`
	WatchedVideos    *int      `json:"watchedVideos"`
	Grades           GradeList `json:"grades"`
	SubjectsEnrolled []string  `json:"subjectsEnrolled"`
}

package models

import "time"

// UserRole represents the available roles for the authorization gate.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleParent  UserRole = "parent"
	RoleAdmin   UserRole = "admin"
)

// Valid reports whether the role is one of the four known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleParent, RoleAdmin:
		return true
	}
	return false
}

// User represents an application user stored in the users table. Exactly one
// role-specific field set is populated, matching Role; signup validation
// enforces the pairing since the columns themselves are nullable.
type User struct {
	ID           string   `db:"id" json:"id"`
	Name         string   `db:"name" json:"name"`
	Email        string   `db:"email" json:"email"`
	PasswordHash string   `db:"password_hash" json:"-"`
	Phone        string   `db:"phone" json:"phone"`
	Role         UserRole `db:"role" json:"role"`

	StudentClass    *int        `db:"student_class" json:"studentClass,omitempty"`
	StudentParent   *string     `db:"student_parent" json:"studentParent,omitempty"`
	TeacherSubjects *StringList `db:"teacher_subjects" json:"teacherSubjects,omitempty"`
	ParentChild     *string     `db:"parent_child" json:"parentChild,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// StudentSummary is the projection of a student returned to teachers and
// embedded in academic record responses.
type StudentSummary struct {
	ID    string `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

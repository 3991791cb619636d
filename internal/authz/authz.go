// Package authz implements the role-based authorization gate as a pure
// decision table. Services consult the gate before touching storage so a
// denial can never leak whether the target exists.
package authz

import "github.com/khushijha-kj/signvibe-api/internal/models"

// Operation names an action subject to authorization.
type Operation string

const (
	// OpListRecords covers reading every academic record.
	OpListRecords Operation = "records:list"
	// OpUpsertRecord covers creating or merging a student's record.
	OpUpsertRecord Operation = "records:upsert"
	// OpGetRecord covers reading one student's record; students may read
	// their own.
	OpGetRecord Operation = "records:get"
	// OpListStudents covers the teacher roster view.
	OpListStudents Operation = "students:list"
	// OpGetStudentDetail covers the teacher view of one student's record.
	OpGetStudentDetail Operation = "students:detail"
)

// Identity is the authenticated caller as established by the session
// credential.
type Identity struct {
	ID   string
	Role models.UserRole
}

type rule struct {
	roles     map[models.UserRole]struct{}
	allowSelf bool
}

func roles(rs ...models.UserRole) map[models.UserRole]struct{} {
	set := make(map[models.UserRole]struct{}, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}

// rules is the complete decision table. Operations not listed here deny for
// every caller.
var rules = map[Operation]rule{
	OpListRecords:      {roles: roles(models.RoleAdmin, models.RoleTeacher)},
	OpUpsertRecord:     {roles: roles(models.RoleTeacher)},
	OpGetRecord:        {roles: roles(models.RoleAdmin, models.RoleTeacher), allowSelf: true},
	OpListStudents:     {roles: roles(models.RoleTeacher)},
	OpGetStudentDetail: {roles: roles(models.RoleTeacher)},
}

// Authorize decides whether identity may perform op against target. It is
// pure and total: a nil identity or an unknown operation always denies, and
// the same inputs always yield the same decision. target is the student id
// the operation addresses, or empty for collection-level operations.
func Authorize(identity *Identity, op Operation, target string) bool {
	if identity == nil {
		return false
	}

	r, ok := rules[op]
	if !ok {
		return false
	}

	if _, ok := r.roles[identity.Role]; ok {
		return true
	}

	if r.allowSelf && identity.Role == models.RoleStudent && target != "" && identity.ID == target {
		return true
	}

	return false
}

// FromClaims derives the gate identity from session claims.
func FromClaims(claims *models.JWTClaims) *Identity {
	if claims == nil {
		return nil
	}
	return &Identity{ID: claims.UserID, Role: claims.Role}
}

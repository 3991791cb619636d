package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khushijha-kj/signvibe-api/internal/models"
)

func TestAuthorizeTable(t *testing.T) {
	student := &Identity{ID: "s1", Role: models.RoleStudent}
	teacher := &Identity{ID: "t1", Role: models.RoleTeacher}
	parent := &Identity{ID: "p1", Role: models.RoleParent}
	admin := &Identity{ID: "a1", Role: models.RoleAdmin}

	cases := []struct {
		name     string
		identity *Identity
		op       Operation
		target   string
		want     bool
	}{
		{"admin lists records", admin, OpListRecords, "", true},
		{"teacher lists records", teacher, OpListRecords, "", true},
		{"student denied list records", student, OpListRecords, "", false},
		{"parent denied list records", parent, OpListRecords, "", false},

		{"teacher upserts", teacher, OpUpsertRecord, "s1", true},
		{"admin denied upsert", admin, OpUpsertRecord, "s1", false},
		{"student denied upsert even for self", student, OpUpsertRecord, "s1", false},

		{"admin reads any record", admin, OpGetRecord, "s1", true},
		{"teacher reads any record", teacher, OpGetRecord, "s1", true},
		{"student reads own record", student, OpGetRecord, "s1", true},
		{"student denied other record", student, OpGetRecord, "s2", false},
		{"parent denied record read", parent, OpGetRecord, "p1", false},

		{"teacher lists students", teacher, OpListStudents, "", true},
		{"admin denied list students", admin, OpListStudents, "", false},
		{"student denied list students", student, OpListStudents, "", false},

		{"teacher views student detail", teacher, OpGetStudentDetail, "s1", true},
		{"admin denied student detail", admin, OpGetStudentDetail, "s1", false},
		{"student denied own detail view", student, OpGetStudentDetail, "s1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Authorize(tc.identity, tc.op, tc.target))
		})
	}
}

func TestAuthorizeIsTotal(t *testing.T) {
	identities := []*Identity{
		nil,
		{ID: "s1", Role: models.RoleStudent},
		{ID: "t1", Role: models.RoleTeacher},
		{ID: "p1", Role: models.RoleParent},
		{ID: "a1", Role: models.RoleAdmin},
		{ID: "x1", Role: models.UserRole("ghost")},
	}
	ops := []Operation{OpListRecords, OpUpsertRecord, OpGetRecord, OpListStudents, OpGetStudentDetail, Operation("unknown")}
	targets := []string{"", "s1", "other"}

	for _, id := range identities {
		for _, op := range ops {
			for _, target := range targets {
				first := Authorize(id, op, target)
				second := Authorize(id, op, target)
				assert.Equal(t, first, second, "decision must be deterministic for %v/%s/%s", id, op, target)
			}
		}
	}
}

func TestAuthorizeDeniesAbsentIdentity(t *testing.T) {
	for op := range rules {
		assert.False(t, Authorize(nil, op, "s1"))
	}
}

func TestAuthorizeUnknownOperationDenies(t *testing.T) {
	admin := &Identity{ID: "a1", Role: models.RoleAdmin}
	assert.False(t, Authorize(admin, Operation("records:purge"), ""))
}

func TestFromClaims(t *testing.T) {
	assert.Nil(t, FromClaims(nil))

	id := FromClaims(&models.JWTClaims{UserID: "u1", Role: models.RoleTeacher})
	assert.Equal(t, "u1", id.ID)
	assert.Equal(t, models.RoleTeacher, id.Role)
}

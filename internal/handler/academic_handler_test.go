package handler

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/khushijha-kj/signvibe-api/internal/models"
	"github.com/khushijha-kj/signvibe-api/internal/service"
	"github.com/khushijha-kj/signvibe-api/pkg/export"
)

type memRecordRepo struct {
	details map[string]*models.AcademicDetail
}

func newMemRecordRepo() *memRecordRepo {
	return &memRecordRepo{details: make(map[string]*models.AcademicDetail)}
}

func (m *memRecordRepo) ListWithStudents(ctx context.Context) ([]models.AcademicDetail, error) {
	out := []models.AcademicDetail{}
	for _, d := range m.details {
		out = append(out, *d)
	}
	return out, nil
}

func (m *memRecordRepo) GetByStudent(ctx context.Context, studentID string) (*models.AcademicDetail, error) {
	if d, ok := m.details[studentID]; ok {
		copy := *d
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *memRecordRepo) Upsert(ctx context.Context, req models.UpsertAcademicRequest) (*models.AcademicRecord, error) {
	rec := &models.AcademicRecord{ID: "rec-1", StudentID: req.Student, Grades: models.GradeList{}, SubjectsEnrolled: models.StringList{}}
	if req.AssignedVideos != nil {
		rec.AssignedVideos = *req.AssignedVideos
	}
	if req.WatchedVideos != nil {
		rec.WatchedVideos = *req.WatchedVideos
	}
	return rec, nil
}

type stubRenderer struct{}

func (stubRenderer) Render(card export.ReportCard) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func teacherClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: "t1", Email: "t@x.com", Role: models.RoleTeacher}
}

func studentClaims(id string) *models.JWTClaims {
	return &models.JWTClaims{UserID: id, Email: id + "@x.com", Role: models.RoleStudent}
}

func newAcademicRouter(claims *models.JWTClaims, users *memUserRepo, records *memRecordRepo) *gin.Engine {
	svc := service.NewAcademicService(users, records, stubRenderer{}, zap.NewNop())
	h := NewAcademicHandler(svc)

	router := gin.New()
	router.Use(withClaims(claims))
	router.GET("/acad/student", h.ListRecords)
	router.GET("/acad/student/:id", h.GetByStudent)
	router.POST("/acad/teacher", h.Upsert)
	router.GET("/acad/teacher/students", h.ListStudents)
	router.GET("/acad/teacher/student/:id", h.StudentDetail)
	router.GET("/acad/teacher/student/:id/report", h.ExportReport)
	return router
}

func seededRepos() (*memUserRepo, *memRecordRepo) {
	users := newMemUserRepo()
	users.users["s1"] = &models.User{ID: "s1", Name: "Alice", Email: "alice@x.com", Role: models.RoleStudent}
	records := newMemRecordRepo()
	records.details["s1"] = &models.AcademicDetail{
		ID:             "r1",
		AssignedVideos: 4,
		WatchedVideos:  2,
		Grades:         models.GradeList{{Subject: "Math", Grade: "A"}},
		Student:        models.StudentSummary{ID: "s1", Name: "Alice", Email: "alice@x.com"},
	}
	return users, records
}

func TestListRecordsHandler(t *testing.T) {
	users, records := seededRepos()
	router := newAcademicRouter(teacherClaims(), users, records)

	w := performJSON(t, router, http.MethodGet, "/acad/student", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Contains(t, body, "academics")
	assert.Len(t, body["academics"], 1)
}

func TestListRecordsHandlerForbidden(t *testing.T) {
	users, records := seededRepos()
	router := newAcademicRouter(studentClaims("s1"), users, records)

	w := performJSON(t, router, http.MethodGet, "/acad/student", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied.", decodeBody(t, w)["error"])
}

func TestUpsertHandler(t *testing.T) {
	users, records := seededRepos()
	router := newAcademicRouter(teacherClaims(), users, records)

	w := performJSON(t, router, http.MethodPost, "/acad/teacher", `{"student":"s1","assignedVideos":5}`)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Contains(t, body, "academic")
	academic := body["academic"].(map[string]interface{})
	assert.Equal(t, float64(5), academic["assignedVideos"])
}

func TestUpsertHandlerInvalidJSON(t *testing.T) {
	users, records := seededRepos()
	router := newAcademicRouter(teacherClaims(), users, records)

	w := performJSON(t, router, http.MethodPost, "/acad/teacher", `{"student":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}

func TestUpsertHandlerStudentNotFound(t *testing.T) {
	users, records := seededRepos()
	router := newAcademicRouter(teacherClaims(), users, records)

	w := performJSON(t, router, http.MethodPost, "/acad/teacher", `{"student":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Student not found.", decodeBody(t, w)["error"])
}

func TestGetByStudentHandlerSelf(t *testing.T) {
	users, records := seededRepos()
	router := newAcademicRouter(studentClaims("s1"), users, records)

	w := performJSON(t, router, http.MethodGet, "/acad/student/s1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	academic := body["academic"].(map[string]interface{})
	student := academic["student"].(map[string]interface{})
	assert.Equal(t, "Alice", student["name"])
}

func TestGetByStudentHandlerOtherStudentForbidden(t *testing.T) {
	users, records := seededRepos()
	router := newAcademicRouter(studentClaims("s2"), users, records)

	w := performJSON(t, router, http.MethodGet, "/acad/student/s1", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied.", decodeBody(t, w)["error"])
}

func TestGetByStudentHandlerRecordNotFound(t *testing.T) {
	users, _ := seededRepos()
	router := newAcademicRouter(teacherClaims(), users, newMemRecordRepo())

	w := performJSON(t, router, http.MethodGet, "/acad/student/s1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Academic record not found.", decodeBody(t, w)["error"])
}

func TestListStudentsHandler(t *testing.T) {
	users, records := seededRepos()
	router := newAcademicRouter(teacherClaims(), users, records)

	w := performJSON(t, router, http.MethodGet, "/acad/teacher/students", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Contains(t, body, "students")
	assert.Len(t, body["students"], 1)
}

func TestStudentDetailHandlerMissingStudent(t *testing.T) {
	users, records := seededRepos()
	router := newAcademicRouter(teacherClaims(), users, records)

	w := performJSON(t, router, http.MethodGet, "/acad/teacher/student/ghost", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Student not found.", decodeBody(t, w)["error"])
}

func TestExportReportHandler(t *testing.T) {
	users, records := seededRepos()
	router := newAcademicRouter(teacherClaims(), users, records)

	w := performJSON(t, router, http.MethodGet, "/acad/teacher/student/s1/report", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "report-s1.pdf")
	assert.Equal(t, "%PDF-stub", w.Body.String())
}

func TestAcademicEndpointsDenyAnonymous(t *testing.T) {
	users, records := seededRepos()
	router := newAcademicRouter(nil, users, records)

	for _, path := range []string{"/acad/student", "/acad/student/s1", "/acad/teacher/students"} {
		w := performJSON(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}
}

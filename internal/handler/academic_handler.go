package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khushijha-kj/signvibe-api/internal/authz"
	"github.com/khushijha-kj/signvibe-api/internal/models"
	"github.com/khushijha-kj/signvibe-api/internal/service"
	appErrors "github.com/khushijha-kj/signvibe-api/pkg/errors"
	"github.com/khushijha-kj/signvibe-api/pkg/response"
)

// AcademicHandler wires the academic record endpoints to the service.
type AcademicHandler struct {
	service *service.AcademicService
}

// NewAcademicHandler creates a new handler.
func NewAcademicHandler(svc *service.AcademicService) *AcademicHandler {
	return &AcademicHandler{service: svc}
}

// ListRecords godoc
// @Summary List all academic records
// @Description All records joined with student name/email, for admins and teachers
// @Tags Academics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Router /acad/student [get]
func (h *AcademicHandler) ListRecords(c *gin.Context) {
	identity := authz.FromClaims(claimsFromContext(c))

	academics, err := h.service.ListRecords(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"academics": academics})
}

// Upsert godoc
// @Summary Assign or update a student's academic record
// @Description Merge-upsert: only provided fields overwrite, record created if absent
// @Tags Academics
// @Accept json
// @Produce json
// @Param payload body models.UpsertAcademicRequest true "Academic fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /acad/teacher [post]
func (h *AcademicHandler) Upsert(c *gin.Context) {
	identity := authz.FromClaims(claimsFromContext(c))

	var req models.UpsertAcademicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Invalid academic payload."))
		return
	}

	academic, err := h.service.Upsert(c.Request.Context(), identity, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"academic": academic})
}

// GetByStudent godoc
// @Summary Get one student's academic record
// @Description Readable by admins, teachers, and the student themselves
// @Tags Academics
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /acad/student/{id} [get]
func (h *AcademicHandler) GetByStudent(c *gin.Context) {
	identity := authz.FromClaims(claimsFromContext(c))

	academic, err := h.service.GetByStudent(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"academic": academic})
}

// ListStudents godoc
// @Summary List all students
// @Description Roster of students projected to id/name/email, for teachers
// @Tags Academics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Router /acad/teacher/students [get]
func (h *AcademicHandler) ListStudents(c *gin.Context) {
	identity := authz.FromClaims(claimsFromContext(c))

	students, err := h.service.ListStudents(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"students": students})
}

// StudentDetail godoc
// @Summary Teacher view of one student's academic record
// @Tags Academics
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /acad/teacher/student/{id} [get]
func (h *AcademicHandler) StudentDetail(c *gin.Context) {
	identity := authz.FromClaims(claimsFromContext(c))

	academic, err := h.service.StudentDetail(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"academic": academic})
}

// ExportReport godoc
// @Summary Download a student's report card as PDF
// @Tags Academics
// @Produce application/pdf
// @Param id path string true "Student id"
// @Success 200 {file} binary
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /acad/teacher/student/{id}/report [get]
func (h *AcademicHandler) ExportReport(c *gin.Context) {
	identity := authz.FromClaims(claimsFromContext(c))

	pdf, err := h.service.ExportReport(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=report-%s.pdf", c.Param("id")))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

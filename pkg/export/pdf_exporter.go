package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// ReportCard is the render-ready view of one student's academic record.
type ReportCard struct {
	StudentName      string
	StudentEmail     string
	AssignedVideos   int
	WatchedVideos    int
	Grades           []GradeLine
	SubjectsEnrolled []string
}

// GradeLine is one subject/grade pair on the report card.
type GradeLine struct {
	Subject string
	Grade   string
}

// PDFExporter renders academic report cards.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a one-page PDF report card for a student.
func (e *PDFExporter) Render(card ReportCard) ([]byte, error) {
	if card.StudentName == "" {
		return nil, fmt.Errorf("report card requires a student name")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, strings.ToUpper("Academic Report Card"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Student: %s", card.StudentName), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Email: %s", card.StudentEmail), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Videos watched: %d of %d assigned", card.WatchedVideos, card.AssignedVideos), "", 1, "", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 8, "Subject", "1", 0, "C", false, 0, "")
	pdf.CellFormat(95, 8, "Grade", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, line := range card.Grades {
		pdf.CellFormat(95, 7, line.Subject, "1", 0, "", false, 0, "")
		pdf.CellFormat(95, 7, line.Grade, "1", 1, "", false, 0, "")
	}
	if len(card.Grades) == 0 {
		pdf.CellFormat(190, 7, "No grades recorded yet", "1", 1, "C", false, 0, "")
	}

	if len(card.SubjectsEnrolled) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 8, "Subjects enrolled", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 6, strings.Join(card.SubjectsEnrolled, ", "), "", "", false)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

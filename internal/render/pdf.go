package render

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/sahayak/internal/studymaterial"
	"github.com/abhisek/sahayak/internal/worksheet"
)

// PDFConfig controls the shared page layout of generated PDFs.
type PDFConfig struct {
	PageSize   string
	MarginsMM  float64
	FontFamily string
}

// DefaultPDFConfig returns the standard A4 layout.
func DefaultPDFConfig() PDFConfig {
	return PDFConfig{
		PageSize:   "A4",
		MarginsMM:  18,
		FontFamily: "Helvetica",
	}
}

// PDFRenderer turns validated documents into PDF byte streams.
type PDFRenderer struct {
	cfg   PDFConfig
	title cases.Caser
}

// NewPDFRenderer creates a renderer with the given layout config.
func NewPDFRenderer(cfg PDFConfig) *PDFRenderer {
	return &PDFRenderer{
		cfg:   cfg,
		title: cases.Title(language.English),
	}
}

func (r *PDFRenderer) newDoc() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", r.cfg.PageSize, "")
	pdf.SetMargins(r.cfg.MarginsMM, r.cfg.MarginsMM, r.cfg.MarginsMM)
	pdf.SetAutoPageBreak(true, r.cfg.MarginsMM)
	return pdf
}

// RenderWorksheet produces the worksheet PDF: header, Part A
// fill-in-the-blanks, Part B short answers, then an answer key on a
// fresh page.
func (r *PDFRenderer) RenderWorksheet(ws *worksheet.Worksheet) ([]byte, error) {
	pdf := r.newDoc()
	pdf.SetTitle(ws.Title, true)
	pdf.AddPage()

	// ---------- header ----------
	pdf.SetFont(r.cfg.FontFamily, "B", 20)
	pdf.CellFormat(0, 12, ws.Title, "", 1, "C", false, 0, "")

	pdf.SetFont(r.cfg.FontFamily, "", 12)
	pdf.SetTextColor(110, 110, 110)
	meta := fmt.Sprintf("Grade %d - %s", ws.GradeLevel, r.title.String(ws.Subject))
	pdf.CellFormat(0, 8, meta, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.CellFormat(0, 8, "Name: _________________________    Date: _____________", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// ---------- Part A ----------
	r.sectionTitle(pdf, "Part A: Fill in the Blanks")
	pdf.SetFont(r.cfg.FontFamily, "", 12)
	for i, q := range ws.FillInBlanks {
		pdf.MultiCell(0, 7, fmt.Sprintf("%d. %s", i+1, q.QuestionText), "", "L", false)
		pdf.Ln(2)
	}
	pdf.Ln(4)

	// ---------- Part B ----------
	r.sectionTitle(pdf, "Part B: Short Answer Questions")
	pdf.SetFont(r.cfg.FontFamily, "", 12)
	for i, q := range ws.ShortAnswers {
		pdf.MultiCell(0, 7, fmt.Sprintf("%d. %s", i+1, q.Question), "", "L", false)
		pdf.Ln(2)
		for range 3 {
			pdf.CellFormat(0, 7, "", "B", 1, "L", false, 0, "")
			pdf.Ln(2)
		}
		pdf.Ln(2)
	}

	// ---------- answer key ----------
	pdf.AddPage()
	pdf.SetFont(r.cfg.FontFamily, "B", 16)
	pdf.CellFormat(0, 12, "Answer Key", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	r.sectionTitle(pdf, "Part A: Fill in the Blanks")
	pdf.SetFont(r.cfg.FontFamily, "", 12)
	for i, q := range ws.FillInBlanks {
		pdf.MultiCell(0, 7, fmt.Sprintf("%d. %s", i+1, q.Answer), "", "L", false)
	}
	pdf.Ln(4)

	r.sectionTitle(pdf, "Part B: Short Answer Questions")
	pdf.SetFont(r.cfg.FontFamily, "", 12)
	for i, q := range ws.ShortAnswers {
		pdf.MultiCell(0, 7, fmt.Sprintf("%d. %s", i+1, q.Question), "", "L", false)
		pdf.SetFont(r.cfg.FontFamily, "I", 12)
		pdf.MultiCell(0, 7, fmt.Sprintf("Expected Answer: %s", q.ExpectedAnswer), "", "L", false)
		pdf.SetFont(r.cfg.FontFamily, "", 12)
		pdf.Ln(2)
	}

	return r.output(pdf)
}

// RenderStudyMaterial produces the study material PDF.
func (r *PDFRenderer) RenderStudyMaterial(sm *studymaterial.StudyMaterial) ([]byte, error) {
	pdf := r.newDoc()
	pdf.SetTitle(sm.Title, true)
	pdf.AddPage()

	pdf.SetFont(r.cfg.FontFamily, "B", 20)
	pdf.CellFormat(0, 12, sm.Title, "", 1, "C", false, 0, "")

	pdf.SetFont(r.cfg.FontFamily, "", 12)
	pdf.SetTextColor(110, 110, 110)
	meta := fmt.Sprintf("Grade %s - %s", sm.GradeLevel, r.title.String(sm.Subject))
	pdf.CellFormat(0, 8, meta, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	r.sectionTitle(pdf, "Overview")
	r.body(pdf, sm.Overview)

	r.sectionTitle(pdf, "Learning Objectives")
	r.body(pdf, sm.LearningObjectives)

	for i, sec := range sm.Sections {
		r.sectionTitle(pdf, fmt.Sprintf("%d. %s", i+1, sec.SectionTitle))
		r.body(pdf, sec.Content)
	}

	r.sectionTitle(pdf, "Key Concepts")
	r.body(pdf, sm.KeyConcepts)

	r.sectionTitle(pdf, "Practice Problems")
	r.body(pdf, sm.PracticeProblems)

	return r.output(pdf)
}

func (r *PDFRenderer) sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont(r.cfg.FontFamily, "B", 14)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func (r *PDFRenderer) body(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont(r.cfg.FontFamily, "", 12)
	pdf.MultiCell(0, 7, text, "", "L", false)
	pdf.Ln(4)
}

func (r *PDFRenderer) output(pdf *fpdf.Fpdf) ([]byte, error) {
	if pdf.Err() {
		return nil, fmt.Errorf("render PDF: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

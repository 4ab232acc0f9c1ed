package pdfexport

import (
	"bytes"
	"fmt"
	sessionapimodels "interview-prep-backend/models/api/session"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateSessionReport renders a one-page summary of a practice session.
func GenerateSessionReport(session sessionapimodels.Session) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateSessionReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.CellFormat(0, 10, "Practice Session Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(4)
	writeLine(pdf, fmt.Sprintf("Category: %s", session.Category))
	writeLine(pdf, fmt.Sprintf("Difficulty: %s", session.Difficulty))
	writeLine(pdf, fmt.Sprintf("Status: %s", session.StatusName))
	writeLine(pdf, fmt.Sprintf("Started: %s", session.StartedAt.Format("02.01.2006 15:04")))
	if session.CompletedAt != nil {
		writeLine(pdf, fmt.Sprintf("Completed: %s", session.CompletedAt.Format("02.01.2006 15:04")))
	}
	writeLine(pdf, fmt.Sprintf("Session score: %d", session.Score))

	questionText := make(map[string]string, len(session.Questions))
	for _, q := range session.Questions {
		questionText[q.QuestionID] = q.Text
	}

	for idx, answer := range session.Answers {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		writeLine(pdf, fmt.Sprintf("Question %d", idx+1))
		pdf.SetFont("Helvetica", "", 11)
		if text, ok := questionText[answer.QuestionID]; ok {
			pdf.MultiCell(0, 6, text, "", "L", false)
		}
		pdf.MultiCell(0, 6, fmt.Sprintf("Answer: %s", answer.AnswerText), "", "L", false)
		writeLine(pdf, fmt.Sprintf("Self rating: %d/5", answer.SelfRating))
		if answer.ConfidenceLevel != "" {
			writeLine(pdf, fmt.Sprintf("Confidence: %d (%s)", answer.ConfidenceScore, answer.ConfidenceLevel))
		}
		if answer.Feedback != "" {
			pdf.MultiCell(0, 6, fmt.Sprintf("Feedback: %s", answer.Feedback), "", "L", false)
		}
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLine(pdf *fpdf.Fpdf, text string) {
	pdf.CellFormat(0, 6, text, "", 1, "L", false, 0, "")
}

package services

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nguyenthenguyen/docx"

	"recruitment/interview-assistant/internal/models"
)

//go:embed templates/report.docx
var reportTemplate []byte

const (
	// FixedReportMaxScore is the denominator printed when the report is
	// configured to ignore the actual question count.
	FixedReportMaxScore = 50

	ReportContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	placeholderNotSpecified = "Not specified"
	placeholderNoAssessment = "No assessment available"
	placeholderNoTranscript = "No transcript available"
)

type MaxScoreMode string

const (
	MaxScoreDynamic MaxScoreMode = "dynamic"
	MaxScoreFixed   MaxScoreMode = "fixed"
)

// Report is a rendered interview report ready for download.
type Report struct {
	Filename string
	Content  []byte
}

// ReportRenderer turns a stored candidate into a Word document. Missing
// fields render as placeholder text; a candidate without analysis still
// produces a complete document.
type ReportRenderer interface {
	Render(view *models.CandidateView) (*Report, error)
}

type reportRenderer struct {
	mode MaxScoreMode
	now  func() time.Time
}

func NewReportRenderer(mode string) ReportRenderer {
	return &reportRenderer{
		mode: parseMaxScoreMode(mode),
		now:  time.Now,
	}
}

func parseMaxScoreMode(mode string) MaxScoreMode {
	if MaxScoreMode(strings.ToLower(strings.TrimSpace(mode))) == MaxScoreFixed {
		return MaxScoreFixed
	}
	return MaxScoreDynamic
}

func (r *reportRenderer) Render(view *models.CandidateView) (*Report, error) {
	if view == nil {
		return nil, errors.New("no candidate to render")
	}

	body := r.buildBody(view)

	tmpl, err := docx.ReadDocxFromMemory(bytes.NewReader(reportTemplate), int64(len(reportTemplate)))
	if err != nil {
		return nil, fmt.Errorf("failed to open report template: %w", err)
	}
	defer tmpl.Close()

	doc := tmpl.Editable()
	content, err := replaceBody(doc.GetContent(), body)
	if err != nil {
		return nil, err
	}
	doc.SetContent(content)

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	return &Report{
		Filename: r.filename(view),
		Content:  buf.Bytes(),
	}, nil
}

// MaxScore is the denominator shown next to the total score.
func (r *reportRenderer) MaxScore(questionCount int) int {
	if r.mode == MaxScoreFixed || questionCount == 0 {
		return FixedReportMaxScore
	}
	return models.MaxScore * questionCount
}

func (r *reportRenderer) buildBody(view *models.CandidateView) string {
	var w wordWriter
	analysis := view.Analysis

	w.paragraph("Title", true, "Interview Report")

	w.paragraph("Heading1", false, "Basic information")
	w.paragraph("", false, "Role: "+valueOr(view.RoleName, placeholderNotSpecified))
	w.paragraph("", false, "Candidate: "+valueOr(view.Name, placeholderNotSpecified))
	date := placeholderNotSpecified
	if view.InterviewDate != nil {
		date = view.InterviewDate.Format("2006-01-02")
	}
	w.paragraph("", false, "Interview date: "+date)
	total := 0
	if view.TotalScore != nil {
		total = *view.TotalScore
	}
	w.paragraph("", false, fmt.Sprintf("Total score: %d/%d", total, r.MaxScore(len(view.AllQuestions))))

	w.paragraph("Heading1", false, "Overall assessment")
	overall := placeholderNoAssessment
	if analysis != nil && strings.TrimSpace(analysis.OverallAssessment) != "" {
		overall = analysis.OverallAssessment
	}
	w.paragraph("", false, overall)

	w.paragraph("Heading1", false, "Questions and assessment")
	if analysis == nil || len(analysis.Questions) == 0 {
		w.paragraph("", false, placeholderNoAssessment)
	} else {
		for i, q := range analysis.Questions {
			w.paragraph("Heading2", false, fmt.Sprintf("Question %d", i+1))
			w.paragraph("", false, q.Question)
			w.paragraph("", false, fmt.Sprintf("Score: %d/%d", q.Score, models.MaxScore))
			w.paragraph("", false, "Summary: "+textOr(q.Summary, placeholderNotSpecified))
			w.paragraph("", false, "Assessment: "+textOr(q.Assessment, placeholderNoAssessment))
			if strings.TrimSpace(q.Quote) != "" {
				w.paragraph("Quote", false, `Quote: "`+q.Quote+`"`)
			}
		}
	}

	w.paragraph("Heading1", false, "Summarized transcript")
	summary := placeholderNoTranscript
	if analysis != nil && strings.TrimSpace(analysis.SummarizedTranscript) != "" {
		summary = analysis.SummarizedTranscript
	}
	w.paragraph("", false, summary)

	return w.String()
}

func (r *reportRenderer) filename(view *models.CandidateView) string {
	name := strings.TrimSpace(view.DisplayName())
	if name == "" {
		name = "candidate"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("interview_report_%s_%s.docx", name, r.now().Format("20060102"))
}

// replaceBody swaps everything between <w:body> and the section properties
// for the given paragraphs, keeping the template's page setup.
func replaceBody(documentXML, body string) (string, error) {
	start := strings.Index(documentXML, "<w:body>")
	end := strings.LastIndex(documentXML, "<w:sectPr")
	if start == -1 || end == -1 || end < start {
		return "", errors.New("report template has no document body")
	}
	start += len("<w:body>")
	return documentXML[:start] + body + documentXML[end:], nil
}

// wordWriter accumulates WordprocessingML paragraphs.
type wordWriter struct {
	buf strings.Builder
}

func (w *wordWriter) paragraph(style string, centered bool, text string) {
	w.buf.WriteString("<w:p>")
	if style != "" || centered {
		w.buf.WriteString("<w:pPr>")
		if style != "" {
			fmt.Fprintf(&w.buf, `<w:pStyle w:val="%s"/>`, style)
		}
		if centered {
			w.buf.WriteString(`<w:jc w:val="center"/>`)
		}
		w.buf.WriteString("</w:pPr>")
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	w.buf.WriteString("<w:r>")
	for i, line := range lines {
		if i > 0 {
			w.buf.WriteString("<w:br/>")
		}
		w.buf.WriteString(`<w:t xml:space="preserve">`)
		xml.EscapeText(&w.buf, []byte(line))
		w.buf.WriteString("</w:t>")
	}
	w.buf.WriteString("</w:r></w:p>")
}

func (w *wordWriter) String() string {
	return w.buf.String()
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return textOr(*s, fallback)
}

func textOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

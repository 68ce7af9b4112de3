package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DocumentExtractor turns an uploaded CV into plain text.
type DocumentExtractor interface {
	// Extract dispatches on the filename extension. For unreadable PDF/DOCX
	// files it returns a readable error message as the text together with an
	// *ExtractionError, so callers may keep the text or branch on the error.
	Extract(data []byte, filename string) (string, error)
}

type documentExtractor struct{}

func NewDocumentExtractor() DocumentExtractor {
	return &documentExtractor{}
}

func (d *documentExtractor) Extract(data []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			extractErr := &ExtractionError{Format: "PDF", Err: err}
			return extractErr.Error(), extractErr
		}
		return text, nil

	case ".docx":
		text, err := extractDocxText(data)
		if err != nil {
			extractErr := &ExtractionError{Format: "Word file", Err: err}
			return extractErr.Error(), extractErr
		}
		return text, nil

	case ".txt":
		return strings.ToValidUTF8(string(data), "�"), nil

	default:
		return "", &UnsupportedFormatError{Filename: filename}
	}
}

func extractPDFText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	for _, p := range paragraphs {
		textBuilder.WriteString(p)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

// docxParagraphs walks word/document.xml and returns the text of every <w:p>.
func docxParagraphs(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
		inPara     bool
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				current.Reset()
			case "t":
				inText = true
			case "tab":
				current.WriteString("\t")
			case "br", "cr":
				current.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inPara {
					paragraphs = append(paragraphs, current.String())
				}
				inPara = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}

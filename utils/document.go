package utils

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	// ErrUnsupportedFormat is returned for document types the extractor cannot read
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrExtractionFailure is returned when a supported document is unreadable
	ErrExtractionFailure = errors.New("failed to extract text")
)

// Supported document types
const (
	MIMEPDF   = "application/pdf"
	MIMEDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEPlain = "text/plain"
)

var extensionMIME = map[string]string{
	".pdf":  MIMEPDF,
	".docx": MIMEDOCX,
	".txt":  MIMEPlain,
}

// DocumentExtractor extracts plain text from uploaded resumes
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract returns the text of a PDF, DOCX or plain text document
func (e *DocumentExtractor) Extract(data []byte, mimeType string) (string, error) {
	var (
		text string
		err  error
	)

	switch normalizeMIME(mimeType) {
	case MIMEPDF:
		text, err = extractPDF(data)
	case MIMEDOCX:
		text, err = extractDOCX(data)
	case MIMEPlain:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: text is not valid UTF-8", ErrExtractionFailure)
		}
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimeType)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: document contains no text", ErrExtractionFailure)
	}
	return text, nil
}

// ExtractFile reads an uploaded file and extracts its text. It returns the
// resolved MIME type and the raw bytes alongside the text.
func (e *DocumentExtractor) ExtractFile(header *multipart.FileHeader) (string, string, []byte, error) {
	file, err := header.Open()
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: failed to open upload: %w", ErrExtractionFailure, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: failed to read upload: %w", ErrExtractionFailure, err)
	}

	mimeType := ResolveMIME(data, header.Header.Get("Content-Type"), header.Filename)
	text, err := e.Extract(data, mimeType)
	return text, mimeType, data, err
}

// IsSupportedFormat reports whether mimeType can be extracted
func (e *DocumentExtractor) IsSupportedFormat(mimeType string) bool {
	switch normalizeMIME(mimeType) {
	case MIMEPDF, MIMEDOCX, MIMEPlain:
		return true
	}
	return false
}

// ResolveMIME picks the document type of an upload. A specific declared type
// wins; otherwise the file extension is used, then content sniffing.
func ResolveMIME(data []byte, declared, filename string) string {
	declared = normalizeMIME(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	if byExt, ok := extensionMIME[strings.ToLower(filepath.Ext(filename))]; ok {
		return byExt
	}

	return DetectMIME(data, declared)
}

// DetectMIME sniffs the content type when declared is empty or generic
func DetectMIME(data []byte, declared string) string {
	declared = normalizeMIME(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return normalizeMIME(mimetype.Detect(data).String())
}

func normalizeMIME(mimeType string) string {
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		return ""
	}
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil {
		return strings.ToLower(mediaType)
	}
	return strings.ToLower(mimeType)
}

func extractPDF(data []byte) (text string, err error) {
	// the parser panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: malformed PDF: %v", ErrExtractionFailure, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailure, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailure, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailure, err)
	}
	return buf.String(), nil
}

// extractDOCX loads the package with the docx reader and joins the text runs
// of the main document, one line per paragraph
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailure, err)
	}
	defer doc.Close()

	return documentText(doc.Editable().GetContent())
}

// documentText walks WordprocessingML markup and keeps the w:t runs
func documentText(content string) (string, error) {
	var sb strings.Builder
	decoder := xml.NewDecoder(strings.NewReader(content))
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrExtractionFailure, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}

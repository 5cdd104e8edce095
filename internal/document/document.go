// Package document turns uploaded CVs and job descriptions into plain text.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// Format is a supported input format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
	FormatText Format = "text"
)

var (
	ErrUnsupported = errors.New("unsupported document format")
	ErrEmpty       = errors.New("no text content found")
)

// Detect picks a format from the file extension, falling back to content
// sniffing when the extension is missing or unknown.
func Detect(name string, data []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".txt", ".text", ".md":
		return FormatText, nil
	case ".doc", ".docx", ".odt", ".rtf":
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(name))
	}

	ct := http.DetectContentType(data)
	switch {
	case strings.HasPrefix(ct, "application/pdf"):
		return FormatPDF, nil
	case strings.HasPrefix(ct, "text/html"):
		return FormatHTML, nil
	case strings.HasPrefix(ct, "text/plain"):
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupported, ct)
}

// Extract returns the text of data, whose format is derived from name.
func Extract(name string, data []byte) (string, error) {
	format, err := Detect(name, data)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = pdfText(data)
	case FormatHTML:
		text, err = htmlText(data)
	default:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: text is not valid UTF-8", ErrUnsupported)
		}
		text = string(data)
	}
	if err != nil {
		return "", err
	}

	text = cleanLines(text)
	if text == "" {
		return "", ErrEmpty
	}
	return text, nil
}

// ExtractFile reads path and extracts its text.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Extract(path, data)
}

func pdfText(data []byte) (text string, err error) {
	// The PDF reader panics on some malformed inputs.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("failed to parse PDF: %v", p)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

var blockSelector = "p, div, section, article, header, footer, li, tr, h1, h2, h3, h4, h5, h6, br"

func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav").Remove()
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("- ")
	})
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml("\n")
	})

	return doc.Find("body").Text(), nil
}

func cleanLines(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

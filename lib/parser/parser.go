package parser

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/pkg/errors"
)

// ExtractText вытаскивает текст из резюме по content type:
// PDF, DOCX или plain text. Всё неопознанное читается как UTF-8.
func ExtractText(data []byte, contentType string) (string, error) {
	switch {
	case strings.Contains(contentType, "pdf"):
		return extractPDF(data)
	case strings.Contains(contentType, "wordprocessingml"),
		strings.Contains(contentType, "msword"),
		strings.Contains(contentType, "officedocument"):
		return extractDOCX(data)
	default:
		return string(data), nil
	}
}

func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("extractPDF panic recover: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, "ошибка чтения pdf")
	}
	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", errors.Wrap(err, "ошибка извлечения текста из pdf")
	}
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(plainText); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, "ошибка чтения docx")
	}
	defer doc.Close()
	content := doc.Editable().GetContent()
	// содержимое приходит как document.xml, текст отделяем от разметки
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	return strings.TrimSpace(content), nil
}

package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Ширина колонки переноса для PDF, мм. Контент режется по ней до записи.
const pdfColumnWidth = 180.0

const defaultFilename = "munga_export"

// Exporter — чистые преобразования (content, title) -> файл: .txt, .md,
// .pdf. Без сети и без состояния; скачивание инициирует вызывающий слой.
type Exporter struct {
	FontPath string // путь до TTF для не-латинских текстов; пусто — Helvetica
	fontName string
}

func NewExporter(fontPath string) *Exporter {
	e := &Exporter{FontPath: fontPath, fontName: "Helvetica"}
	if fontPath != "" {
		e.fontName = "DejaVu"
	}
	return e
}

// Text — .txt байт-в-байт повторяет контент.
func (e *Exporter) Text(content string) []byte {
	return []byte(content)
}

// Markdown — .md байт-в-байт повторяет контент.
func (e *Exporter) Markdown(content string) []byte {
	return []byte(content)
}

// PDF — контент переносится по фиксированной ширине колонки и пишется
// построчно; title уходит в метаданные документа.
func (e *Exporter) PDF(content, title string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetAuthor("INTELIGENT MUNGA", false)
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)

	if e.FontPath != "" {
		pdf.AddUTF8Font(e.fontName, "", e.FontPath)
	}
	pdf.SetFont(e.fontName, "", 11)
	pdf.AddPage()

	for _, paragraph := range strings.Split(content, "\n") {
		if paragraph == "" {
			pdf.Ln(5)
			continue
		}
		for _, line := range pdf.SplitText(paragraph, pdfColumnWidth) {
			pdf.CellFormat(pdfColumnWidth, 5, line, "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename — имя файла из пользовательского заголовка; пустой заголовок
// получает дефолт. Разделители путей и пробелы заменяются подчёркиванием.
func Filename(title, ext string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = defaultFilename
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", " ", "_", "..", "_")
	return replacer.Replace(title) + "." + ext
}

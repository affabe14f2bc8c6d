package question

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/saulo-duarte/banco-questoes/internal/editor"
	util "github.com/saulo-duarte/banco-questoes/internal/utils"
)

const (
	utf8BOM      = "\ufeff"
	tagSeparator = "; "
	CSVMediaType = "text/csv; charset=utf-8"
	exportPrefix = "questoes_"
	exportSuffix = ".csv"
)

var ErrNothingToExport = errors.New("no questions to export")

var csvHeader = []string{
	"ID",
	"Professor",
	"Disciplina",
	"Tags",
	"Enunciado",
	"Opção A",
	"Opção B",
	"Opção C",
	"Opção D",
	"Opção E",
	"Resposta Correta",
	"Data de Criação",
}

// OptionLetter maps a zero-based option index to its letter (0 -> "A").
func OptionLetter(index int) string {
	return editor.OptionLabel(index)
}

func ExportFileName(now time.Time) string {
	return exportPrefix + util.ISODate(now) + exportSuffix
}

func csvRow(q Question) []string {
	row := []string{
		q.ID,
		q.AuthorName,
		q.Category,
		strings.Join(q.Tags, tagSeparator),
		q.Statement,
	}
	for i := 0; i < OptionCount; i++ {
		opt := ""
		if i < len(q.Options) {
			opt = q.Options[i]
		}
		row = append(row, opt)
	}
	return append(row, OptionLetter(q.CorrectOption), util.FormatDateBR(q.CreatedAt))
}

// ExportCSV writes a BOM-prefixed CSV where every field is quoted and inner
// quotes are doubled. Rows are separated by "\n" with no trailing newline.
func ExportCSV(w io.Writer, questions []Question) error {
	if len(questions) == 0 {
		return ErrNothingToExport
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(utf8BOM); err != nil {
		return err
	}
	if err := writeRecord(bw, csvHeader); err != nil {
		return err
	}
	for _, q := range questions {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		if err := writeRecord(bw, csvRow(q)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRecord(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return nil
}

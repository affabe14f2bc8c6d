package editor

import (
	"errors"
	"fmt"
	"html"
	"strings"
)

type Format string

const (
	Bold      Format = "bold"
	Italic    Format = "italic"
	Underline Format = "underline"
)

var (
	ErrEmptySelection   = errors.New("nenhum trecho selecionado")
	ErrInvalidSelection = errors.New("seleção fora do enunciado")
	ErrUnknownFormat    = errors.New("formatação desconhecida")
)

var formatTags = map[Format]string{
	Bold:      "strong",
	Italic:    "em",
	Underline: "u",
}

func (f Format) IsValid() bool {
	_, ok := formatTags[f]
	return ok
}

// ApplyFormat wraps the rune range [start, end) of statement in the markup
// tag for format.
func ApplyFormat(statement string, start, end int, format Format) (string, error) {
	tag, ok := formatTags[format]
	if !ok {
		return statement, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	runes := []rune(statement)
	if start < 0 || end > len(runes) || start > end {
		return statement, ErrInvalidSelection
	}
	if start == end {
		return statement, ErrEmptySelection
	}

	var b strings.Builder
	b.WriteString(string(runes[:start]))
	b.WriteString("<" + tag + ">")
	b.WriteString(string(runes[start:end]))
	b.WriteString("</" + tag + ">")
	b.WriteString(string(runes[end:]))
	return b.String(), nil
}

func imageTag(src, alt string) string {
	return fmt.Sprintf(`<br><img src="%s" alt="%s" style="max-width: 100%%; height: auto;" /><br>`,
		html.EscapeString(src), alt)
}

// AppendImageURL appends an image reference to the end of the statement. An
// empty URL leaves the statement unchanged.
func AppendImageURL(statement, url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return statement
	}
	return statement + imageTag(url, "Imagem")
}

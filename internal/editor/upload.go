package editor

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const MaxUploadSize = 5 << 20

var (
	ErrNotAnImage    = errors.New("Por favor, selecione apenas arquivos de imagem.")
	ErrImageTooLarge = errors.New("A imagem deve ter no máximo 5MB.")
)

type Upload struct {
	MediaType string
	Data      []byte
}

// DeclaredMediaType is the client-declared type, lowercased and without
// parameters.
func (u Upload) DeclaredMediaType() string {
	declared, _, _ := strings.Cut(u.MediaType, ";")
	return strings.ToLower(strings.TrimSpace(declared))
}

// Check requires a declared image/* type. Sniffing can only reject: bytes
// recognised as some other known format fail even under an image declaration.
func (u Upload) Check() error {
	if !strings.HasPrefix(u.DeclaredMediaType(), "image/") {
		return ErrNotAnImage
	}
	if detected := mimetype.Detect(u.Data); !detected.Is("application/octet-stream") &&
		!strings.HasPrefix(detected.String(), "image/") {
		return ErrNotAnImage
	}
	if len(u.Data) > MaxUploadSize {
		return ErrImageTooLarge
	}
	return nil
}

func (u Upload) DataURI() string {
	return "data:" + u.DeclaredMediaType() + ";base64," + base64.StdEncoding.EncodeToString(u.Data)
}

// AppendUpload embeds an uploaded image as a data URI. A rejected upload
// returns the statement unchanged together with the reason.
func AppendUpload(statement string, u Upload) (string, error) {
	if err := u.Check(); err != nil {
		return statement, err
	}
	return statement + imageTag(u.DataURI(), "Imagem enviada"), nil
}

// ReadUpload reads at most one byte past MaxUploadSize so oversized files are
// detected without buffering them whole.
func ReadUpload(fh *multipart.FileHeader) (Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return Upload{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadSize+1))
	if err != nil {
		return Upload{}, fmt.Errorf("failed to read upload: %w", err)
	}
	return Upload{MediaType: fh.Header.Get("Content-Type"), Data: data}, nil
}

package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const OptionCount = 5

var (
	ErrRequiredFields       = errors.New("Por favor, preencha todos os campos obrigatórios")
	ErrInvalidOptionCount   = errors.New("a questão deve ter exatamente 5 alternativas")
	ErrInvalidCorrectOption = errors.New("a alternativa correta deve estar entre A e E")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// QuestionForm is what a teacher submits. Identity, authorship and creation
// time are stamped by the caller.
type QuestionForm struct {
	Category      string   `json:"category" validate:"notblank"`
	Tags          []string `json:"tags"`
	Statement     string   `json:"statement" validate:"notblank"`
	Options       []string `json:"options" validate:"len=5,dive,notblank"`
	CorrectOption int      `json:"correctOption" validate:"min=0,max=4"`
}

func NewQuestionForm() QuestionForm {
	return QuestionForm{Options: make([]string, OptionCount)}
}

func (f QuestionForm) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing []string
	for _, fe := range verrs {
		switch {
		case fe.StructField() == "Options" && fe.Tag() == "len":
			return ErrInvalidOptionCount
		case fe.StructField() == "CorrectOption":
			return ErrInvalidCorrectOption
		default:
			missing = append(missing, fe.Namespace())
		}
	}
	return fmt.Errorf("%w: %s", ErrRequiredFields, strings.Join(missing, ", "))
}

// IsValidationError reports whether err came from form validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrRequiredFields) ||
		errors.Is(err, ErrInvalidOptionCount) ||
		errors.Is(err, ErrInvalidCorrectOption)
}

// OptionLabel is the letter shown next to an option (0 -> "A").
func OptionLabel(index int) string {
	return string(rune('A' + index))
}

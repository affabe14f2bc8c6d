package teacher

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrFieldsRequired = errors.New("Por favor, preencha todos os campos")
	ErrInvalidEmail   = errors.New("e-mail inválido")
)

var validate = validator.New()

type TeacherRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func (r *TeacherRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

// Validate trims the request and reports missing fields before a malformed
// e-mail.
func (r *TeacherRequest) Validate() error {
	r.normalize()

	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return ErrFieldsRequired
		}
	}
	return ErrInvalidEmail
}

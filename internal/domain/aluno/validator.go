package aluno

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Messages mirror the dashboard form: one human-readable sentence per
// violated constraint, first violation wins.
var fieldMessages = map[string]map[string]string{
	"Nome": {
		"required": "Nome deve ter no mínimo 2 caracteres",
		"min":      "Nome deve ter no mínimo 2 caracteres",
		"max":      "Nome muito longo",
	},
	"Email": {
		"required": "Email inválido",
		"email":    "Email inválido",
		"max":      "Email muito longo",
	},
	"Curso": {
		"required": "Curso deve ter no mínimo 2 caracteres",
		"min":      "Curso deve ter no mínimo 2 caracteres",
		"max":      "Curso muito longo",
	},
	"Idade": {
		"required": "Idade inválida",
		"min":      "Idade inválida",
		"max":      "Idade inválida",
	},
}

// ParsePayload builds a validated Payload from raw form input. Idade arrives
// as text and is parsed before validation. Returns *ValidationError on the
// first violated constraint.
func ParsePayload(nome, email, curso, idade string) (Payload, error) {
	idadeNum, err := strconv.Atoi(strings.TrimSpace(idade))
	if err != nil {
		return Payload{}, &ValidationError{Field: "Idade", Message: "Idade inválida"}
	}

	p := Payload{
		Nome:  strings.TrimSpace(nome),
		Email: strings.TrimSpace(email),
		Curso: strings.TrimSpace(curso),
		Idade: idadeNum,
	}

	if err := Validate(p); err != nil {
		return Payload{}, err
	}

	return p, nil
}

// Validate checks p against the record schema. Returns nil or a
// *ValidationError describing the first violated constraint.
func Validate(p Payload) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	validateErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validateErrs) == 0 {
		return &ValidationError{Message: "Verifique os dados e tente novamente."}
	}

	first := validateErrs[0]
	if msgs, ok := fieldMessages[first.Field()]; ok {
		if msg, ok := msgs[first.ActualTag()]; ok {
			return &ValidationError{Field: first.Field(), Message: msg}
		}
	}

	return &ValidationError{
		Field:   first.Field(),
		Message: "Campo " + first.Field() + " inválido",
	}
}

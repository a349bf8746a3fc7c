package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// createUserPayload usa punteros para distinguir "campo ausente" de
// "campo vacío": el contrato de alta exige que cada campo venga
// presente y sea texto.
type createUserPayload struct {
	UUID          *string `json:"uuid"` // si viene, se descarta: el id es server-side
	Name          *string `json:"name"`
	BranchName    *string `json:"branchName"`
	BranchAddress *string `json:"branchAddress"`
	Ailments      *string `json:"ailments"`
	PhoneNumber   *string `json:"phoneNumber"`
}

// DecodeCreateRequest valida campo por campo el payload externo de alta
// y lo traduce a CreateInput. Los errores identifican el campo que
// falló, no un "invalid object" genérico.
func DecodeCreateRequest(r io.Reader) (CreateInput, error) {
	var p createUserPayload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return CreateInput{}, decodeError(err)
	}

	for field, v := range map[string]*string{
		"name":          p.Name,
		"branchName":    p.BranchName,
		"branchAddress": p.BranchAddress,
		"ailments":      p.Ailments,
		"phoneNumber":   p.PhoneNumber,
	} {
		if v == nil {
			return CreateInput{}, fmt.Errorf("%w: %s must be a string", ErrInvalidInput, field)
		}
	}

	return CreateInput{
		Name:          *p.Name,
		BranchName:    *p.BranchName,
		BranchAddress: *p.BranchAddress,
		Ailments:      *p.Ailments,
		PhoneNumber:   *p.PhoneNumber,
	}, nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Errorf("%w: %s must be a %s", ErrInvalidInput, typeErr.Field, typeErr.Type)
	}
	return fmt.Errorf("%w: invalid json body", ErrInvalidInput)
}

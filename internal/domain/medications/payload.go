package medications

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// createMedicationPayload usa punteros para distinguir "campo ausente"
// de "campo en cero". amount y dosage son numéricos en el contrato
// canónico: un "500" como string se rechaza en el borde (los payloads
// legacy que aceptaban número-como-texto quedaron atrás).
type createMedicationPayload struct {
	UUID               *string  `json:"uuid"` // si viene, se descarta: el id es server-side
	PatientName        *string  `json:"patientName"`
	MedicationName     *string  `json:"medicationName"`
	ConsumptionDetails *string  `json:"consumptionDetails"`
	PrescriptionDate   *string  `json:"prescriptionDate"`
	ExpDate            *string  `json:"expDate"`
	Interval           *string  `json:"interval"`
	Amount             *float64 `json:"amount"`
	Dosage             *float64 `json:"dosage"`
	LastTakenDate      *string  `json:"lastTakenDate"` // opcional
}

// DecodeCreateRequest valida campo por campo el payload externo de alta.
// Los errores identifican el campo: "amount must be a float64", etc.
func DecodeCreateRequest(r io.Reader) (CreateInput, error) {
	var p createMedicationPayload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return CreateInput{}, decodeError(err)
	}

	for field, v := range map[string]*string{
		"patientName":        p.PatientName,
		"medicationName":     p.MedicationName,
		"consumptionDetails": p.ConsumptionDetails,
		"prescriptionDate":   p.PrescriptionDate,
		"expDate":            p.ExpDate,
		"interval":           p.Interval,
	} {
		if v == nil {
			return CreateInput{}, fmt.Errorf("%w: %s must be a string", ErrInvalidInput, field)
		}
	}
	if p.Amount == nil {
		return CreateInput{}, fmt.Errorf("%w: amount must be a number", ErrInvalidInput)
	}
	if p.Dosage == nil {
		return CreateInput{}, fmt.Errorf("%w: dosage must be a number", ErrInvalidInput)
	}

	in := CreateInput{
		PatientName:        *p.PatientName,
		MedicationName:     *p.MedicationName,
		ConsumptionDetails: *p.ConsumptionDetails,
		PrescriptionDate:   *p.PrescriptionDate,
		ExpDate:            *p.ExpDate,
		Interval:           *p.Interval,
		Amount:             *p.Amount,
		Dosage:             *p.Dosage,
	}
	if p.LastTakenDate != nil {
		in.LastTakenDate = *p.LastTakenDate
	}
	return in, nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Errorf("%w: %s must be a %s", ErrInvalidInput, typeErr.Field, typeErr.Type)
	}
	return fmt.Errorf("%w: invalid json body", ErrInvalidInput)
}

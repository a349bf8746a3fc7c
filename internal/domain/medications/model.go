package medications

import "fmt"

// Medication representa una prescripción de un paciente.
//
// patientName referencia users.name por valor (denormalizado, sin FK):
// renombrar al usuario deja sus prescripciones huérfanas. Limitación
// conocida del modelo, no se "arregla" acá.
type Medication struct {
	UUID               string  `json:"uuid"`
	PatientName        string  `json:"patientName"`
	MedicationName     string  `json:"medicationName"`
	ConsumptionDetails string  `json:"consumptionDetails"`
	PrescriptionDate   string  `json:"prescriptionDate"` // RFC3339 UTC
	ExpDate            string  `json:"expDate"`          // RFC3339 UTC
	Interval           string  `json:"interval"`         // texto libre: "every 8 hours"
	Amount             float64 `json:"amount"`
	Dosage             float64 `json:"dosage"`
	LastTakenDate      string  `json:"lastTakenDate"` // RFC3339 UTC, "" = nunca tomada
	HasTaken           bool    `json:"hasTaken"`
	ImgURL             string  `json:"img_url,omitempty"` // decorativo, asignado server-side
}

// ValidateStored chequea la forma rehidratada desde storage:
// el uuid ya tiene que venir asignado.
func (m Medication) ValidateStored() error {
	if m.UUID == "" {
		return fmt.Errorf("%w: stored medication missing uuid", ErrInvalidInput)
	}
	return nil
}

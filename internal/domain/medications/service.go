package medications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"med-reminder/internal/platform/dates"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("medication not found")
)

type Service struct {
	repo      Repository
	newID     func() string
	pickImage func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:      repo,
		newID:     uuid.NewString,
		pickImage: randomImageURL,
	}
}

type CreateInput struct {
	PatientName        string
	MedicationName     string
	ConsumptionDetails string
	PrescriptionDate   string
	ExpDate            string
	Interval           string
	Amount             float64
	Dosage             float64
	LastTakenDate      string // opcional; "" = nunca tomada
}

// Create valida y normaliza el alta de una prescripción.
// Todo-o-nada: cualquier fecha inválida aborta la construcción y no se
// persiste nada. El uuid y el img_url los asigna el server.
func (s *Service) Create(ctx context.Context, in CreateInput) (Medication, error) {
	for field, v := range map[string]string{
		"patientName":        in.PatientName,
		"medicationName":     in.MedicationName,
		"consumptionDetails": in.ConsumptionDetails,
		"interval":           in.Interval,
	} {
		if v == "" {
			return Medication{}, fmt.Errorf("%w: %s must be non-empty", ErrInvalidInput, field)
		}
	}

	prescription, err := dates.Normalize(in.PrescriptionDate)
	if err != nil {
		return Medication{}, fmt.Errorf("%w: prescriptionDate: %w", ErrInvalidInput, err)
	}
	exp, err := dates.Normalize(in.ExpDate)
	if err != nil {
		return Medication{}, fmt.Errorf("%w: expDate: %w", ErrInvalidInput, err)
	}

	// lastTakenDate es opcional en el alta: ausente = nunca tomada.
	// Si viene, se respeta y la prescripción nace con hasTaken=true.
	lastTaken := ""
	hasTaken := false
	if in.LastTakenDate != "" {
		lastTaken, err = dates.Normalize(in.LastTakenDate)
		if err != nil {
			return Medication{}, fmt.Errorf("%w: lastTakenDate: %w", ErrInvalidInput, err)
		}
		hasTaken = true
	}

	m := Medication{
		UUID:               s.newID(),
		PatientName:        in.PatientName,
		MedicationName:     in.MedicationName,
		ConsumptionDetails: in.ConsumptionDetails,
		PrescriptionDate:   prescription,
		ExpDate:            exp,
		Interval:           in.Interval,
		Amount:             in.Amount,
		Dosage:             in.Dosage,
		LastTakenDate:      lastTaken,
		HasTaken:           hasTaken,
		ImgURL:             s.pickImage(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientName string) ([]Medication, error) {
	if patientName == "" {
		return nil, fmt.Errorf("%w: patientName must be non-empty", ErrInvalidInput)
	}
	return s.repo.ListByPatient(ctx, patientName)
}

// RecordDoseTaken es la única mutación soportada: normaliza whenTaken,
// pisa lastTakenDate y marca hasTaken. El resto del registro no se toca.
func (s *Service) RecordDoseTaken(ctx context.Context, id, whenTaken string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, fmt.Errorf("%w: uuid must be non-empty", ErrInvalidInput)
	}

	norm, err := dates.Normalize(whenTaken)
	if err != nil {
		return Medication{}, fmt.Errorf("%w: newDate: %w", ErrInvalidInput, err)
	}

	m, err := s.repo.GetByUUID(ctx, id)
	if err != nil {
		return Medication{}, err
	}

	m.LastTakenDate = norm
	m.HasTaken = true

	if err := s.repo.Update(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

package jsonfile

import (
	"context"
	"fmt"
	"sync"

	"med-reminder/internal/domain/medications"
)

type MedicationsRepo struct {
	mu   sync.RWMutex
	path string
}

func NewMedicationsRepo(path string) *MedicationsRepo {
	return &MedicationsRepo{path: path}
}

func (r *MedicationsRepo) load() ([]medications.Medication, error) {
	var all []medications.Medication
	if err := readCollection(r.path, &all); err != nil {
		return nil, err
	}
	for i, m := range all {
		if err := m.ValidateStored(); err != nil {
			return nil, fmt.Errorf("jsonfile: %s record %d: %w", r.path, i, err)
		}
	}
	return all, nil
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load()
	if err != nil {
		return err
	}
	all = append(all, m)
	return writeCollection(r.path, all)
}

func (r *MedicationsRepo) GetByUUID(ctx context.Context, id string) (medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all, err := r.load()
	if err != nil {
		return medications.Medication{}, err
	}
	for _, m := range all {
		if m.UUID == id {
			return m, nil
		}
	}
	return medications.Medication{}, medications.ErrNotFound
}

func (r *MedicationsRepo) ListByPatient(ctx context.Context, patientName string) ([]medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]medications.Medication, 0)
	for _, m := range all {
		if m.PatientName == patientName {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MedicationsRepo) Update(ctx context.Context, m medications.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load()
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].UUID == m.UUID {
			all[i] = m
			return writeCollection(r.path, all)
		}
	}
	return medications.ErrNotFound
}

package medications

import "context"

type Repository interface {
	Create(ctx context.Context, m Medication) error
	GetByUUID(ctx context.Context, id string) (Medication, error)
	ListByPatient(ctx context.Context, patientName string) ([]Medication, error)
	Update(ctx context.Context, m Medication) error
}

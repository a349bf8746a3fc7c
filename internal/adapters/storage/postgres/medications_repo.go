package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"med-reminder/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO prescriptions (
			uuid, patient_name, medication_name, consumption_details,
			prescription_date, exp_date, dose_interval,
			amount, dosage, last_taken_date, has_taken, img_url
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		m.UUID,
		m.PatientName,
		m.MedicationName,
		m.ConsumptionDetails,
		m.PrescriptionDate,
		m.ExpDate,
		m.Interval,
		m.Amount,
		m.Dosage,
		m.LastTakenDate,
		m.HasTaken,
		m.ImgURL,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MedicationsRepo) GetByUUID(ctx context.Context, id string) (medications.Medication, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT uuid, patient_name, medication_name, consumption_details,
			prescription_date, exp_date, dose_interval,
			amount, dosage, last_taken_date, has_taken, img_url
		FROM prescriptions
		WHERE uuid = $1
	`, id)

	m, err := scanMedication(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medications.Medication{}, medications.ErrNotFound
		}
		return medications.Medication{}, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *MedicationsRepo) ListByPatient(ctx context.Context, patientName string) ([]medications.Medication, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT uuid, patient_name, medication_name, consumption_details,
			prescription_date, exp_date, dose_interval,
			amount, dosage, last_taken_date, has_taken, img_url
		FROM prescriptions
		WHERE patient_name = $1
		ORDER BY prescription_date ASC
	`, patientName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

// Update pisa el registro completo por uuid; el service solo lo usa
// para registrar tomas (lastTakenDate + hasTaken).
func (r *MedicationsRepo) Update(ctx context.Context, m medications.Medication) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE prescriptions
		SET patient_name = $2,
			medication_name = $3,
			consumption_details = $4,
			prescription_date = $5,
			exp_date = $6,
			dose_interval = $7,
			amount = $8,
			dosage = $9,
			last_taken_date = $10,
			has_taken = $11,
			img_url = $12
		WHERE uuid = $1
	`,
		m.UUID,
		m.PatientName,
		m.MedicationName,
		m.ConsumptionDetails,
		m.PrescriptionDate,
		m.ExpDate,
		m.Interval,
		m.Amount,
		m.Dosage,
		m.LastTakenDate,
		m.HasTaken,
		m.ImgURL,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

func scanMedication(scan func(dest ...any) error) (medications.Medication, error) {
	var m medications.Medication
	err := scan(
		&m.UUID,
		&m.PatientName,
		&m.MedicationName,
		&m.ConsumptionDetails,
		&m.PrescriptionDate,
		&m.ExpDate,
		&m.Interval,
		&m.Amount,
		&m.Dosage,
		&m.LastTakenDate,
		&m.HasTaken,
		&m.ImgURL,
	)
	return m, err
}

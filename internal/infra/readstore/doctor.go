package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/queries"
)

type DoctorReadStore struct {
	db db.DBTX
}

func NewDoctorReadStore(dbtx db.DBTX) *DoctorReadStore {
	return &DoctorReadStore{db: dbtx}
}

const doctorViewColumns = `
SELECT d.id, d.name, d.specialization, d.qualifications, d.experience_years,
       d.consultation_fee_cents, d.hospital_id, h.name
FROM doctors d
JOIN hospitals h ON h.id = d.hospital_id
`

func (r *DoctorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DoctorView, error) {
	row := r.db.QueryRow(ctx, doctorViewColumns+`WHERE d.id = $1`, pgconv.UUIDToPgtype(id))
	view, err := scanDoctorView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("doctor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find doctor by ID", err)
	}
	return view, nil
}

func (r *DoctorReadStore) FindAll(ctx context.Context) ([]*queries.DoctorView, error) {
	rows, err := r.db.Query(ctx, doctorViewColumns+`ORDER BY d.name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list doctors", err)
	}
	return collectDoctorViews(rows)
}

func (r *DoctorReadStore) FindBySpecialization(ctx context.Context, specialization string) ([]*queries.DoctorView, error) {
	rows, err := r.db.Query(ctx,
		doctorViewColumns+`WHERE d.specialization ILIKE $1 ORDER BY d.name`, specialization)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find doctors by specialization", err)
	}
	return collectDoctorViews(rows)
}

func (r *DoctorReadStore) FindByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*queries.DoctorView, error) {
	rows, err := r.db.Query(ctx,
		doctorViewColumns+`WHERE d.hospital_id = $1 ORDER BY d.name`, pgconv.UUIDToPgtype(hospitalID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find doctors by hospital", err)
	}
	return collectDoctorViews(rows)
}

func (r *DoctorReadStore) FindByHospitalAndSpecialization(ctx context.Context, hospitalID uuid.UUID, specialization string) ([]*queries.DoctorView, error) {
	rows, err := r.db.Query(ctx,
		doctorViewColumns+`WHERE d.hospital_id = $1 AND d.specialization ILIKE $2 ORDER BY d.name`,
		pgconv.UUIDToPgtype(hospitalID), specialization)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find doctors by hospital and specialization", err)
	}
	return collectDoctorViews(rows)
}

func collectDoctorViews(rows pgx.Rows) ([]*queries.DoctorView, error) {
	defer rows.Close()

	var result []*queries.DoctorView
	for rows.Next() {
		view, err := scanDoctorView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan doctor row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate doctor rows", err)
	}
	return result, nil
}

func scanDoctorView(row pgx.Row) (*queries.DoctorView, error) {
	var v queries.DoctorView
	var qualifications pgtype.Text
	var experienceYears pgtype.Int4
	err := row.Scan(
		&v.ID, &v.Name, &v.Specialization, &qualifications, &experienceYears,
		&v.ConsultationFeeCents, &v.HospitalID, &v.HospitalName,
	)
	if err != nil {
		return nil, err
	}

	v.Qualifications = pgconv.StringPtrFromPgtype(qualifications)
	v.ExperienceYears = pgconv.Int32PtrFromPgtype(experienceYears)
	return &v, nil
}

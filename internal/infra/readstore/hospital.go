package readstore

import (
	"context"

	"github.com/google/uuid"

	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/queries"
)

type HospitalReadStore struct {
	db db.DBTX
}

func NewHospitalReadStore(dbtx db.DBTX) *HospitalReadStore {
	return &HospitalReadStore{db: dbtx}
}

const hospitalViewColumns = `
SELECT id, name, city, address
FROM hospitals
`

func (r *HospitalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HospitalView, error) {
	var v queries.HospitalView
	err := r.db.QueryRow(ctx, hospitalViewColumns+`WHERE id = $1`, pgconv.UUIDToPgtype(id)).
		Scan(&v.ID, &v.Name, &v.City, &v.Address)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hospital not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hospital by ID", err)
	}
	return &v, nil
}

func (r *HospitalReadStore) FindAll(ctx context.Context) ([]*queries.HospitalView, error) {
	rows, err := r.db.Query(ctx, hospitalViewColumns+`ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hospitals", err)
	}
	defer rows.Close()

	var result []*queries.HospitalView
	for rows.Next() {
		var v queries.HospitalView
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.Address); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hospital row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hospital rows", err)
	}
	return result, nil
}

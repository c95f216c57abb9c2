//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/usecase/queries"
	queriesmock "clinic-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSlotSearchPrecedence(t *testing.T) {
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	doctorID := uuid.New()
	hospitalID := uuid.New()
	specialization := "Cardiology"

	cases := []struct {
		name   string
		params queries.SlotSearchParams
		expect func(store *queriesmock.MockSlotReadStore)
	}{
		{
			name: "doctor filter wins over everything",
			params: queries.SlotSearchParams{
				Date:           date,
				DoctorID:       &doctorID,
				HospitalID:     &hospitalID,
				Specialization: &specialization,
			},
			expect: func(store *queriesmock.MockSlotReadStore) {
				store.EXPECT().FindAvailableByDoctorAndDate(gomock.Any(), doctorID, date).Return(nil, nil)
			},
		},
		{
			name: "hospital plus specialization",
			params: queries.SlotSearchParams{
				Date:           date,
				HospitalID:     &hospitalID,
				Specialization: &specialization,
			},
			expect: func(store *queriesmock.MockSlotReadStore) {
				store.EXPECT().FindAvailableByHospitalSpecializationAndDate(gomock.Any(), hospitalID, specialization, date).Return(nil, nil)
			},
		},
		{
			name:   "hospital only",
			params: queries.SlotSearchParams{Date: date, HospitalID: &hospitalID},
			expect: func(store *queriesmock.MockSlotReadStore) {
				store.EXPECT().FindAvailableByHospitalAndDate(gomock.Any(), hospitalID, date).Return(nil, nil)
			},
		},
		{
			name:   "date only",
			params: queries.SlotSearchParams{Date: date},
			expect: func(store *queriesmock.MockSlotReadStore) {
				store.EXPECT().FindAvailableByDate(gomock.Any(), date).Return(nil, nil)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := queriesmock.NewMockSlotReadStore(ctrl)
			tc.expect(store)

			q := queries.NewSlotQueries(store)
			_, err := q.Search(context.Background(), tc.params)
			assert.NoError(t, err)
		})
	}
}

func TestGetByDoctorAndDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	doctorID := uuid.New()
	view := &queries.SlotView{ID: uuid.New(), DoctorID: doctorID, SlotDate: date}

	store := queriesmock.NewMockSlotReadStore(ctrl)
	store.EXPECT().FindByDoctorAndDate(gomock.Any(), doctorID, date).Return(view, nil)

	q := queries.NewSlotQueries(store)
	got, err := q.GetByDoctorAndDate(context.Background(), doctorID, date)
	assert.NoError(t, err)
	assert.Equal(t, view, got)
}

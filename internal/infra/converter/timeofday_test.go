//go:build unit

package converter_test

import (
	"testing"

	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/infra/converter"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDayConversion(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		cases := []struct {
			hour, minute int
		}{
			{0, 0},
			{9, 0},
			{13, 45},
			{23, 59},
		}
		for _, tc := range cases {
			tod, err := slot.NewTimeOfDay(tc.hour, tc.minute)
			require.NoError(t, err)

			pt := converter.TimeOfDayToPgtype(tod)
			assert.True(t, pt.Valid)
			assert.True(t, converter.TimeOfDayFromPgtype(pt).Equal(tod))
		}
	})

	t.Run("microseconds map to minutes since midnight", func(t *testing.T) {
		tod, err := slot.NewTimeOfDay(9, 30)
		require.NoError(t, err)

		pt := converter.TimeOfDayToPgtype(tod)
		assert.Equal(t, int64(570)*60*1_000_000, pt.Microseconds)
	})

	t.Run("sub-minute precision is truncated", func(t *testing.T) {
		pt := pgtype.Time{Microseconds: 9*3600*1_000_000 + 30*1_000_000, Valid: true}
		assert.Equal(t, "09:00", converter.TimeOfDayFromPgtype(pt).String())
	})
}

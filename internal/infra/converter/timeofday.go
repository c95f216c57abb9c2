package converter

import (
	"github.com/jackc/pgx/v5/pgtype"

	"clinic-booking/internal/domain/slot"
)

const microsecondsPerMinute = 60 * 1_000_000

// TimeOfDayToPgtype maps a wall-clock time onto the postgres time type,
// which counts microseconds since midnight.
func TimeOfDayToPgtype(t slot.TimeOfDay) pgtype.Time {
	return pgtype.Time{
		Microseconds: int64(t.Minutes()) * microsecondsPerMinute,
		Valid:        true,
	}
}

// TimeOfDayFromPgtype truncates sub-minute precision; the schedule never
// stores any.
func TimeOfDayFromPgtype(pt pgtype.Time) slot.TimeOfDay {
	return slot.TimeOfDayFromMinutes(int(pt.Microseconds / microsecondsPerMinute))
}

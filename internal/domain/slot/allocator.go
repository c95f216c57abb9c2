package slot

// Appointment times are a pure function of the slot's schedule and an
// occupancy position; nothing here touches state or I/O.

// AppointmentTimeAt returns the wall-clock time assigned to the booking that
// takes occupancy position occupancyIndex. The index is the occupancy count
// before the increment, so the first booking of the day gets the
// consultation start time itself.
func AppointmentTimeAt(start TimeOfDay, minutesPerPatient, occupancyIndex int) TimeOfDay {
	return start.AddMinutes(occupancyIndex * minutesPerPatient)
}

// EstimatedEndTime returns when the day would end if every position were
// booked. Display only; capacity enforcement never uses it.
func EstimatedEndTime(start TimeOfDay, minutesPerPatient, capacity int) TimeOfDay {
	return start.AddMinutes(capacity * minutesPerPatient)
}

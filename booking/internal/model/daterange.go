package model

// A booking occupies the half-open interval [StartDate, EndDate): the start
// day is occupied, the end day is the checkout day and stays free.

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) share at least one day. Ranges that merely touch
// (checkout on another booking's check-in day) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd Date) bool {
	return bStart.Before(aEnd) && aStart.Before(bEnd)
}

// Occupies reports whether day falls within the booking's occupied range.
func (b Booking) Occupies(day Date) bool {
	return !day.Before(b.StartDate) && day.Before(b.EndDate)
}

// VacantDates returns the days of the closed interval [start, end] not
// occupied by any of the given bookings, ascending. The interval is closed on
// both ends, unlike booking occupancy: a vacancy query reports every calendar
// day a stay could start on or include. The caller is expected to have
// restricted bookings to the target campsite and query range already.
func VacantDates(start, end Date, bookings []Booking) []Date {
	vacant := make([]Date, 0, start.DaysUntil(end)+1)
	for day := start; !day.After(end); day = day.AddDays(1) {
		occupied := false
		for _, b := range bookings {
			if b.Occupies(day) {
				occupied = true
				break
			}
		}
		if !occupied {
			vacant = append(vacant, day)
		}
	}
	return vacant
}

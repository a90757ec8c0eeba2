package domain

import "time"

// TurnoverMinutes maps a party size to the number of minutes the party is
// expected to occupy a table. The policy is tiered, not linear: larger
// parties hold a table longer.
//
//	partySize <= 2 -> base
//	partySize <= 4 -> base + 30
//	partySize <= 6 -> base + 60
//	partySize  > 6 -> base + 90
//
// baseMinutes is the restaurant's configured turn duration; non-positive
// values fall back to DefaultBaseTurnoverMinutes.
func TurnoverMinutes(partySize, baseMinutes int) int {
	if baseMinutes <= 0 {
		baseMinutes = DefaultBaseTurnoverMinutes
	}
	switch {
	case partySize <= 2:
		return baseMinutes
	case partySize <= 4:
		return baseMinutes + 30
	case partySize <= 6:
		return baseMinutes + 60
	default:
		return baseMinutes + 90
	}
}

// ReservationEnd computes the derived end time of a reservation:
// start + turnover(partySize, baseMinutes).
func ReservationEnd(start time.Time, partySize, baseMinutes int) time.Time {
	return start.Add(time.Duration(TurnoverMinutes(partySize, baseMinutes)) * time.Minute)
}

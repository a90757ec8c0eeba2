package availability

import (
	"time"

	"github.com/m04kA/DS-ReservationService/internal/domain"
	"github.com/m04kA/DS-ReservationService/pkg/types"
)

// TimeSlot описывает один кандидатный слот дня: время начала, признак
// доступности и количество подходящих свободных столов.
type TimeSlot struct {
	Time            types.TimeString
	Available       bool
	TablesAvailable int
}

// Options параметры расчета доступности на день. Нулевые поля заменяются
// значениями по умолчанию (12:00-23:00, шаг 30 минут, базовый turnover 120).
type Options struct {
	OpeningTime         types.TimeString
	ClosingTime         types.TimeString
	IntervalMinutes     int
	BaseTurnoverMinutes int
}

func (o Options) withDefaults() Options {
	if o.OpeningTime.IsZero() {
		o.OpeningTime = types.TimeString(domain.DefaultOpeningTime)
	}
	if o.ClosingTime.IsZero() {
		o.ClosingTime = types.TimeString(domain.DefaultClosingTime)
	}
	if o.IntervalMinutes <= 0 {
		o.IntervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	if o.BaseTurnoverMinutes <= 0 {
		o.BaseTurnoverMinutes = domain.DefaultBaseTurnoverMinutes
	}
	return o
}

// GenerateTimeSlots генерирует упорядоченный список времен начала слотов:
// полуоткрытый проход от opening (включительно) до closing (исключительно)
// с шагом intervalMinutes. Если opening >= closing, список пуст.
func GenerateTimeSlots(opening, closing types.TimeString, intervalMinutes int) []types.TimeString {
	if intervalMinutes <= 0 {
		intervalMinutes = domain.DefaultSlotIntervalMinutes
	}

	slots := make([]types.TimeString, 0)
	current := opening

	for current.IsBefore(closing) {
		slots = append(slots, current)

		next, err := current.AddMinutes(intervalMinutes)
		if err != nil {
			// Следующий слот за пределами суток
			break
		}
		current = next
	}

	return slots
}

// DayAvailability рассчитывает доступность каждого слота дня: для каждого
// сгенерированного времени строится абсолютная метка (date + слот) и
// подсчитываются столы, вмещающие partySize и свободные в этот момент.
func DayAvailability(
	date time.Time,
	tables []*domain.Table,
	reservations []*domain.Reservation,
	partySize int,
	opts Options,
) []TimeSlot {
	opts = opts.withDefaults()

	slotTimes := GenerateTimeSlots(opts.OpeningTime, opts.ClosingTime, opts.IntervalMinutes)

	slots := make([]TimeSlot, len(slotTimes))
	for i, slotTime := range slotTimes {
		slotStart := slotTime.OnDate(date)
		available := GetAvailableTables(tables, slotStart, partySize, reservations, opts.BaseTurnoverMinutes)

		slots[i] = TimeSlot{
			Time:            slotTime,
			Available:       len(available) > 0,
			TablesAvailable: len(available),
		}
	}

	return slots
}

// NextAvailableSlot возвращает первый доступный слот дня.
// Второе значение false, если свободных слотов нет.
func NextAvailableSlot(
	date time.Time,
	tables []*domain.Table,
	reservations []*domain.Reservation,
	partySize int,
	opts Options,
) (types.TimeString, bool) {
	for _, slot := range DayAvailability(date, tables, reservations, partySize, opts) {
		if slot.Available {
			return slot.Time, true
		}
	}
	return "", false
}

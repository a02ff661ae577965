package timezone

import "time"

// DefaultTimezone rige fechas de citas y seguimientos cuando TIMEZONE falta o es inválida.
const DefaultTimezone = "America/Mexico_City"

// Location resuelve tz; cae a DefaultTimezone y, si el sistema no trae tzdata, a UTC.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// StartOfDay trunca t a medianoche en su propia zona.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthRange devuelve [primer día del mes, primer día del siguiente) en loc.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

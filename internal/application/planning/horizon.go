package planning

import "time"

// MondayOf devuelve el lunes de la semana de t, a las 00:00 UTC. Todos los
// buckets del horizonte se anclan a lunes.
func MondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // lunes=0 ... domingo=6
	return day.AddDate(0, 0, -offset)
}

// Buckets genera la secuencia ordenada y sin huecos de lunes del horizonte
// según la política configurada. El motor no calcula fechas por su cuenta:
// siempre recibe esta secuencia inyectada, de modo que la política de
// horizonte es un asunto de configuración y no del motor.
func Buckets(cfg Config, asOf time.Time) []time.Time {
	cfg = cfg.normalized()
	start := MondayOf(asOf)

	if cfg.HorizonPolicy == HorizonYearEnd {
		yearEnd := time.Date(asOf.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		var weeks []time.Time
		for w := start; !w.After(yearEnd); w = w.AddDate(0, 0, 7) {
			weeks = append(weeks, w)
		}
		return weeks
	}

	weeks := make([]time.Time, 0, cfg.HorizonWeeks)
	for i := 0; i < cfg.HorizonWeeks; i++ {
		weeks = append(weeks, start.AddDate(0, 0, 7*i))
	}
	return weeks
}

package models

// Weekday is one of the seven lowercase, accent-free Spanish day names used as
// keys in weekly schedules and meal plans. An absent day means a rest day (or
// a day with no planned meals).
type Weekday string

const (
	Lunes     Weekday = "lunes"
	Martes    Weekday = "martes"
	Miercoles Weekday = "miercoles"
	Jueves    Weekday = "jueves"
	Viernes   Weekday = "viernes"
	Sabado    Weekday = "sabado"
	Domingo   Weekday = "domingo"
)

// Weekdays lists the days in calendar order.
var Weekdays = []Weekday{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo}

// Valid reports whether d is one of the seven known day names.
func (d Weekday) Valid() bool {
	switch d {
	case Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo:
		return true
	}
	return false
}

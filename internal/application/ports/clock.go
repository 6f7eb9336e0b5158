package ports

import "time"

// Clock fuente de la hora actual. Los cálculos de renovación y el historial la reciben
// inyectada para que sean deterministas en pruebas.
type Clock interface {
	Now() time.Time
}

// SystemClock reloj del sistema.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapta una función al puerto Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

package helper

import "time"

// Utilidades de calendario para los agregadores de asistencia.
// Todas las fechas se normalizan en UTC; la hora del registro es irrelevante,
// los consumidores trabajan con límites de día [00:00:00, 23:59:59.999].

func InicioDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FinDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, time.UTC)
}

// DiasEnMes devuelve la cantidad de días del mes. mes es 0-based (0 = enero),
// igual que el widget de calendario del frontend.
func DiasEnMes(anio, mes int) int {
	// día 0 del mes siguiente = último día del mes pedido
	return time.Date(anio, time.Month(mes+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// RangoMes devuelve [primer día 00:00, último día 23:59:59.999] del mes (0-based).
func RangoMes(anio, mes int) (time.Time, time.Time) {
	desde := time.Date(anio, time.Month(mes+1), 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(anio, time.Month(mes+1), DiasEnMes(anio, mes), 23, 59, 59, 999_000_000, time.UTC)
	return desde, hasta
}

// RangoAnio devuelve [1 enero 00:00, 31 diciembre 23:59:59.999] del año.
func RangoAnio(anio int) (time.Time, time.Time) {
	desde := time.Date(anio, time.January, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(anio, time.December, 31, 23, 59, 59, 999_000_000, time.UTC)
	return desde, hasta
}

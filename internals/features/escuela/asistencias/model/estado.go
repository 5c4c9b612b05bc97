package model

// EstadoAsistencia es el estado derivado de un registro. Los cuatro estados son
// mutuamente excluyentes; la ausencia de registro se representa con nil
// ("sin dato", se pinta como "-") y NO equivale a ausente.
type EstadoAsistencia string

const (
	EstadoPresente    EstadoAsistencia = "presente"
	EstadoAusente     EstadoAsistencia = "ausente"
	EstadoTardanza    EstadoAsistencia = "tardanza"
	EstadoJustificado EstadoAsistencia = "justificado"
)

// Estado deriva el estado del registro. Prioridad:
// tardanza > justificada > ausente (!presente) > presente.
// Un registro con tardanza=true se reporta "tardanza" aunque también esté
// justificado o marcado no-presente.
func (m AsistenciaModel) Estado() EstadoAsistencia {
	switch {
	case m.AsistenciaTardanza:
		return EstadoTardanza
	case m.AsistenciaJustificada:
		return EstadoJustificado
	case !m.AsistenciaPresente:
		return EstadoAusente
	default:
		return EstadoPresente
	}
}

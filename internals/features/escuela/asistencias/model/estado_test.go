package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Para cualquier combinación de banderas aplica exactamente un estado,
// según la prioridad tardanza > justificada > ausente > presente.
func TestEstado_PrioridadYExclusividad(t *testing.T) {
	casos := []struct {
		nombre                          string
		presente, tardanza, justificada bool
		esperado                        EstadoAsistencia
	}{
		{"presente simple", true, false, false, EstadoPresente},
		{"ausente simple", false, false, false, EstadoAusente},
		{"justificada sin presencia", false, false, true, EstadoJustificado},
		{"justificada con presencia", true, false, true, EstadoJustificado},
		{"tardanza simple", true, true, false, EstadoTardanza},
		{"tardanza sin presencia", false, true, false, EstadoTardanza},
		// tardanza gana sobre justificada y sobre ausente
		{"tardanza y justificada y no presente", false, true, true, EstadoTardanza},
		{"tardanza y justificada presente", true, true, true, EstadoTardanza},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			m := AsistenciaModel{
				AsistenciaPresente:    c.presente,
				AsistenciaTardanza:    c.tardanza,
				AsistenciaJustificada: c.justificada,
			}
			assert.Equal(t, c.esperado, m.Estado())
		})
	}
}

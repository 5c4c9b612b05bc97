package service

import "errors"

var (
	// ErrNivelSinCursos: sin curso de alcance no hay matriz posible; se
	// devuelve tal cual al llamador, nunca una matriz vacía silenciosa.
	ErrNivelSinCursos = errors.New("el nivel académico no tiene cursos asignados: asigne un curso o indique curso_id")

	ErrMesInvalido = errors.New("mes fuera de rango (0-11)")
)

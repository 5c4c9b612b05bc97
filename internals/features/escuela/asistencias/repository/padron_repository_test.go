package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El padrón institucional excluye niveles dados de baja: el JOIN sobre
// nivel_academico lleva el predicado de soft delete explícito.
func TestPadronInstitucion_ExcluyeNivelesDadosDeBaja(t *testing.T) {
	gdb, mock := nuevaDBMock(t)
	repo := NewPadronRepository(gdb)

	estudianteID := uuid.New()
	nivelID := uuid.New()
	mock.ExpectQuery(`nivel_academico\.nivel_academico_deleted_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{
			"estudiante_id", "estudiante_nombre", "estudiante_apellido_paterno",
			"estudiante_apellido_materno", "nivel_academico_id",
			"nivel_academico_grado", "nivel_academico_seccion",
		}).AddRow(estudianteID, "Alicia", "Quispe", "Mamani", nivelID, "3ro", "B"))

	padron, err := repo.PadronInstitucion(context.Background(), uuid.New(), 2024, nil)
	require.NoError(t, err)
	require.Len(t, padron, 1)
	assert.Equal(t, "Quispe Mamani, Alicia", padron[0].NombreCompleto())
	assert.Equal(t, "3ro B", padron[0].EtiquetaNivel())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEstudianteDeInstitucion(t *testing.T) {
	gdb, mock := nuevaDBMock(t)
	repo := NewPadronRepository(gdb)

	estudianteID := uuid.New()
	institucionID := uuid.New()

	mock.ExpectQuery(`estudiante_id = \$1 AND estudiante_institucion_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	pertenece, err := repo.EstudianteDeInstitucion(context.Background(), estudianteID, institucionID)
	require.NoError(t, err)
	assert.True(t, pertenece)

	mock.ExpectQuery(`estudiante_id = \$1 AND estudiante_institucion_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	pertenece, err = repo.EstudianteDeInstitucion(context.Background(), uuid.New(), institucionID)
	require.NoError(t, err)
	assert.False(t, pertenece)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Nivel sin cursos: nil sin error; la capa de servicio decide el ScopingError.
func TestPrimerCursoDeNivel_SinCursos(t *testing.T) {
	gdb, mock := nuevaDBMock(t)
	repo := NewPadronRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "cursos"`).
		WillReturnRows(sqlmock.NewRows([]string{"curso_id"}))

	curso, err := repo.PrimerCursoDeNivel(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, curso)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrimerCursoDeNivel_OrdenDeCreacion(t *testing.T) {
	gdb, mock := nuevaDBMock(t)
	repo := NewPadronRepository(gdb)

	cursoID := uuid.New()
	mock.ExpectQuery(`ORDER BY curso_created_at ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"curso_id", "curso_nombre"}).
			AddRow(cursoID, "Matemática"))

	curso, err := repo.PrimerCursoDeNivel(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, curso)
	assert.Equal(t, cursoID, curso.CursoID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Sin fila de institución (o sin configuración) se usa el umbral por defecto.
func TestUmbralAlerta_PorDefecto(t *testing.T) {
	gdb, mock := nuevaDBMock(t)
	repo := NewPadronRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "instituciones"`).
		WillReturnError(assert.AnError)

	umbral := repo.UmbralAlerta(context.Background(), uuid.New())
	assert.Equal(t, UmbralAlertaPorDefecto, umbral)
}

func TestUmbralAlerta_DesdeConfiguracion(t *testing.T) {
	gdb, mock := nuevaDBMock(t)
	repo := NewPadronRepository(gdb)

	institucionID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "instituciones"`).
		WillReturnRows(sqlmock.NewRows([]string{"institucion_id", "institucion_nombre", "institucion_configuracion"}).
			AddRow(institucionID, "IE San Martín", []byte(`{"umbral_alerta_asistencia": 20}`)))

	umbral := repo.UmbralAlerta(context.Background(), institucionID)
	assert.Equal(t, 20.0, umbral)
}

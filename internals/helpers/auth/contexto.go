package auth

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* =======================================================
   Locals Keys (los setea el middleware AuthJWT)
   ======================================================= */

const (
	LocUserID        = "user_id"        // string UUID
	LocRol           = "rol"            // admin | docente | auxiliar
	LocInstitucionID = "institucion_id" // string UUID
	LocAnioAcademico = "anio_academico" // float64 | string (claim numérico del JWT)
)

// ContextoEscolar es el ámbito explícito de toda consulta de agregación:
// institución activa y año académico por defecto. Viaja como parámetro,
// nunca como estado global.
type ContextoEscolar struct {
	InstitucionID uuid.UUID
	AnioAcademico int
}

// ContextoDesdeRequest materializa los locals del JWT en un ContextoEscolar.
// El query param `anio` (si viene) pisa el año por defecto del token.
func ContextoDesdeRequest(c *fiber.Ctx) (ContextoEscolar, error) {
	var ctx ContextoEscolar

	raw, _ := c.Locals(LocInstitucionID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ctx, fiber.NewError(fiber.StatusUnauthorized, "Institución no encontrada en el token")
	}
	institucionID, err := uuid.Parse(raw)
	if err != nil {
		return ctx, fiber.NewError(fiber.StatusUnauthorized, "institucion_id no válido en el token")
	}
	ctx.InstitucionID = institucionID

	ctx.AnioAcademico = anioDesdeLocals(c)
	if q := c.QueryInt("anio"); q > 0 {
		ctx.AnioAcademico = q
	}
	if ctx.AnioAcademico <= 0 {
		ctx.AnioAcademico = time.Now().Year()
	}

	return ctx, nil
}

func anioDesdeLocals(c *fiber.Ctx) int {
	switch v := c.Locals(LocAnioAcademico).(type) {
	case int:
		return v
	case float64: // claims numéricos de jwt.MapClaims llegan como float64
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}

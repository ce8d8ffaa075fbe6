package recurso

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
)

// Iconos presentacionales asociados a cada tipo de actividad.
const (
	iconoCrear      = "add"
	iconoActualizar = "create-outline"
	iconoEliminar   = "trash-outline"
)

// decimalDesdeInt convierte una cantidad entera para operarla contra valores monetarios.
func decimalDesdeInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

// tokenActual devuelve el bearer token de la sesión persistida.
func tokenActual(sesiones repository.SesionRepository) (string, error) {
	s := sesiones.Actual()
	if !s.Autenticada() {
		return "", domain.ErrSesionAusente
	}
	return s.Token, nil
}

// registrar anota una mutación exitosa en la bitácora. El espejo de actividad
// es de cortesía: su fallo no invalida la mutación ya aplicada.
func registrar(bitacora repository.ActividadRepository, titulo string, tipo entity.TipoActividad, icono string) {
	if bitacora == nil {
		return
	}
	_ = bitacora.Agregar(entity.Actividad{Titulo: titulo, Tipo: tipo, Icono: icono})
}

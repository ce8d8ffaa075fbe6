package bitacora

import (
	"fmt"
	"time"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
)

// UseCase lectura de la bitácora de actividad para las pantallas de inicio.
type UseCase struct {
	repo repository.ActividadRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ActividadRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Recientes devuelve las entradas de más reciente a más antigua, con el
// tiempo relativo resuelto contra el reloj actual.
func (uc *UseCase) Recientes() []dto.ActividadView {
	ahora := time.Now()
	lista := uc.repo.Recientes()
	out := make([]dto.ActividadView, 0, len(lista))
	for _, a := range lista {
		out = append(out, dto.ActividadView{
			ID:     a.ID,
			Titulo: a.Titulo,
			Fecha:  a.Fecha,
			Hace:   TiempoRelativo(a.Fecha, ahora),
			Tipo:   string(a.Tipo),
			Icono:  a.Icono,
		})
	}
	return out
}

// TiempoRelativo formatea cuánto hace que ocurrió un instante: segundos,
// minutos, horas o días.
func TiempoRelativo(t, ahora time.Time) string {
	diff := ahora.Sub(t)
	min := int(diff.Minutes())
	switch {
	case min < 1:
		return "Hace unos segundos"
	case min < 60:
		return fmt.Sprintf("Hace %dm", min)
	case min < 24*60:
		return fmt.Sprintf("Hace %dh", min/60)
	default:
		return fmt.Sprintf("Hace %dd", min/(24*60))
	}
}

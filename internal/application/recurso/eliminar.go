package recurso

import (
	"errors"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/domain"
)

// mensajesEliminar textos de cada desenlace de una eliminación, por recurso.
type mensajesEliminar struct {
	exito        func(nombre string) string
	generico     string
	conflicto    func(nombre string) string // nil: el recurso no distingue 409
	noEncontrado string
}

// toastEliminar clasifica el desenlace de un DELETE remoto.
// Un 409 es estado de negocio esperado (referenciado por pedidos activos) y se
// degrada a advertencia; el mensaje del servidor, cuando existe, prevalece
// sobre el mapeo de 404; todo lo demás cae al mensaje genérico.
func toastEliminar(err error, nombre string, m mensajesEliminar) dto.Toast {
	if err == nil {
		return dto.NuevoToast(m.exito(nombre), dto.NivelExito)
	}

	mensaje := m.generico
	nivel := dto.NivelError

	var re *domain.RemoteError
	if errors.As(err, &re) {
		switch {
		case re.Status == 409 && m.conflicto != nil:
			mensaje = m.conflicto(nombre)
			nivel = dto.NivelAdvertencia
		case re.Mensaje != "":
			mensaje = re.Mensaje
		case re.Status == 404:
			mensaje = m.noEncontrado
		}
	}
	return dto.NuevoToast(mensaje, nivel)
}

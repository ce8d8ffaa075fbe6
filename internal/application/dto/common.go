package dto

// Niveles de notificación, con el icono que acompaña a cada uno.
const (
	NivelExito       = "success"
	NivelAdvertencia = "warning"
	NivelError       = "danger"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Toast notificación transitoria que el cliente muestra al usuario.
type Toast struct {
	Mensaje string `json:"message"`
	Nivel   string `json:"color"`
	Icono   string `json:"icon"`
}

// NuevoToast construye la notificación con el icono que corresponde al nivel.
func NuevoToast(mensaje, nivel string) Toast {
	icono := "close-outline"
	switch nivel {
	case NivelExito:
		icono = "checkmark-circle"
	case NivelAdvertencia:
		icono = "alert-circle"
	}
	return Toast{Mensaje: mensaje, Nivel: nivel, Icono: icono}
}

// ResultadoForm desenlace de un formulario de alta/edición: la acción aplicada,
// el registro que devolvió el servidor y la notificación para el usuario.
type ResultadoForm struct {
	Action string      `json:"action"` // "created" | "updated"
	Data   interface{} `json:"data"`
	Toast  Toast       `json:"toast"`
}

// ResultadoEliminar desenlace de una eliminación. Eliminado indica si el
// registro debe retirarse de la lista del llamador; la notificación ya viene
// clasificada (éxito, advertencia por conflicto, error).
type ResultadoEliminar struct {
	Eliminado bool  `json:"deleted"`
	Toast     Toast `json:"toast"`
}

// Confirmacion diálogo de confirmación previo a una eliminación.
type Confirmacion struct {
	Titulo  string `json:"header"`
	Mensaje string `json:"message"`
	Aceptar string `json:"confirm"`
	Rechazo string `json:"cancel"`
}

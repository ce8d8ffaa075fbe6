package domain

import "fmt"

// RemoteError falla de una llamada al API remoto. Status conserva el código
// HTTP original (0 si la red falló antes de obtener respuesta) y Mensaje el
// texto opcional que envió el servidor. Err es el error de dominio equivalente.
type RemoteError struct {
	Status  int
	Mensaje string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Mensaje != "" {
		return fmt.Sprintf("api remoto (%d): %s", e.Status, e.Mensaje)
	}
	return fmt.Sprintf("api remoto (%d): %v", e.Status, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

package recurso

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
)

// ClienteUseCase casos de uso de la pantalla de clientes: listado con búsqueda,
// formulario de alta/edición y eliminación con confirmación.
type ClienteUseCase struct {
	repo     repository.ClienteRepository
	sesiones repository.SesionRepository
	bitacora repository.ActividadRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, sesiones repository.SesionRepository, bitacora repository.ActividadRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, sesiones: sesiones, bitacora: bitacora}
}

// Listar trae la colección completa y aplica la búsqueda local por nombre,
// correo o teléfono. Término vacío devuelve la lista sin filtrar.
func (uc *ClienteUseCase) Listar(ctx context.Context, q string) ([]entity.Cliente, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	lista, err := uc.repo.Listar(ctx, tok)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(q) == "" {
		return lista, nil
	}
	filtrados := make([]entity.Cliente, 0, len(lista))
	for _, c := range lista {
		if Coincide(q, c.Nombre, c.Correo, c.Telefono) {
			filtrados = append(filtrados, c)
		}
	}
	return filtrados, nil
}

// Crear valida el único campo obligatorio (nombre) y da de alta el cliente.
func (uc *ClienteUseCase) Crear(ctx context.Context, in dto.ClienteRequest) (*dto.ResultadoForm, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrEntradaInvalida
	}
	creado, err := uc.repo.Crear(ctx, tok, entity.Cliente{
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Correo:    in.Correo,
	})
	if err != nil {
		return nil, err
	}
	registrar(uc.bitacora, "Cliente creado: "+creado.Nombre, entity.ActividadCrear, iconoCrear)
	return &dto.ResultadoForm{
		Action: "created",
		Data:   creado,
		Toast:  dto.NuevoToast(fmt.Sprintf("%q creado con ID: %s", creado.Nombre, creado.ID), dto.NivelExito),
	}, nil
}

// Actualizar edita un cliente existente.
func (uc *ClienteUseCase) Actualizar(ctx context.Context, id string, in dto.ClienteRequest) (*dto.ResultadoForm, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrEntradaInvalida
	}
	actualizado, err := uc.repo.Actualizar(ctx, tok, id, entity.Cliente{
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Correo:    in.Correo,
	})
	if err != nil {
		return nil, err
	}
	registrar(uc.bitacora, "Cliente actualizado: "+actualizado.Nombre, entity.ActividadActualizar, iconoActualizar)
	return &dto.ResultadoForm{
		Action: "updated",
		Data:   actualizado,
		Toast:  dto.NuevoToast(fmt.Sprintf("%q actualizado correctamente", actualizado.Nombre), dto.NivelExito),
	}, nil
}

// Confirmacion arma el diálogo previo a eliminar.
func (uc *ClienteUseCase) Confirmacion(nombre string) dto.Confirmacion {
	return dto.Confirmacion{
		Titulo:  "Eliminar cliente",
		Mensaje: fmt.Sprintf("¿Deseas eliminar a %q?", nombre),
		Aceptar: "Eliminar",
		Rechazo: "Cancelar",
	}
}

// Eliminar borra el cliente y clasifica el desenlace: un 409 significa que el
// cliente está referenciado por pedidos activos y se reporta como advertencia.
func (uc *ClienteUseCase) Eliminar(ctx context.Context, id, nombre string) (*dto.ResultadoEliminar, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	errRemoto := uc.repo.Eliminar(ctx, tok, id)
	if errRemoto == nil {
		registrar(uc.bitacora, "Cliente eliminado: "+nombre, entity.ActividadEliminar, iconoEliminar)
	}
	toast := toastEliminar(errRemoto, nombre, mensajesEliminar{
		exito:    func(n string) string { return fmt.Sprintf("%q eliminado correctamente", n) },
		generico: "No se pudo eliminar el cliente",
		conflicto: func(n string) string {
			return fmt.Sprintf("No se puede eliminar a %q porque está asociado a pedidos activos.", n)
		},
		noEncontrado: "Cliente no encontrado",
	})
	return &dto.ResultadoEliminar{Eliminado: errRemoto == nil, Toast: toast}, nil
}

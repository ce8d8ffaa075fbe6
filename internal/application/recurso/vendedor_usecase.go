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

// VendedorUseCase casos de uso de la pantalla de vendedores.
type VendedorUseCase struct {
	repo     repository.VendedorRepository
	sesiones repository.SesionRepository
	bitacora repository.ActividadRepository
}

// NewVendedorUseCase construye el caso de uso.
func NewVendedorUseCase(repo repository.VendedorRepository, sesiones repository.SesionRepository, bitacora repository.ActividadRepository) *VendedorUseCase {
	return &VendedorUseCase{repo: repo, sesiones: sesiones, bitacora: bitacora}
}

// Listar trae la colección y aplica la búsqueda por nombre, correo o teléfono.
func (uc *VendedorUseCase) Listar(ctx context.Context, q string) ([]entity.Vendedor, error) {
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
	filtrados := make([]entity.Vendedor, 0, len(lista))
	for _, v := range lista {
		if Coincide(q, v.Nombre, v.Correo, v.Telefono) {
			filtrados = append(filtrados, v)
		}
	}
	return filtrados, nil
}

// Crear valida el nombre y da de alta el vendedor.
func (uc *VendedorUseCase) Crear(ctx context.Context, in dto.VendedorRequest) (*dto.ResultadoForm, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrEntradaInvalida
	}
	creado, err := uc.repo.Crear(ctx, tok, entity.Vendedor{
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Correo:    in.Correo,
	})
	if err != nil {
		return nil, err
	}
	registrar(uc.bitacora, "Vendedor creado: "+creado.Nombre, entity.ActividadCrear, iconoCrear)
	return &dto.ResultadoForm{
		Action: "created",
		Data:   creado,
		Toast:  dto.NuevoToast(fmt.Sprintf("%q creado con ID: %s", creado.Nombre, creado.ID), dto.NivelExito),
	}, nil
}

// Actualizar edita un vendedor existente.
func (uc *VendedorUseCase) Actualizar(ctx context.Context, id string, in dto.VendedorRequest) (*dto.ResultadoForm, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrEntradaInvalida
	}
	actualizado, err := uc.repo.Actualizar(ctx, tok, id, entity.Vendedor{
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Correo:    in.Correo,
	})
	if err != nil {
		return nil, err
	}
	registrar(uc.bitacora, "Vendedor actualizado: "+actualizado.Nombre, entity.ActividadActualizar, iconoActualizar)
	return &dto.ResultadoForm{
		Action: "updated",
		Data:   actualizado,
		Toast:  dto.NuevoToast(fmt.Sprintf("%q actualizado correctamente", actualizado.Nombre), dto.NivelExito),
	}, nil
}

// Confirmacion arma el diálogo previo a eliminar.
func (uc *VendedorUseCase) Confirmacion(nombre string) dto.Confirmacion {
	return dto.Confirmacion{
		Titulo:  "Eliminar vendedor",
		Mensaje: fmt.Sprintf("¿Deseas eliminar a %q?", nombre),
		Aceptar: "Eliminar",
		Rechazo: "Cancelar",
	}
}

// Eliminar borra el vendedor; un 409 indica pedidos asociados y baja a advertencia.
func (uc *VendedorUseCase) Eliminar(ctx context.Context, id, nombre string) (*dto.ResultadoEliminar, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	errRemoto := uc.repo.Eliminar(ctx, tok, id)
	if errRemoto == nil {
		registrar(uc.bitacora, "Vendedor eliminado: "+nombre, entity.ActividadEliminar, iconoEliminar)
	}
	toast := toastEliminar(errRemoto, nombre, mensajesEliminar{
		exito:    func(n string) string { return fmt.Sprintf("%q eliminado", n) },
		generico: "No se pudo eliminar el vendedor",
		conflicto: func(n string) string {
			return fmt.Sprintf("No se puede eliminar a %q porque tiene pedidos asociados.", n)
		},
		noEncontrado: "Vendedor no encontrado",
	})
	return &dto.ResultadoEliminar{Eliminado: errRemoto == nil, Toast: toast}, nil
}

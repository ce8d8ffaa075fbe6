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

// ProductoUseCase casos de uso de la pantalla de productos.
type ProductoUseCase struct {
	repo     repository.ProductoRepository
	sesiones repository.SesionRepository
	bitacora repository.ActividadRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, sesiones repository.SesionRepository, bitacora repository.ActividadRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, sesiones: sesiones, bitacora: bitacora}
}

// Listar trae el catálogo y aplica la búsqueda por nombre, descripción o unidad.
func (uc *ProductoUseCase) Listar(ctx context.Context, q string) ([]entity.Producto, error) {
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
	filtrados := make([]entity.Producto, 0, len(lista))
	for _, p := range lista {
		if Coincide(q, p.Nombre, p.Descripcion, p.UnidadMedida) {
			filtrados = append(filtrados, p)
		}
	}
	return filtrados, nil
}

// Crear valida el nombre y da de alta el producto.
func (uc *ProductoUseCase) Crear(ctx context.Context, in dto.ProductoRequest) (*dto.ResultadoForm, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrEntradaInvalida
	}
	creado, err := uc.repo.Crear(ctx, tok, entity.Producto{
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		Stock:        in.Stock,
		Valor:        in.Valor,
		UnidadMedida: in.UnidadMedida,
	})
	if err != nil {
		return nil, err
	}
	registrar(uc.bitacora, "Producto creado: "+creado.Nombre, entity.ActividadCrear, iconoCrear)
	return &dto.ResultadoForm{
		Action: "created",
		Data:   creado,
		Toast:  dto.NuevoToast(fmt.Sprintf("%q creado con ID: %s", creado.Nombre, creado.ID), dto.NivelExito),
	}, nil
}

// Actualizar edita un producto existente.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, id string, in dto.ProductoRequest) (*dto.ResultadoForm, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrEntradaInvalida
	}
	actualizado, err := uc.repo.Actualizar(ctx, tok, id, entity.Producto{
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		Stock:        in.Stock,
		Valor:        in.Valor,
		UnidadMedida: in.UnidadMedida,
	})
	if err != nil {
		return nil, err
	}
	registrar(uc.bitacora, "Producto actualizado: "+actualizado.Nombre, entity.ActividadActualizar, iconoActualizar)
	return &dto.ResultadoForm{
		Action: "updated",
		Data:   actualizado,
		Toast:  dto.NuevoToast(fmt.Sprintf("%q actualizado correctamente", actualizado.Nombre), dto.NivelExito),
	}, nil
}

// Confirmacion arma el diálogo previo a eliminar.
func (uc *ProductoUseCase) Confirmacion(nombre string) dto.Confirmacion {
	return dto.Confirmacion{
		Titulo:  "Eliminar producto",
		Mensaje: fmt.Sprintf("¿Deseas eliminar %q?", nombre),
		Aceptar: "Eliminar",
		Rechazo: "Cancelar",
	}
}

// Eliminar borra el producto; un 409 indica que figura en pedidos activos.
func (uc *ProductoUseCase) Eliminar(ctx context.Context, id, nombre string) (*dto.ResultadoEliminar, error) {
	tok, err := tokenActual(uc.sesiones)
	if err != nil {
		return nil, err
	}
	errRemoto := uc.repo.Eliminar(ctx, tok, id)
	if errRemoto == nil {
		registrar(uc.bitacora, "Producto eliminado: "+nombre, entity.ActividadEliminar, iconoEliminar)
	}
	toast := toastEliminar(errRemoto, nombre, mensajesEliminar{
		exito:    func(n string) string { return fmt.Sprintf("%q eliminado correctamente", n) },
		generico: "No se pudo eliminar el producto",
		conflicto: func(n string) string {
			return fmt.Sprintf("No se puede eliminar %q porque está asociado a pedidos activos.", n)
		},
		noEncontrado: "Producto no encontrado",
	})
	return &dto.ResultadoEliminar{Eliminado: errRemoto == nil, Toast: toast}, nil
}

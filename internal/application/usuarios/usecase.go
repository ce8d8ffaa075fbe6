package usuarios

import (
	"context"
	"strings"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
)

// UseCase administración de logins de base de datos. Solo se alcanza desde la
// pantalla de mayor privilegio (owner y usuario "sa" a la vez).
type UseCase struct {
	api      repository.UsuarioRepository
	sesiones repository.SesionRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(api repository.UsuarioRepository, sesiones repository.SesionRepository) *UseCase {
	return &UseCase{api: api, sesiones: sesiones}
}

// rolesAsignables roles que la pantalla permite otorgar a un login nuevo.
var rolesAsignables = []entity.Rol{entity.RolLectura, entity.RolEscritura, entity.RolOwner}

// CrearLogin valida credenciales y rol, y delega el alta al API remoto.
// Devuelve el mensaje del servidor o un texto de cortesía.
func (uc *UseCase) CrearLogin(ctx context.Context, in dto.CrearLoginRequest) (*dto.CrearLoginResponse, error) {
	s := uc.sesiones.Actual()
	if !s.Autenticada() {
		return nil, domain.ErrSesionAusente
	}

	username := strings.TrimSpace(in.Username)
	if username == "" || strings.TrimSpace(in.Password) == "" {
		return nil, domain.ErrEntradaInvalida
	}
	rol := entity.ParseRol(in.DbRole)
	if !rolAsignable(rol) {
		return nil, domain.ErrEntradaInvalida
	}

	mensaje, err := uc.api.CrearLogin(ctx, s.Token, username, in.Password, rol)
	if err != nil {
		return nil, err
	}
	if mensaje == "" {
		mensaje = "Creado"
	}
	return &dto.CrearLoginResponse{Mensaje: mensaje}, nil
}

// Roles describe los roles asignables para el selector de la pantalla.
func (uc *UseCase) Roles() []dto.RolInfo {
	return []dto.RolInfo{
		{
			Rol:         string(entity.RolLectura),
			Nombre:      "db_datareader (Lectura)",
			Descripcion: "Permite leer datos de todas las tablas. Solo permisos SELECT.",
		},
		{
			Rol:         string(entity.RolEscritura),
			Nombre:      "db_datawriter (Escritura)",
			Descripcion: "Permite insertar, actualizar y eliminar datos. Permisos INSERT, UPDATE y DELETE.",
		},
		{
			Rol:         string(entity.RolOwner),
			Nombre:      "db_owner (Admin BD)",
			Descripcion: "Control total sobre la base de datos. Puede crear tablas, vistas, procedimientos, etc.",
		},
	}
}

func rolAsignable(r entity.Rol) bool {
	for _, a := range rolesAsignables {
		if r == a {
			return true
		}
	}
	return false
}

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

var _ repository.SesionRepository = (*SesionStore)(nil)

const archivoSesion = "sesion.json"

// SesionStore persiste la sesión del operador en un archivo JSON dentro del
// directorio de estado. Token y usuario viven en el mismo documento: se
// escriben y se borran juntos, nunca por separado.
type SesionStore struct {
	ruta string
	mu   sync.Mutex
	log  *logger.Logger
}

// NewSesionStore construye el store y asegura el directorio de estado.
func NewSesionStore(dir string, log *logger.Logger) (*SesionStore, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sesion: crear directorio de estado: %w", err)
	}
	return &SesionStore{ruta: filepath.Join(dir, archivoSesion), log: log}, nil
}

// Guardar escribe la sesión completa de forma atómica (archivo temporal + rename).
func (s *SesionStore) Guardar(sesion entity.Sesion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(sesion, "", "  ")
	if err != nil {
		return fmt.Errorf("sesion: codificar: %w", err)
	}
	tmp := s.ruta + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("sesion: escribir: %w", err)
	}
	if err := os.Rename(tmp, s.ruta); err != nil {
		return fmt.Errorf("sesion: persistir: %w", err)
	}
	return nil
}

// Actual devuelve la sesión persistida. Archivo ausente o ilegible equivale a
// "sin sesión": nunca se propaga el error de lectura al llamador.
func (s *SesionStore) Actual() entity.Sesion {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.ruta)
	if err != nil {
		return entity.Sesion{}
	}
	var sesion entity.Sesion
	if err := json.Unmarshal(raw, &sesion); err != nil {
		s.log.Warn().Err(err).Msg("sesión persistida ilegible, se trata como ausente")
		return entity.Sesion{}
	}
	return sesion
}

// Limpiar borra la sesión incondicionalmente. Que no exista no es un error.
func (s *SesionStore) Limpiar() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.ruta); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("sesion: limpiar: %w", err)
	}
	return nil
}

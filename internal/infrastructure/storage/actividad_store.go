package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/repository"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

var _ repository.ActividadRepository = (*ActividadStore)(nil)

const archivoActividad = "actividad.json"

// ActividadStore bitácora de actividad reciente: lista acotada, ordenada de
// más reciente a más antigua, persistida en JSON y replicada entre procesos
// que compartan el directorio de estado. La convergencia es "gana el último
// que escribe": un cambio ajeno detectado vía fsnotify reemplaza la copia en
// memoria sin resolución de conflictos.
type ActividadStore struct {
	ruta string
	log  *logger.Logger

	mu        sync.Mutex
	lista     []entity.Actividad
	ultimoRaw []byte // bytes del último estado persistido o leído; distingue escrituras propias de ajenas
	subs      map[int]chan []entity.Actividad
	proxSub   int

	watcher    *fsnotify.Watcher
	cerrado    chan struct{}
	cerrarOnce sync.Once
}

// semillas entradas de cortesía cuando no hay nada persistido o el archivo
// está corrupto; la bitácora nunca arranca vacía.
func semillas() []entity.Actividad {
	ahora := time.Now()
	return []entity.Actividad{
		{
			ID:     uuid.NewString(),
			Titulo: "Inventario ajustado por Jeffox",
			Fecha:  ahora.Add(-30 * time.Minute),
			Tipo:   entity.ActividadActualizar,
			Icono:  "checkmark-circle",
		},
		{
			ID:     uuid.NewString(),
			Titulo: "Producto creado por Jeffox",
			Fecha:  ahora.Add(-2 * time.Hour),
			Tipo:   entity.ActividadCrear,
			Icono:  "add",
		},
	}
}

// NewActividadStore construye el store, carga (o siembra) la lista y deja un
// watcher vigilando el archivo para sincronizar con otros procesos.
func NewActividadStore(dir string, log *logger.Logger) (*ActividadStore, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("actividad: crear directorio de estado: %w", err)
	}

	s := &ActividadStore{
		ruta:    filepath.Join(dir, archivoActividad),
		log:     log,
		subs:    make(map[int]chan []entity.Actividad),
		cerrado: make(chan struct{}),
	}
	s.lista, s.ultimoRaw = s.cargar()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("actividad: watcher: %w", err)
	}
	// Se vigila el directorio, no el archivo: el rename de la escritura
	// atómica invalidaría un watch sobre el archivo mismo.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("actividad: vigilar %s: %w", dir, err)
	}
	s.watcher = watcher
	go s.vigilar()

	return s, nil
}

// Agregar estampa fecha e id si faltan, antepone la entrada, trunca al tope,
// persiste la lista completa y la publica a los suscriptores.
func (s *ActividadStore) Agregar(a entity.Actividad) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Fecha.IsZero() {
		a.Fecha = time.Now()
	}

	lista := make([]entity.Actividad, 0, len(s.lista)+1)
	lista = append(lista, a)
	lista = append(lista, s.lista...)
	if len(lista) > entity.MaxActividades {
		lista = lista[:entity.MaxActividades]
	}
	s.lista = lista

	if err := s.persistir(); err != nil {
		return err
	}
	s.publicar()
	return nil
}

// Recientes devuelve una copia de la lista, de más reciente a más antigua.
func (s *ActividadStore) Recientes() []entity.Actividad {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Actividad, len(s.lista))
	copy(out, s.lista)
	return out
}

// Suscribir entrega un canal que recibe la lista tras cada cambio, propio o
// ajeno. El envío nunca bloquea: un suscriptor lento pierde instantáneas
// intermedias, no la final.
func (s *ActividadStore) Suscribir() (<-chan []entity.Actividad, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.proxSub
	s.proxSub++
	ch := make(chan []entity.Actividad, 1)
	s.subs[id] = ch

	cancelar := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
	return ch, cancelar
}

// Cerrar detiene el watcher y cierra las suscripciones. Es idempotente.
func (s *ActividadStore) Cerrar() error {
	var err error
	s.cerrarOnce.Do(func() {
		close(s.cerrado)
		err = s.watcher.Close()

		s.mu.Lock()
		defer s.mu.Unlock()
		for id, ch := range s.subs {
			delete(s.subs, id)
			close(ch)
		}
	})
	return err
}

// cargar lee la lista persistida; ausencia, JSON ilegible o lista vacía caen
// a las semillas.
func (s *ActividadStore) cargar() ([]entity.Actividad, []byte) {
	raw, err := os.ReadFile(s.ruta)
	if err != nil {
		return semillas(), nil
	}
	var lista []entity.Actividad
	if err := json.Unmarshal(raw, &lista); err != nil || len(lista) == 0 {
		if err != nil {
			s.log.Warn().Err(err).Msg("bitácora persistida ilegible, se siembra de nuevo")
		}
		return semillas(), nil
	}
	if len(lista) > entity.MaxActividades {
		lista = lista[:entity.MaxActividades]
	}
	return lista, raw
}

// persistir escribe la lista de forma atómica y recuerda los bytes escritos
// para reconocer después los eventos de esta misma escritura. Llamar con mu tomado.
func (s *ActividadStore) persistir() error {
	raw, err := json.MarshalIndent(s.lista, "", "  ")
	if err != nil {
		return fmt.Errorf("actividad: codificar: %w", err)
	}
	tmp := s.ruta + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("actividad: escribir: %w", err)
	}
	if err := os.Rename(tmp, s.ruta); err != nil {
		return fmt.Errorf("actividad: persistir: %w", err)
	}
	s.ultimoRaw = raw
	return nil
}

// publicar reparte una copia de la lista a cada suscriptor. Llamar con mu tomado.
func (s *ActividadStore) publicar() {
	for _, ch := range s.subs {
		copia := make([]entity.Actividad, len(s.lista))
		copy(copia, s.lista)
		select {
		case ch <- copia:
		default:
			// canal lleno: se descarta la instantánea vieja y se deja la nueva
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- copia:
			default:
			}
		}
	}
}

// vigilar atiende los eventos del watcher: una escritura ajena sobre el
// archivo recarga la lista y la republica.
func (s *ActividadStore) vigilar() {
	for {
		select {
		case <-s.cerrado:
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != s.ruta || !ev.Op.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			s.recargarSiAjeno()
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn().Err(err).Msg("watcher de bitácora")
		}
	}
}

// recargarSiAjeno relee el archivo y, si los bytes difieren de la última
// escritura propia, adopta la versión del disco (gana el último que escribe).
func (s *ActividadStore) recargarSiAjeno() {
	raw, err := os.ReadFile(s.ruta)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if bytes.Equal(raw, s.ultimoRaw) {
		return
	}
	var lista []entity.Actividad
	if err := json.Unmarshal(raw, &lista); err != nil || len(lista) == 0 {
		return
	}
	if len(lista) > entity.MaxActividades {
		lista = lista[:entity.MaxActividades]
	}
	s.lista = lista
	s.ultimoRaw = raw
	s.publicar()
}

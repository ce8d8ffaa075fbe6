package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

// Client cliente HTTP del API remoto de comercio. Todas las operaciones
// autenticadas llevan `Authorization: Bearer <token>` y las respuestas
// exitosas vienen en el sobre {ok: true, data: ...}.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. baseURL es la raíz del API (.../api).
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// envelope sobre estándar de respuesta del API remoto.
// El mensaje de error puede venir en la raíz o anidado en error.message.
type envelope struct {
	// Puntero para distinguir "ok ausente" (respuestas que solo traen message,
	// como crear-login) de un "ok: false" explícito.
	OK      *bool           `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (e *envelope) mensaje() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Error != nil {
		return e.Error.Message
	}
	return ""
}

// do ejecuta la petición y devuelve el sobre decodificado.
// Una respuesta 2xx con ok != true se trata como fallo, no como éxito parcial.
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: codificar cuerpo: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("api: construir petición: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("api remoto inalcanzable")
		return nil, &domain.RemoteError{Status: 0, Err: domain.ErrServidorNoDisponible}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RemoteError{Status: resp.StatusCode, Err: domain.ErrRespuestaInvalida}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorDesdeStatus(resp.StatusCode, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &domain.RemoteError{Status: resp.StatusCode, Err: domain.ErrRespuestaInvalida}
	}
	if env.OK != nil && !*env.OK {
		return nil, &domain.RemoteError{Status: resp.StatusCode, Mensaje: env.mensaje(), Err: domain.ErrRespuestaInvalida}
	}
	return &env, nil
}

// decodificar vuelca el sobre exitoso en out.
func (c *Client) decodificar(env *envelope, out interface{}) error {
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &domain.RemoteError{Status: http.StatusOK, Err: domain.ErrRespuestaInvalida}
	}
	return nil
}

// errorDesdeStatus traduce un código HTTP de fallo al error de dominio
// equivalente, conservando el mensaje del servidor si lo hay.
func errorDesdeStatus(status int, raw []byte) error {
	var env envelope
	_ = json.Unmarshal(raw, &env)

	re := &domain.RemoteError{Status: status, Mensaje: env.mensaje()}
	switch {
	case status == http.StatusUnauthorized:
		re.Err = domain.ErrNoAutorizado
	case status == http.StatusNotFound:
		re.Err = domain.ErrNoEncontrado
	case status == http.StatusConflict:
		re.Err = domain.ErrConflicto
	case status == http.StatusBadRequest:
		re.Err = domain.ErrEntradaInvalida
	case status >= 500:
		re.Err = domain.ErrServidorNoDisponible
	default:
		re.Err = domain.ErrRespuestaInvalida
	}
	return re
}

// nilSiVacio normaliza un campo opcional: en blanco viaja como nulo.
func nilSiVacio(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

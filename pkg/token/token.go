package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Info claims informativos extraídos del bearer token que emite el API remoto.
// El gateway no valida la firma (el secreto vive en el servidor); solo inspecciona
// los claims para mostrarlos y detectar expiración de forma temprana.
type Info struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Inspect decodifica el token sin verificar la firma y devuelve sus claims básicos.
// Retorna error si el token no es un JWT bien formado.
func Inspect(tokenString string) (*Info, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token: cadena vacía")
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}

	info := &Info{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}

// Expired indica si el token trae claim exp y este ya pasó.
// Un token sin exp se considera vigente: la última palabra la tiene el servidor.
func (i *Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

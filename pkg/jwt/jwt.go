package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTypeRefresh marca los refresh tokens para que no puedan usarse como
// tokens de acceso ni al revés.
const tokenTypeRefresh = "refresh"

// ErrExpired indica que el token era válido pero ya expiró. El boundary lo
// reporta con un mensaje distinto aunque el resultado siga siendo 401.
var ErrExpired = errors.New("jwt: token expirado")

// Claims incluye los claims estándar JWT más la identidad de la aplicación:
// {id, role, email}. Role viaja en el token para que el middleware RBAC
// decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Role      string `json:"role"` // "admin" | "coordinador" | "auxiliar"
	Email     string `json:"email"`
	TokenType string `json:"token_type,omitempty"` // vacío = acceso, "refresh" = refresh
}

// Generate genera un token de acceso firmado HS256 con expiración en segundos.
func Generate(secret, userID, role, email, issuer string, expSeconds int) (string, error) {
	return generate(secret, userID, role, email, issuer, expSeconds, "")
}

// GenerateRefresh genera un refresh token con su propia vida útil.
func GenerateRefresh(secret, userID, role, email, issuer string, expSeconds int) (string, error) {
	return generate(secret, userID, role, email, issuer, expSeconds, tokenTypeRefresh)
}

func generate(secret, userID, role, email, issuer string, expSeconds int, tokenType string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expSeconds) * time.Second)),
		},
		UserID:    userID,
		Role:      role,
		Email:     email,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida un token de acceso y devuelve sus claims.
// Retorna ErrExpired si el token expiró y otro error si es inválido.
func Parse(secret, tokenString string) (*Claims, error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType == tokenTypeRefresh {
		return nil, fmt.Errorf("jwt: un refresh token no sirve como token de acceso")
	}
	return claims, nil
}

// ParseRefresh valida un refresh token y devuelve sus claims.
func ParseRefresh(secret, tokenString string) (*Claims, error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return nil, fmt.Errorf("jwt: se esperaba un refresh token")
	}
	return claims, nil
}

func parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

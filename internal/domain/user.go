package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UpdateUserRequest é o payload de edição parcial de usuário
type UpdateUserRequest struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
	Email    *string `json:"email"`
	Active   *bool   `json:"active"`
	RoleID   *int    `json:"role_id"`
	Deleted  *bool   `json:"deleted"`
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	jwt.RegisteredClaims
}

// DisplayName é o nome usado nos campos de atribuição dos registros
// gravados pelo usuário
func (c *Claims) DisplayName() string {
	if c.UserLastname == "" {
		return c.UserName
	}
	return c.UserName + " " + c.UserLastname
}

// Attribution identifica quem emitiu uma escrita. O core não autentica:
// apenas carimba esses campos nos registros que grava.
type Attribution struct {
	UserID   *int
	UserName string
}

// AttributionFromClaims monta a atribuição a partir das claims do token
func AttributionFromClaims(claims *Claims) Attribution {
	if claims == nil {
		return Attribution{UserName: "Unknown"}
	}
	id := claims.UserID
	return Attribution{UserID: &id, UserName: claims.DisplayName()}
}

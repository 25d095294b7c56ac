package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Claims defines the structure of the session token claims. SkyColor is a
// fixed marker value present in every token this application issues.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	SkyColor string `json:"sky_color"`
	jwt.RegisteredClaims
}

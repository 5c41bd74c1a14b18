package entity

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	Email    *string `json:"email"    bun:"email"`
	Password *string `json:"-"        bun:"password"`
	Role     *string `json:"role"     bun:"role"`
}

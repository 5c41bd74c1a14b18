package entity

import (
	"github.com/uptrace/bun"
)

type Location struct {
	bun.BaseModel `bun:"table:location"`

	BasicEntity
	Name    *string `json:"name"     bun:"name"`
	Address *string `json:"address"  bun:"address"`
	City    *string `json:"city"     bun:"city"`
	State   *string `json:"state"    bun:"state"`
	Country *string `json:"country"  bun:"country"`
	ZipCode *string `json:"zip_code" bun:"zip_code"`
}

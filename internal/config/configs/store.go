package configs

import "strings"

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Store selects where campaigns and token balances live.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
	// Seed creates demo campaigns on an empty registry at startup.
	Seed bool `env:"SEED" envDefault:"false"`
}

// DriverName normalises Driver. Anything but "memory" selects postgres.
func (c Store) DriverName() string {
	if strings.EqualFold(strings.TrimSpace(c.Driver), StoreMemory) {
		return StoreMemory
	}
	return StorePostgres
}

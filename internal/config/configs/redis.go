package configs

// Redis configures pub/sub fan-out of campaign events. An empty address
// disables it.
type Redis struct {
	// Address is host:port or a redis:// URL.
	Address string `env:"ADDRESS"`
	Channel string `env:"CHANNEL" envDefault:"crowdfund:campaign-events"`
}

func (c Redis) Enabled() bool {
	return c.Address != ""
}

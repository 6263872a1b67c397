package configs

// Kafka configures the campaign event stream. No brokers disables it.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"crowdfund.campaign-events"`
}

func (c Kafka) Enabled() bool {
	return len(c.Brokers) > 0
}

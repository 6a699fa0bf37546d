package configs

// Redis holds configuration for the Redis instance backing the rate
// limiter. When Addr is empty, rate limiting is disabled and the open
// endpoints accept all traffic.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
}

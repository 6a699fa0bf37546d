package configs

// Auth configures the bearer token that gates the analytics and offer read
// routes. The selection and tracking endpoints are deliberately open; the
// full identity system lives outside this service. An empty token disables
// the dashboard routes entirely rather than leaving them open.
type Auth struct {
	Token string `env:"TOKEN" envDefault:""`
}

package configs

// Promo holds link building options and the per-minute rate limits applied
// to the open endpoints. The limits mirror the expected call volumes: one
// selection per newsletter send, a burst of impressions per send, and click
// spikes when a popular newsletter lands.
type Promo struct {
	// BaseURL is prepended to built tracking links. Empty yields relative
	// links, which is what the newsletter template expects.
	BaseURL string `env:"BASE_URL" envDefault:""`

	SelectPerMinute     int `env:"SELECT_PER_MINUTE" envDefault:"120"`
	ImpressionPerMinute int `env:"IMPRESSION_PER_MINUTE" envDefault:"200"`
	ClickPerMinute      int `env:"CLICK_PER_MINUTE" envDefault:"500"`
}

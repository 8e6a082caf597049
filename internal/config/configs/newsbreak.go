package configs

import "time"

// NewsBreak holds configuration for the remote ad platform client. The
// BaseURL covers every endpoint of the business API; access tokens are not
// configured here, they are stored per advertiser in the database.
type NewsBreak struct {
	// BaseURL is the root of the NewsBreak business API.
	BaseURL string `env:"BASE_URL" envDefault:"https://business.newsbreak.com/business-api/v1"`
	// Timeout bounds every remote call including the response body read. A
	// zero value disables the client side deadline.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

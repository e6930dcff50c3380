package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, provider keys,
//   channel ids), security settings
// - default: Values common across all environments (currency, timeouts),
//   standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Site    SiteConfig
	CORS    CORSConfig
	Log     LogConfig
	Stripe  StripeConfig
	Discord DiscordConfig
	Payout  PayoutConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// SiteConfig carries the public storefront origin. When set it always wins
// over the request's own Origin/Host when building redirect URLs.
type SiteConfig struct {
	URL string `envconfig:"SITE_URL" default:""`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	Currency      string `envconfig:"STRIPE_CURRENCY" default:"usd"`
}

type DiscordConfig struct {
	BotToken       string `envconfig:"DISCORD_BOT_TOKEN" required:"true"`
	PublicKey      string `envconfig:"DISCORD_PUBLIC_KEY" required:"true"`
	AdminChannelID string `envconfig:"DISCORD_ADMIN_CHANNEL_ID" required:"true"`
	JobsChannelID  string `envconfig:"DISCORD_JOBS_CHANNEL_ID" required:"true"`
	LogChannelID   string `envconfig:"DISCORD_LOG_CHANNEL_ID" default:""`
}

// PayoutConfig controls the booster's cut of the paid amount.
type PayoutConfig struct {
	BoosterShare float64 `envconfig:"PAYOUT_BOOSTER_SHARE" default:"0.70"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Site: SiteConfig{
			URL: "https://boost.example.com",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Stripe: StripeConfig{
			SecretKey:     "sk_test_dummy",
			WebhookSecret: "whsec_dummy",
			Currency:      "usd",
		},
		Discord: DiscordConfig{
			BotToken:       "test-token",
			PublicKey:      "00",
			AdminChannelID: "admin-channel",
			JobsChannelID:  "jobs-channel",
			LogChannelID:   "log-channel",
		},
		Payout: PayoutConfig{
			BoosterShare: 0.70,
		},
	}
}

package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database  *Database
	HTTP      *HTTP
	Notify    *Notify
	App       *App
	Providers *Providers
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Notify struct {
	Endpoint string `env:"NOTIFY_ENDPOINT"`
}

// Providers carries one secret block per payment provider. Secrets are
// injected into the gateway adapters at construction and are never read from
// ambient state inside request handling.
type Providers struct {
	FastPay FastPay
	OvoPay  OvoPay
	Zentra  Zentra
}

type FastPay struct {
	MerchantCode string `env:"FASTPAY_MERCHANT_CODE"`
	Secret       string `env:"FASTPAY_SECRET"`
	PayURL       string `env:"FASTPAY_PAY_URL"`
	ReturnURL    string `env:"FASTPAY_RETURN_URL"`
}

type OvoPay struct {
	PartnerCode string `env:"OVOPAY_PARTNER_CODE"`
	AccessKey   string `env:"OVOPAY_ACCESS_KEY"`
	Secret      string `env:"OVOPAY_SECRET"`
	Endpoint    string `env:"OVOPAY_ENDPOINT"`
	ReturnURL   string `env:"OVOPAY_RETURN_URL"`
}

type Zentra struct {
	AppID  string `env:"ZENTRA_APP_ID"`
	Key    string `env:"ZENTRA_KEY"`
	PayURL string `env:"ZENTRA_PAY_URL"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var notify Notify
	var app App
	var providers Providers

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&notify.Endpoint, "n", "", "Notification service endpoint")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&notify)
	if err != nil {
		return nil, fmt.Errorf("error parsing notify config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&providers.FastPay)
	if err != nil {
		return nil, fmt.Errorf("error parsing fastpay config: %w", err)
	}
	err = env.Parse(&providers.OvoPay)
	if err != nil {
		return nil, fmt.Errorf("error parsing ovopay config: %w", err)
	}
	err = env.Parse(&providers.Zentra)
	if err != nil {
		return nil, fmt.Errorf("error parsing zentra config: %w", err)
	}

	config := Config{
		Database:  &db,
		HTTP:      &http,
		Notify:    &notify,
		App:       &app,
		Providers: &providers,
	}

	return &config, nil
}

package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	// DatabaseURL is the store endpoint ("tcp(host:port)/dbname?parseTime=true"),
	// DatabaseRoleKey the privileged credential ("user:password"). Both must be
	// set for the store-backed endpoints to come up.
	DatabaseURL     string `env:"DATABASE_URL"`
	DatabaseRoleKey string `env:"DATABASE_ROLE_KEY"`

	Checkout Checkout `envPrefix:"CHECKOUT_"`
}

// Checkout holds the flat fee policy added on top of the cart subtotal.
type Checkout struct {
	ShippingKRW int64 `env:"SHIPPING_KRW" envDefault:"10000"`
	DutyKRW     int64 `env:"DUTY_KRW" envDefault:"0"`
	FeeKRW      int64 `env:"FEE_KRW" envDefault:"3000"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

func (c *Config) StoreConfigured() bool {
	return c.DatabaseURL != "" && c.DatabaseRoleKey != ""
}

// StoreDSN joins the credential and the endpoint into a driver DSN.
func (c *Config) StoreDSN() string {
	return c.DatabaseRoleKey + "@" + c.DatabaseURL
}

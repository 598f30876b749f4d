package config

import "fmt"

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	SMTPHost    string `mapstructure:"smtp_host"`
	SMTPPort    int    `mapstructure:"smtp_port"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	Enabled     bool   `mapstructure:"enabled"`
}

// GatewayConfig holds the CCAvenue merchant credentials and integration flags.
// The working key is the shared symmetric secret; the access code is the
// gateway-assigned public identifier submitted alongside the encrypted payload.
type GatewayConfig struct {
	MerchantID          string   `mapstructure:"merchant_id"`
	AccessCode          string   `mapstructure:"access_code"`
	WorkingKey          string   `mapstructure:"working_key"`
	TestMode            bool     `mapstructure:"test_mode"`
	Enabled             bool     `mapstructure:"enabled"`
	SupportedCurrencies []string `mapstructure:"supported_currencies"`
	SuccessURL          string   `mapstructure:"success_url"`
	CancelURL           string   `mapstructure:"cancel_url"`
}

// Validate checks configuration consistency. It must pass before any
// integration call is made.
func (g *GatewayConfig) Validate() error {
	if g.Enabled {
		if g.MerchantID == "" || g.AccessCode == "" || g.WorkingKey == "" {
			return fmt.Errorf("merchant_id, access_code and working_key are required when the gateway is enabled")
		}
	}
	for _, c := range g.SupportedCurrencies {
		if len(c) != 3 {
			return fmt.Errorf("invalid currency code %q: currency codes must be 3 characters long", c)
		}
	}
	return nil
}

// SupportsCurrency reports whether the configured supported-currency list
// contains the given code. Matching is exact and case-sensitive.
func (g *GatewayConfig) SupportsCurrency(code string) bool {
	for _, c := range g.SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config es la configuración del proceso completa; incluye las piezas
// que el diseño original dejaba como estado global (whitelist de IPs,
// CORS) para que el router las reciba explícitamente.
type Config struct {
	Port        string   `mapstructure:"PORT"`
	Env         string   `mapstructure:"ENV"`
	DataDir     string   `mapstructure:"DATA_DIR"`
	DBDSN       string   `mapstructure:"DB_DSN"`
	AllowedIPs  []string `mapstructure:"ALLOWED_IPS"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`
	StaticDir   string   `mapstructure:"STATIC_DIR"`
	LogLevel    string   `mapstructure:"LOG_LEVEL"`
	LogFormat   string   `mapstructure:"LOG_FORMAT"`
	AppName     string   `mapstructure:"APP_NAME"`
}

// Default devuelve la config de dev: storage jsonfile bajo ./data,
// whitelist deshabilitada.
func Default() *Config {
	return &Config{
		Port:        "3000",
		Env:         "development",
		DataDir:     "data",
		StaticDir:   "static",
		CORSOrigins: []string{"*"},
		LogLevel:    "info",
		AppName:     "med-reminder",
	}
}

// Load lee env vars y un .env opcional en el cwd.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("APP_NAME", "med-reminder")

	// Bind explícito para que Unmarshal levante las env vars.
	for _, key := range []string{
		"PORT", "ENV", "DATA_DIR", "DB_DSN", "ALLOWED_IPS",
		"CORS_ORIGINS", "STATIC_DIR", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	} {
		_ = v.BindEnv(key)
	}

	// .env es opcional; si no existe seguimos con env puro.
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.AllowedIPs) == 0 {
		cfg.AllowedIPs = splitList(v.GetString("ALLOWED_IPS"))
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))
	}

	return cfg, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"reflect"
	"strings"

	"stock-terminal/core/assist"
	"stock-terminal/core/catalog"
	"stock-terminal/core/database"
	"stock-terminal/core/logger"
	"stock-terminal/core/metrics"
	"stock-terminal/core/server"
	"stock-terminal/core/storage"
	"stock-terminal/core/view"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Each section is defined next to the package that consumes it.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage holding the catalog.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the catalog database.
	Database database.Config `mapstructure:"database"`
	// Catalog selects where item metadata is loaded from.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Search holds the initial search, sort and view settings.
	Search view.Config `mapstructure:"search"`
	// Assist holds configuration for the search-assist publisher.
	Assist assist.Config `mapstructure:"assist"`
	// Metrics holds configuration for the Prometheus metrics.
	Metrics metrics.Config `mapstructure:"metrics"`
}

// LoadConfig loads configuration from environment variables and the .env
// file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine in production
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every 'mapstructure' key with
// its 'default' tag value, so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}

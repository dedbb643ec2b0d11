package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the server needs: where to listen, how to reach
// the database, and the single credential pair guarding the management API.
type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	User struct {
		Username string
		Password string
	}
}

// Load reads server config from an optional TOML file and YAUS_-prefixed
// environment variables, with the environment taking precedence. The file is
// yaus.toml in the working directory, or whatever YAUS_CONFIG_PATH points at.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("YAUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("YAUS_CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("yaus")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		_ = v.ReadInConfig() // optional config file
	}

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.hostname", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.username", "yaus")
	v.SetDefault("db.password", "password")
	v.SetDefault("db.database", "yaus")
	v.SetDefault("user.username", "admin")
	v.SetDefault("user.password", "admin")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.User.Username = v.GetString("user.username")
	cfg.User.Password = v.GetString("user.password")

	switch cfg.DB.Driver {
	case "sqlite3", "mysql", "postgres":
	default:
		return nil, fmt.Errorf("unsupported YAUS_DB_DRIVER %q: must be sqlite3, mysql, or postgres", cfg.DB.Driver)
	}

	// A full DSN wins; otherwise assemble one from the discrete Postgres
	// fields so a plain [db] hostname/port/username config keeps working.
	if cfg.DB.DSN == "" {
		if cfg.DB.Driver != "postgres" {
			return nil, fmt.Errorf("YAUS_DB_DSN is required for driver %q", cfg.DB.Driver)
		}
		cfg.DB.DSN = postgresDSN(
			v.GetString("db.username"),
			v.GetString("db.password"),
			v.GetString("db.hostname"),
			v.GetInt("db.port"),
			v.GetString("db.database"),
		)
	}

	if cfg.User.Username == "" || cfg.User.Password == "" {
		return nil, fmt.Errorf("YAUS_USER_USERNAME and YAUS_USER_PASSWORD must not be empty")
	}

	return cfg, nil
}

func postgresDSN(user, pass, host string, port int, database string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, pass),
		Host:   fmt.Sprintf("%s:%d", host, port),
		Path:   "/" + database,
	}
	q := u.Query()
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}

// ClientConfig holds what the CLI needs to reach a YAUS server.
type ClientConfig struct {
	URL      string
	Username string
	Password string
}

// LoadClient reads CLI config from $XDG_CONFIG_HOME/yaus/config.toml (falling
// back to ~/.config/yaus/config.toml) and YAUS_-prefixed environment
// variables. A missing file is fine as long as the environment fills in the
// server URL.
func LoadClient() (*ClientConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("YAUS")
	v.AutomaticEnv()

	dir, err := clientConfigDir()
	if err == nil {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(dir)
		_ = v.ReadInConfig()
	}

	v.SetDefault("username", "admin")
	v.SetDefault("password", "admin")

	cfg := &ClientConfig{
		URL:      v.GetString("url"),
		Username: v.GetString("username"),
		Password: v.GetString("password"),
	}

	if cfg.URL == "" {
		return nil, fmt.Errorf("no server URL configured: set YAUS_URL or `url` in %s", filepath.Join(dir, "config.toml"))
	}
	if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", cfg.URL, err)
	}

	return cfg, nil
}

func clientConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "yaus"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "yaus"), nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"google.golang.org/api/calendar/v3"

	"gcalgateway/lib/mypublisher"
	"gcalgateway/lib/mystore"
)

const DefaultFilename = "gcalgateway.toml"

type Config struct {
	Port      int             `toml:"port"`
	Google    GoogleConfig    `toml:"google"`
	Store     StoreConfig     `toml:"store"`
	Publisher PublisherConfig `toml:"publisher"`
}

type GoogleConfig struct {
	ClientID     string   `toml:"client_id"`
	ClientSecret string   `toml:"client_secret"`
	RedirectURL  string   `toml:"redirect_url"`
	Scopes       []string `toml:"scopes"`
}

type StoreConfig struct {
	Driver   string `toml:"driver"`
	Path     string `toml:"path"`
	Addr     string `toml:"addr"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type PublisherConfig struct {
	Driver  string   `toml:"driver"`
	Brokers []string `toml:"brokers"`
}

// Load reads the named TOML file, trying the current dir first and
// `$HOME/.config/gcalgateway/` second. A missing file is not an error:
// defaults plus environment variables then make up the configuration.
func Load(filename string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(filename)
	if err != nil {
		data, err = os.ReadFile(os.Getenv("HOME") + "/.config/gcalgateway/" + filename)
	}
	if err == nil {
		err = toml.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %s", filename, err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Port: 8080,
		Google: GoogleConfig{
			Scopes: []string{calendar.CalendarScope},
		},
		Store: StoreConfig{
			// An empty driver auto-selects: file locally, datastore on GCP.
			Path: "token.json",
		},
		Publisher: PublisherConfig{
			Driver: mypublisher.DriverNone,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err == nil {
			cfg.Port = port
		}
	}

	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		cfg.Google.ClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		cfg.Google.ClientSecret = v
	}
	if v := os.Getenv("GOOGLE_REDIRECT_URL"); v != "" {
		cfg.Google.RedirectURL = v
	}
	if v := os.Getenv("GOOGLE_SCOPES"); v != "" {
		cfg.Google.Scopes = strings.Split(v, ",")
	}

	if v := os.Getenv("GCALGW_STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("GCALGW_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("GCALGW_STORE_ADDR"); v != "" {
		cfg.Store.Addr = v
	}
	if v := os.Getenv("GCALGW_STORE_USERNAME"); v != "" {
		cfg.Store.Username = v
	}
	if v := os.Getenv("GCALGW_STORE_PASSWORD"); v != "" {
		cfg.Store.Password = v
	}
	if v := os.Getenv("GCALGW_STORE_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err == nil {
			cfg.Store.DB = db
		}
	}
	if v := os.Getenv("GCALGW_STORE_PREFIX"); v != "" {
		cfg.Store.Prefix = v
	}

	if v := os.Getenv("GCALGW_PUBLISHER_DRIVER"); v != "" {
		cfg.Publisher.Driver = v
	}
	if v := os.Getenv("GCALGW_PUBLISHER_BROKERS"); v != "" {
		cfg.Publisher.Brokers = strings.Split(v, ",")
	}
}

func (c *Config) StoreConfig() mystore.Config {
	return mystore.Config{
		Driver:   c.Store.Driver,
		Path:     c.Store.Path,
		Addr:     c.Store.Addr,
		Username: c.Store.Username,
		Password: c.Store.Password,
		DB:       c.Store.DB,
		Prefix:   c.Store.Prefix,
	}
}

func (c *Config) PublisherConfig() mypublisher.Config {
	return mypublisher.Config{
		Driver:  c.Publisher.Driver,
		Brokers: c.Publisher.Brokers,
	}
}

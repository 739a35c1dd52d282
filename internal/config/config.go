package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goliatone/go-theme"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces every environment override, e.g.
// HEARTFORM_PREDICTOR_BASE_URL.
const EnvPrefix = "HEARTFORM"

// EnvConfigPath points at an explicit config file.
const EnvConfigPath = "HEARTFORM_CONFIG"

// Config holds application configuration.
type Config struct {
	Predictor PredictorConfig `mapstructure:"predictor" yaml:"predictor"`
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Theme     ThemeConfig     `mapstructure:"theme" yaml:"theme"`
}

// PredictorConfig locates the remote prediction service.
type PredictorConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// ServerConfig holds the web front end listen address.
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ThemeConfig carries design tokens for the HTML page.
type ThemeConfig struct {
	Name     string                       `mapstructure:"name" yaml:"name"`
	Variant  string                       `mapstructure:"variant" yaml:"variant"`
	Tokens   map[string]string            `mapstructure:"tokens" yaml:"tokens,omitempty"`
	Variants map[string]map[string]string `mapstructure:"variants" yaml:"variants,omitempty"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Predictor: PredictorConfig{BaseURL: "http://localhost:5000", Path: "/predict"},
		Server:    ServerConfig{Host: "127.0.0.1", Port: 8080},
		Log:       LogConfig{Level: "info", Format: "text"},
		Theme:     ThemeConfig{Name: "default"},
	}
}

// Load reads configuration from defaults, an optional YAML file and env.
// path wins over HEARTFORM_CONFIG; without either, heartform.yaml is looked up
// in the working directory and in $HOME/.config/heartform. An explicit path
// that cannot be read is an error; a missing implicit file is not.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("predictor.base_url", def.Predictor.BaseURL)
	v.SetDefault("predictor.path", def.Predictor.Path)
	v.SetDefault("server.host", def.Server.Host)
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("theme.name", def.Theme.Name)
	v.SetDefault("theme.variant", def.Theme.Variant)
	v.SetDefault("theme.tokens", map[string]string{})
	v.SetDefault("theme.variants", map[string]map[string]string{})

	v.SetConfigType("yaml")

	explicit := strings.TrimSpace(path)
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("heartform")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "heartform"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values the front ends cannot recover from.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Predictor.BaseURL) == "" {
		return errors.New("config: predictor.base_url is required")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: unknown log.format %q", c.Log.Format)
	}
	return nil
}

// Addr returns the listen address of the web front end.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Manifest converts the theme section into a go-theme manifest. Each entry of
// Variants becomes a variant overriding tokens only.
func (t ThemeConfig) Manifest() *theme.Manifest {
	manifest := &theme.Manifest{
		Name:   t.Name,
		Tokens: copyTokens(t.Tokens),
	}
	if manifest.Name == "" {
		manifest.Name = "default"
	}
	if len(t.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(t.Variants))
		for name, tokens := range t.Variants {
			manifest.Variants[name] = theme.Variant{Tokens: copyTokens(tokens)}
		}
	}
	return manifest
}

// Write renders cfg as YAML.
func Write(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}

func copyTokens(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

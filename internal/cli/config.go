package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/moracle/internal/ingest"
	"github.com/mesh-intelligence/moracle/internal/paths"
	"github.com/mesh-intelligence/moracle/internal/render"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "MORACLE"

	cfgKeyDataDir      = "data_dir"
	cfgKeyMode         = "mode"
	cfgKeyWidth        = "width"
	cfgKeySourceURL    = "source_url"
	cfgKeyFetchTimeout = "fetch_timeout"
	cfgKeyLogLevel     = "log_level"
	cfgKeyLogFile      = "log_file"
	cfgKeyColor        = "color"
)

// configHeader is written above the generated defaults in config.yaml.
func configHeader() string {
	return fmt.Sprintf(`# moracle configuration
# Every key can be overridden with an environment variable named
# MORACLE_<KEY>, e.g. MORACLE_WIDTH=80. Flags override both.
# An empty data_dir uses %s.
# An empty log_file disables file logging; a typical location is
# %s.

`, paths.DefaultDataDir(), paths.DefaultLogFile())
}

// configFile holds the structure written to config.yaml.
type configFile struct {
	DataDir      string `yaml:"data_dir"`
	Mode         string `yaml:"mode"`
	Width        int    `yaml:"width"`
	SourceURL    string `yaml:"source_url"`
	FetchTimeout string `yaml:"fetch_timeout"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
	Color        bool   `yaml:"color"`
}

func defaultConfigFile() configFile {
	return configFile{
		Mode:         string(render.ModeOneLine),
		SourceURL:    ingest.DefaultSourceURL,
		FetchTimeout: ingest.DefaultTimeout.String(),
		LogLevel:     "warn",
	}
}

// settings is the fully resolved configuration for one command run.
type settings struct {
	configDir    string
	dataDir      string
	mode         render.Mode
	width        int
	sourceURL    string
	fetchTimeout time.Duration
	logLevel     string
	logFile      string
	color        bool
}

// loadConfig reads config.yaml from configDir using Viper. It creates the
// config directory and a default config.yaml on first run. MORACLE_*
// environment variables override file values.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	def := defaultConfigFile()
	v := viper.New()
	v.SetDefault(cfgKeyDataDir, def.DataDir)
	v.SetDefault(cfgKeyMode, def.Mode)
	v.SetDefault(cfgKeyWidth, def.Width)
	v.SetDefault(cfgKeySourceURL, def.SourceURL)
	v.SetDefault(cfgKeyFetchTimeout, def.FetchTimeout)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyLogFile, def.LogFile)
	v.SetDefault(cfgKeyColor, def.Color)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, paths.ConfigFileName)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	def := defaultConfigFile()
	data, err := yaml.Marshal(&def)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, append([]byte(configHeader()), data...), 0o644)
}

// loadSettings resolves directories and configuration for cmd. Precedence
// is flag > environment > config file > default.
func loadSettings(cmd *cobra.Command) (settings, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return settings{}, fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return settings{}, err
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return settings{}, fmt.Errorf("resolve data dir: %w", err)
	}

	s := settings{
		configDir:    configDir,
		dataDir:      dataDir,
		width:        v.GetInt(cfgKeyWidth),
		sourceURL:    v.GetString(cfgKeySourceURL),
		fetchTimeout: v.GetDuration(cfgKeyFetchTimeout),
		logLevel:     v.GetString(cfgKeyLogLevel),
		logFile:      v.GetString(cfgKeyLogFile),
		color:        flags.color || v.GetBool(cfgKeyColor),
	}

	if flags.full {
		s.mode = render.ModeFullForm
	} else if s.mode, err = render.ParseMode(v.GetString(cfgKeyMode)); err != nil {
		return settings{}, fmt.Errorf("config %s: %w", cfgKeyMode, err)
	}
	if f := cmd.Flags().Lookup("width"); f != nil && f.Changed {
		s.width = flags.width
	}
	return s, nil
}

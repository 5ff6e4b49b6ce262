package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultOpenWeatherApiUrl = "https://api.openweathermap.org/data/2.5/weather"
	envPrefix                = "WEATHER"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

var (
	configFile string
	// loadErr holds the error of an explicitly requested config file that could not be read.
	loadErr error
)

// Config is the resolved configuration handed to the service and the session.
type Config struct {
	APIURL  string
	APIKey  string
	Units   string
	Timeout time.Duration
	NoColor bool
}

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

// SetConfigFile makes the next config load read path instead of searching the project root.
func SetConfigFile(path string) {
	configFile = path
}

func setDefaults() {
	viper.SetDefault("openweathermap.api_url", DefaultOpenWeatherApiUrl)
	viper.SetDefault("openweathermap.units", "")
	viper.SetDefault("openweathermap.timeout", "")
	viper.SetDefault("display.no_color", false)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.output", "stderr")
}

func initConfig() {
	once.Do(func() {
		loadErr = nil
		setDefaults()
		viper.SetEnvPrefix(envPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()
		viper.SetConfigType("yaml")

		if configFile != "" {
			viper.SetConfigFile(configFile)
			if err := viper.ReadInConfig(); err != nil {
				loadErr = errors.Wrapf(err, "read config file %s", configFile)
			}
			return
		}

		root, err := getProjectRoot()
		if err != nil {
			// Installed binaries run outside the source tree; defaults apply.
			return
		}
		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			return
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			viper.AddConfigPath(root)
			_ = viper.MergeInConfig()
		}
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func GetOpenWeatherApiUrl() string {
	initConfig()
	return viper.GetString("openweathermap.api_url")
}

// GetOpenWeatherMapAPIKey returns the key set through --api-key or WEATHER_OPENWEATHERMAP_API_KEY,
// falling back to OPENWEATHERMAP_API_KEY from the environment or a .env file.
func GetOpenWeatherMapAPIKey() string {
	initConfig()
	if key := viper.GetString("openweathermap.api_key"); key != "" {
		return key
	}
	_ = godotenv.Load()
	return os.Getenv("OPENWEATHERMAP_API_KEY")
}

func GetUnits() string {
	initConfig()
	return viper.GetString("openweathermap.units")
}

// GetRequestTimeout returns the HTTP client timeout. Zero means the client waits indefinitely.
func GetRequestTimeout() (time.Duration, error) {
	initConfig()
	durStr := viper.GetString("openweathermap.timeout")
	if durStr == "" {
		return 0, nil
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid openweathermap.timeout %q", durStr)
	}
	return dur, nil
}

func GetNoColor() bool {
	initConfig()
	return viper.GetBool("display.no_color")
}

func GetLogLevel() string {
	initConfig()
	return viper.GetString("log.level")
}

// Load resolves every setting into a Config and validates it.
func Load() (*Config, error) {
	initConfig()
	if loadErr != nil {
		return nil, loadErr
	}

	timeout, err := GetRequestTimeout()
	if err != nil {
		return nil, err
	}
	conf := &Config{
		APIURL:  GetOpenWeatherApiUrl(),
		APIKey:  GetOpenWeatherMapAPIKey(),
		Units:   GetUnits(),
		Timeout: timeout,
		NoColor: GetNoColor(),
	}
	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	switch c.Units {
	case "", "standard", "metric", "imperial":
	default:
		return errors.Errorf("invalid units: %s", c.Units)
	}
	if c.APIURL == "" {
		return errors.New("openweathermap.api_url must not be empty")
	}
	if c.Timeout < 0 {
		return errors.Errorf("invalid timeout: %s", c.Timeout)
	}
	return nil
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		initConfig()
		level, err := zapcore.ParseLevel(viper.GetString("log.level"))
		if err != nil {
			level = zapcore.WarnLevel
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.DisableStacktrace = true
		cfg.OutputPaths = []string{viper.GetString("log.output")}
		l, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}

package cli

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/adamluzsi/fleet/filters"
)

const (
	keyLogLevel = "log-level"
	keyDB       = "db"
	keyRoster   = "roster"
	keyFilters  = "filters"

	defaultConfigFile = "fleet.yaml"
)

// Config is the resolved configuration of a fleet command.
type Config struct {
	DB       string
	Roster   string
	LogLevel logrus.Level
	// Filters is applied before the filters given with flags.
	Filters filters.Chain
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("FLEET")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return applyLogLevel(v)
		}
		cfgFile = defaultConfigFile
	}

	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config file %s", cfgFile)
	}
	logrus.WithField("file", v.ConfigFileUsed()).Debug("config loaded")
	return applyLogLevel(v)
}

func applyLogLevel(v *viper.Viper) error {
	level, err := logrus.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}

func loadConfig(v *viper.Viper) (Config, error) {
	level, err := logrus.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DB:       v.GetString(keyDB),
		Roster:   v.GetString(keyRoster),
		LogLevel: level,
	}

	if v.IsSet(keyFilters) {
		chain, err := filtersConfig(v.Get(keyFilters))
		if err != nil {
			return Config{}, err
		}
		cfg.Filters = chain
	}

	return cfg, nil
}

// filtersConfig decodes the filters key.
// From FLEET_FILTERS it is the YAML document itself,
// from a config file it is the section decoded into generic maps.
func filtersConfig(value interface{}) (filters.Chain, error) {
	if doc, ok := value.(string); ok {
		return filters.ParseChain([]byte(doc))
	}
	raw, err := yaml.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "reading filters")
	}
	return filters.ParseChain(raw)
}

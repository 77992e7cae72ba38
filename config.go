package schemagen

import (
	"github.com/ghodss/yaml"
	"github.com/go-playground/validator/v10"

	"github.com/chirino/graphql-schemagen/errors"
	"github.com/chirino/graphql-schemagen/log"
	"github.com/chirino/graphql-schemagen/mapper"
	"github.com/chirino/graphql-schemagen/naming"
)

const (
	SimpleNaming = "simple"
	FullNaming   = "full"
	RelayNaming  = "relay"
)

// Config holds the settings of a Builder. It is usually read from YAML:
//
//	naming: relay
//	delimiter: _
//	inputSuffix: Input
//	rootPackages: [sync, "sync/**", "example.com/base"]
//	log:
//	  level: debug
type Config struct {
	Naming       string     `json:"naming,omitempty" validate:"omitempty,oneof=simple full relay"`
	Delimiter    string     `json:"delimiter,omitempty" validate:"omitempty,excludesall=./"`
	InputSuffix  string     `json:"inputSuffix,omitempty" validate:"omitempty,excludesall=./"`
	RootPackages []string   `json:"rootPackages,omitempty" validate:"dive,required"`
	Log          log.Config `json:"log,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Naming:       SimpleNaming,
		Delimiter:    naming.DefaultDelimiter,
		InputSuffix:  "_Input",
		RootPackages: mapper.DefaultRootPackages,
		Log:          log.DefaultConfig(),
	}
}

var validate = validator.New()

// ReadConfig parses a YAML or JSON document over the defaults and validates
// the result.
func ReadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// NamingStrategy returns the naming strategy selected by c.Naming.
func (c Config) NamingStrategy() naming.Strategy {
	switch c.Naming {
	case FullNaming:
		return naming.Full{Delimiter: c.Delimiter}
	case RelayNaming:
		return naming.Relay{Delimiter: c.Delimiter}
	default:
		return naming.Simple{Delimiter: c.Delimiter}
	}
}

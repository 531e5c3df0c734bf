// Package config loads the rule-variant knobs that parameterize a table:
// red-five usage, kuitan, sanchaho handling, starting score, riichi stick
// value, and kiriage mangan rounding. Actor configuration lives in the
// actor package; this covers the table side.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Rules holds every knob that changes legal-action or scoring behavior
// without changing the Stage/Event model itself.
type Rules struct {
	UseRedFives    bool `mapstructure:"useRedFives"`
	KuitanAllowed  bool `mapstructure:"kuitanAllowed"`
	SanchahoIsDraw bool `mapstructure:"sanchahoIsDraw"`
	InitialScore   int  `mapstructure:"initialScore"`
	KyotakuValue   int  `mapstructure:"kyotakuValue"`
	KiriageMangan  bool `mapstructure:"kiriageMangan"`
}

// Defaults matches the most common Japanese riichi ruleset.
func Defaults() Rules {
	return Rules{
		UseRedFives:    true,
		KuitanAllowed:  true,
		SanchahoIsDraw: false,
		InitialScore:   25000,
		KyotakuValue:   1000,
		KiriageMangan:  false,
	}
}

// Load reads rule overrides from a YAML/JSON/TOML file at path, falling
// back to Defaults() for any field the file omits. A missing file is not an
// error: it simply yields the defaults.
func Load(path string) (Rules, error) {
	rules := Defaults()
	if path == "" {
		return rules, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return rules, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return rules, nil
		}
		return rules, err
	}
	if err := v.Unmarshal(&rules); err != nil {
		return rules, err
	}
	return rules, nil
}

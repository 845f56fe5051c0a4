package pipeline

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/tablemap/tablemap/pkg/errors"
	"github.com/tablemap/tablemap/pkg/layout"
)

// fileConfig is the on-disk TOML shape. Only the layout section exists today;
// keeping the wrapper struct means future sections stay backward compatible.
type fileConfig struct {
	Layout layout.Config `toml:"layout"`
}

// LoadOptionsFile reads a TOML config file and returns Options layered over
// the defaults: absent keys keep their default values.
//
// Example file:
//
//	[layout]
//	rank_sep = 160
//	direction = "top-bottom"
func LoadOptionsFile(path string) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	fc := fileConfig{Layout: opts.Layout}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	opts.Layout = fc.Layout

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

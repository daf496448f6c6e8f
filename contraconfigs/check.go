package contraconfigs

import (
	"errors"

	"github.com/reusee/contra/configs"
)

// Check reports the first config error. Providers panic on such errors, so callers check first.
func Check(loader configs.Loader) error {
	var (
		strict bool
		jobs   int
		format Format
		files  []string
	)
	for _, setting := range []struct {
		key    string
		target any
	}{
		{"strict_lexing", &strict},
		{"jobs", &jobs},
		{"format", &format},
		{"files", &files},
	} {
		if err := loader.AssignFirst(setting.key, setting.target); err != nil && !errors.Is(err, configs.ErrValueNotFound) {
			return err
		}
	}
	if format != "" {
		if err := format.Validate(); err != nil {
			return err
		}
	}
	return nil
}

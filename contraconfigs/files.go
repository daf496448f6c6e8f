package contraconfigs

import (
	"github.com/reusee/contra/configs"
)

// Files are source paths listed in config files, in precedence order.
type Files []string

func (Module) Files(
	loader configs.Loader,
) (ret Files) {
	for paths := range configs.All[[]string](loader, "files") {
		ret = append(ret, paths...)
	}
	return
}

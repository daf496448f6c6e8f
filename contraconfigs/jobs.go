package contraconfigs

import (
	"runtime"

	"github.com/reusee/contra/cmds"
	"github.com/reusee/contra/configs"
	"github.com/reusee/contra/vars"
)

// Jobs bounds the number of sources compiled at the same time.
type Jobs int

var jobsFlag = cmds.Var[int]("-jobs", "number of sources compiled concurrently")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	n := vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, "jobs"),
		runtime.NumCPU(),
	)
	return Jobs(max(n, 1))
}

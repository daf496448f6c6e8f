package modes

import (
	"testing"

	"github.com/reusee/contra/cmds"
	"github.com/reusee/dscope"
)

var devFlag = cmds.Switch("-dev", "verify front end invariants on every compile")

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	if *devFlag {
		return ModeDevelopment
	}
	return ModeProduction
}

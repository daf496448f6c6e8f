package contraconfigs

import (
	"github.com/reusee/contra/cmds"
	"github.com/reusee/contra/configs"
	"github.com/reusee/contra/vars"
)

// StrictLexing makes lexical errors abort a compilation before the parser runs.
type StrictLexing bool

var strictFlag = cmds.Switch("-strict", "stop before parsing if the scanner reports errors")

func (Module) StrictLexing(
	loader configs.Loader,
) StrictLexing {
	return StrictLexing(vars.FirstNonZero(
		*strictFlag,
		configs.First[bool](loader, "strict_lexing"),
	))
}

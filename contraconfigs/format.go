package contraconfigs

import (
	"fmt"

	"github.com/reusee/contra/cmds"
	"github.com/reusee/contra/configs"
	"github.com/reusee/contra/vars"
)

type Format string

const (
	FormatSExpr  Format = "sexpr"
	FormatJSON   Format = "json"
	FormatTokens Format = "tokens"
)

var formats = []Format{
	FormatSExpr,
	FormatJSON,
	FormatTokens,
}

var formatFlag = cmds.Var[Format]("-format", "output format: sexpr, json or tokens")

var formatAliases = map[Format]string{
	FormatSExpr:  "ast",
	FormatJSON:   "json",
	FormatTokens: "tokens",
}

func init() {
	for _, format := range formats {
		cmds.Define("-"+string(format), cmds.Func(func() {
			*formatFlag = format
		}).Desc(fmt.Sprintf("same as -format %s", format)).Alias(formatAliases[format]))
	}
}

func (f Format) Validate() error {
	for _, format := range formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown format: %q", string(f))
}

func (Module) Format(
	loader configs.Loader,
) Format {
	return vars.FirstNonZero(
		*formatFlag,
		configs.First[Format](loader, "format"),
		FormatSExpr,
	)
}

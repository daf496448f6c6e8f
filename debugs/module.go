package debugs

import (
	"github.com/reusee/contra/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

package frontends

import (
	"github.com/reusee/contra/contraconfigs"
	"github.com/reusee/contra/debugs"
	"github.com/reusee/contra/logs"
	"github.com/reusee/contra/sources"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs contraconfigs.Module
	Sources sources.Module
	Debugs  debugs.Module
}

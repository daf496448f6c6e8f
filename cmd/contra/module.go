package main

import (
	"github.com/reusee/contra/frontends"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Frontends frontends.Module
}

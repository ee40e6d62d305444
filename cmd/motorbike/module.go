package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/motorbike/consoles"
	"github.com/reusee/motorbike/scripts"
)

type Module struct {
	dscope.Module
	Consoles consoles.Module
	Scripts  scripts.Module
}

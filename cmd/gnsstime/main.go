package main

import (
	"github.com/xunhou0222/gnsstime/cmd/gnsstime/cmd"
)

var version string // set by the compiler

func main() {
	cmd.Execute(version)
}

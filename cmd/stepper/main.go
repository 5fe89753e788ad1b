package main

import (
	steppercmd "github.com/initializ/stepper/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	steppercmd.SetVersionInfo(version, commit)
	steppercmd.Execute()
}

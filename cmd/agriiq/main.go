package main

import (
	agriiqcmd "github.com/vishnuelayi/AgriIQ-Demo/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	agriiqcmd.SetVersionInfo(version, commit)
	agriiqcmd.Execute()
}

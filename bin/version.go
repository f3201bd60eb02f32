package main

import (
	"fmt"
	"runtime/debug"

	"github.com/Velocidex/yaml/v2"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
	"www.velocidex.com/golang/sysmon-report/config"
)

var (
	version_command = app.Command(
		"version", "Print the version and build details.")
)

func doVersion() {
	serialized, err := yaml.Marshal(config.GetVersion())
	kingpin.FatalIfError(err, "Unable to encode version")

	fmt.Print(string(serialized))

	if *verbose_flag {
		build_info, ok := debug.ReadBuildInfo()
		if ok {
			fmt.Printf("\nBuild Info:\n%v\n", build_info)
		}
	}
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case version_command.FullCommand():
			doVersion()

		default:
			return false
		}
		return true
	})
}

package main

import (
	"fmt"

	"github.com/retroenv/retrogolib/buildinfo"
)

const (
	AppVendor = "hexaflex"
	AppName   = "avr-ar"
)

// Set by the linker.
var (
	version = "v0.1.0"
	commit  = ""
	date    = ""
)

// Version returns program version information.
func Version() string {
	return fmt.Sprintf("%s %s %s", AppVendor, AppName, buildinfo.Version(version, commit, date))
}

// Voxnote - a dictation-friendly note widget for the terminal
//
// Copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.

package main

import (
	"os"

	"github.com/manav03panchal/voxnote/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

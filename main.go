package main

import (
	"github.com/ctvaccess/captvty-bridge/cmd"

	// Register the Windows backend.
	_ "github.com/ctvaccess/captvty-bridge/internal/platform/windows"
)

func main() {
	cmd.Execute()
}

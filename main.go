package main

import (
	"github.com/mj1618/deskbar/cmd"

	// Register the Windows platform provider.
	_ "github.com/mj1618/deskbar/internal/platform/windows"
)

func main() {
	cmd.Execute()
}

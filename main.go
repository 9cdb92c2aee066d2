// Command mcserver runs the network core as a standalone process using
// the minimal Default hooks implementation.
package main

import (
	"fmt"
	"os"

	"github.com/go-mclib/mcserver/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

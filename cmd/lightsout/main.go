// Command lightsout runs the GF(2) engine from the shell or serves it over
// HTTP.
package main

import (
	"context"
	"fmt"
	"os"
)

var (
	Version = "dev"
	Commit  = "none"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgallion1/mdfmtr/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		if errors.Is(err, cli.ErrFindings) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "mdfmtr:", err)
		os.Exit(2)
	}
}

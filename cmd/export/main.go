package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errExportIncomplete) {
			fmt.Fprintln(os.Stderr, "export:", err)
		}
		os.Exit(1)
	}
}

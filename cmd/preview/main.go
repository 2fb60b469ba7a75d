package main

import (
	"fmt"
	"os"

	"settleedge_web/preview"
)

func main() {
	if err := preview.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

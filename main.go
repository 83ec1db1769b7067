package main

import (
	"os"

	"github.com/nsxbet/redshift-tables/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Command imurl parses and edits URLs from the command line.
//
//	imurl parse https://example.com/a?b#c
//	imurl edit https://example.com --segment api --segment v1 --port 8080 -o json
package main

import (
	"fmt"
	"os"

	"github.com/ghettovoice/imurl/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// phishctl is the phishing trainer dashboard in a terminal.
//
// Usage:
//
//	phishctl login --server http://localhost:8080 --username alice
//	phishctl stats
//	phishctl profile --full-name "Alice Liddell" --email alice@example.com --level advanced
//	phishctl password
//	phishctl logout
package main

import (
	"fmt"
	"os"

	"phish_trainer/cmd/phishctl/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

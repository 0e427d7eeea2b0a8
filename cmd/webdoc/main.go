// Command webdoc records the pages of a web UI as they are explored and
// renders them into a README.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

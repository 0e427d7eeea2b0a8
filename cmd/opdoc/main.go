// Command opdoc records UI operation steps, highlights the element acted on in
// each screenshot, and renders the steps into an operations guide.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

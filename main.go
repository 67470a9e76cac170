// The main package for the contact-scraper executable.
package main

import (
	"os"

	"github.com/JakeFAU/contact-scraper/cmd"
)

// main defers all execution to the Cobra CLI and exits with its status code.
func main() {
	os.Exit(cmd.Execute())
}

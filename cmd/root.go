// Package cmd defines the contact-scraper command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

// ErrUsage reports that the arguments did not name a single URL.
var ErrUsage = errors.New("invalid arguments")

const usageText = `

Pass an url of a website as an only argument to extract logo url and phone number.
Options:
  -h or --help:      shows this help
  <web page url>:    e.g. https://www.zaba.hr/home/en


`

// newRootCmd creates the root command. Flag parsing is disabled: the single
// positional argument is classified by hand so that "-h" and stray dashes print
// the same messages as any other bad input.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact-scraper <url>",
		Short: "Print the phone numbers and logo URL found on a web page.",
		Long: `contact-scraper renders one page in headless Chrome, then prints two lines:
the phone-number candidates found in the page text, and the first image URL
that looks like a logo. Either line reads "None" when nothing matched.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runRoot,
	}
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printUsage(c.OutOrStdout())
	})
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch {
	case len(args) == 0:
		fmt.Fprintln(out, "There is no argument.")
		printUsage(out)
		return ErrUsage
	case len(args) > 1:
		fmt.Fprintln(out, "To many arguments.")
		printUsage(out)
		return ErrUsage
	}

	arg := args[0]
	switch {
	case arg == "-h" || arg == "--help":
		printUsage(out)
		return nil
	case !strings.HasPrefix(arg, "http"):
		fmt.Fprintln(out, "Not a valid url.")
		printUsage(out)
		return ErrUsage
	}
	return runExtract(cmd.Context(), out, arg)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// Execute runs the command line and returns the process exit code:
// 0 on success, 2 for argument errors, 1 when the page could not be processed.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	code := exitCode(err)
	if code == 1 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return code
}

// exitCode maps a command error to the process status: 0 on success, 2 for
// argument errors, 1 for everything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	default:
		return 1
	}
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	b64p "github.com/ghostsecurity/b64p/pkg"
)

// printUsage displays the command usage information
func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <string>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nPrints the three base64 partials of <string>. Any base64 text whose\n")
	fmt.Fprintf(os.Stderr, "plain text contains <string> contains at least one of them.\n")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	fmt.Fprintf(os.Stderr, "  -format string\n")
	fmt.Fprintf(os.Stderr, "        Output format: 'lines' (default), 'table', or 'yaml'\n")
	fmt.Fprintf(os.Stderr, "  -url\n")
	fmt.Fprintf(os.Stderr, "        Use the URL-safe base64 alphabet\n")
	fmt.Fprintf(os.Stderr, "  -name string\n")
	fmt.Fprintf(os.Stderr, "        Rule name for yaml output\n")
	fmt.Fprintf(os.Stderr, "  -id string\n")
	fmt.Fprintf(os.Stderr, "        Rule ID for yaml output\n")
	fmt.Fprintf(os.Stderr, "  -help\n")
	fmt.Fprintf(os.Stderr, "        Show this help message\n")
	fmt.Fprintf(os.Stderr, "  -version\n")
	fmt.Fprintf(os.Stderr, "        Show version information\n")
	fmt.Fprintf(os.Stderr, "\nThe yaml format writes a rule file that can be loaded by poltergeist.\n")
}

// Command-line flags
var (
	formatFlag  = flag.String("format", "lines", "Output format: 'lines', 'table', or 'yaml'")
	urlFlag     = flag.Bool("url", false, "Use the URL-safe base64 alphabet")
	nameFlag    = flag.String("name", "Base64 Encoded Marker", "Rule name for yaml output")
	idFlag      = flag.String("id", "b64p.marker", "Rule ID for yaml output")
	helpFlag    = flag.Bool("help", false, "Show help message")
	versionFlag = flag.Bool("version", false, "Show version information")
)

func main() {
	flag.Parse()

	if *helpFlag {
		printUsage()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("b64p %s\n", b64p.Version)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	format, err := b64p.ParseFormat(*formatFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid format: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, []byte(flag.Arg(0)), format); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to compute partials: %v\n", err)
		os.Exit(1)
	}
}

// run writes the partials of marker to w in the requested format
func run(w io.Writer, marker []byte, format b64p.Format) error {
	enc := b64p.SelectEncoding(*urlFlag)

	details, err := b64p.Explain(marker, enc)
	if err != nil {
		return err
	}

	partials := b64p.PartialsFromDetails(details)

	switch format {
	case b64p.FormatTable:
		return b64p.WriteTable(w, details)
	case b64p.FormatYAML:
		rule, err := b64p.NewRule(*nameFlag, *idFlag, marker, partials, enc)
		if err != nil {
			return err
		}
		return b64p.WriteRules(w, []b64p.Rule{rule})
	default:
		return b64p.WriteLines(w, partials)
	}
}

// Command jobsift extracts a job description from an HTML file or
// standard input and prints it as text or JSON.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jobsift/jobsift"
)

// CLI defines the command-line surface.
type CLI struct {
	Input     string           `arg:"" optional:"" help:"HTML file to read ('-' for stdin)."`
	Hostname  string           `short:"H" help:"Hostname of the page, used to route site-specific extractors."`
	Format    string           `enum:"text,json" default:"text" help:"Output format: text or json."`
	MinLength int              `default:"100" help:"Minimum extracted length counted as success."`
	Timeout   time.Duration    `default:"30s" help:"Extraction timeout."`
	Generic   bool             `help:"Skip site-specific extractors and force the generic pipeline."`
	Verbose   bool             `short:"v" help:"Enable debug logging."`
	Version   kong.VersionFlag `help:"Show version and exit."`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("jobsift"),
		kong.Description("Extract the job description from a rendered job-posting page."),
		kong.Vars{"version": jobsift.Name + " " + jobsift.Version},
	)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cli.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx.FatalIfErrorf(run(cli))
}

func run(cli *CLI) error {
	var in io.Reader = os.Stdin
	if cli.Input != "" && cli.Input != "-" {
		f, err := os.Open(cli.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	ext := jobsift.New(
		jobsift.WithTimeout(cli.Timeout),
		jobsift.WithMinResultLength(cli.MinLength),
		jobsift.WithSiteSpecific(!cli.Generic),
	)

	start := time.Now()
	result, err := ext.ExtractFromReader(in, cli.Hostname, nil)
	if err != nil {
		return err
	}

	log.Debug().
		Str("stage", result.Stage).
		Str("title", result.Title).
		Bool("success", result.Success).
		Int("chars", len(result.Text)).
		Dur("elapsed", time.Since(start)).
		Msg("extraction finished")

	switch cli.Format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	default:
		fmt.Println(result.Text)
	}

	if !result.Success {
		log.Warn().Int("chars", len(result.Text)).Msg("extracted text below success threshold")
		os.Exit(1)
	}
	return nil
}

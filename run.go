package mcpbridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/clibridge/mcpbridge/bridge"
	"github.com/clibridge/mcpbridge/process"
	"github.com/jessevdk/go-flags"
)

const shutdownTimeout = 10 * time.Second

// Run parses args, then serves the bridge until the transport ends or ctx is cancelled.
// Help, version and check requests write to stdout and return without serving.
func Run(ctx context.Context, args []string, profile *bridge.Profile, stdout io.Writer) error {
	options := &Options{}
	parser := newParser(options, profile)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			writeUsage(stdout, parser, profile)
			return nil
		}
		return err
	}
	if options.Version {
		_, err := fmt.Fprintln(stdout, profile.Version)
		return err
	}
	if err := options.Init(ctx); err != nil {
		return err
	}
	options.Apply(profile)
	if options.Check {
		return check(ctx, stdout, profile)
	}

	aBridge, err := bridge.New(profile, nil)
	if err != nil {
		return err
	}
	srv, err := NewServer(aBridge, options)
	if err != nil {
		return err
	}
	log.Printf("%v started", profile.Title)
	serveErr := srv.Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("%v shutdown: %v", profile.Title, err)
	}
	return serveErr
}

func check(ctx context.Context, stdout io.Writer, profile *bridge.Profile) error {
	version, err := process.Probe(ctx, profile.Program)
	if err != nil {
		return fmt.Errorf("%v is not available: %w", profile.Program, err)
	}
	_, err = fmt.Fprintf(stdout, "%v: %v\n", profile.Program, version)
	return err
}

func newParser(options *Options, profile *bridge.Profile) *flags.Parser {
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = profile.Name
	parser.Usage = "[OPTIONS]"
	return parser
}

func writeUsage(w io.Writer, parser *flags.Parser, profile *bridge.Profile) {
	fmt.Fprintf(w, "%v v%v\n\n", profile.Title, profile.Version)
	parser.WriteHelp(w)
	fmt.Fprintf(w, "\nDESCRIPTION:\n")
	for _, line := range strings.Split(profile.Description, "\n") {
		fmt.Fprintf(w, "  %v\n", line)
	}
	fmt.Fprintf(w, "\nTOOLS:\n")
	for _, spec := range profile.Tools {
		fmt.Fprintf(w, "  %-28s - %v\n", spec.Name, spec.Summary)
	}
}

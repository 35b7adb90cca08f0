package runner

import (
	"errors"
	"fmt"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
)

const (
	FieldIPAddress    = "ip_address"
	FieldPrimaryName  = "primary_name"
	FieldAllHostNames = "all_host_names"
)

// validateOptions validates the configuration options passed
func (options *Options) validateOptions() error {
	// Both verbose and silent flags were used
	if options.Verbose && options.Silent {
		return errors.New("both verbose and silent mode specified")
	}

	if options.Threads <= 0 {
		return errors.New("threads must be greater than zero")
	}

	switch options.Field {
	case "", FieldIPAddress, FieldPrimaryName, FieldAllHostNames:
	default:
		return fmt.Errorf("unknown field %q", options.Field)
	}

	if options.Field != "" && options.Stats {
		return errors.New("both field and stats output specified")
	}

	// Checks report their own results, entries are not printed
	if options.ChecksFile != "" {
		if !fileutil.FileExists(options.ChecksFile) {
			return errors.New("checks file doesn't exists")
		}
		if options.Field != "" || options.Stats {
			return errors.New("checks can't be combined with field or stats output")
		}
	}

	if options.Watch && len(options.Files) == 0 && options.Stdin {
		return errors.New("stdin input can't be watched")
	}

	return nil
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	// If the user desires verbose output, show verbose output
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}

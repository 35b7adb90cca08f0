package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

// Options contains the configuration options for reading
// and querying hosts files.
type Options struct {
	Files       goflags.StringSlice // Files are the hosts files to read
	IPAddress   string              // IPAddress only keeps entries with this ip address
	PrimaryName string              // PrimaryName only keeps entries with this primary name
	HostName    string              // HostName only keeps entries listing this host name
	RootDomain  string              // RootDomain only keeps entries with a host name under this registrable domain
	ValidOnly   bool                // ValidOnly only keeps entries whose host names are valid domain names
	ChecksFile  string              // ChecksFile is an ini file of checks to evaluate
	Output      string              // Output is the file to write results to
	Json        bool                // Json is the format for making output as ndjson
	Field       string              // Field prints a single column of the matching entries
	Stats       bool                // Stats prints host names aggregated by ip address
	Threads     int                 // Threads controls the number of hosts files loaded in parallel
	Watch       bool                // Watch reloads the hosts files when they change
	Silent      bool                // Silent suppresses any extra text and only writes results to screen
	Version     bool                // Version specifies if we should just show version and exit
	Verbose     bool                // Verbose flag indicates whether to show verbose output or not
	NoColor     bool                // No-Color disables the colored output

	Stdin bool // Stdin specifies whether stdin input was given to the process
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`etchosts extracts ip address to host name mappings from hosts files and checks them.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&options.Files, "file", "f", nil, "hosts file to read (default: system hosts file)", goflags.StringSliceOptions),
	)

	flagSet.CreateGroup("filter", "Filter",
		flagSet.StringVar(&options.IPAddress, "ip", "", "only show entries with the given ip address"),
		flagSet.StringVarP(&options.PrimaryName, "primary-name", "pn", "", "only show entries with the given primary name"),
		flagSet.StringVarP(&options.HostName, "host-name", "hn", "", "only show entries listing the given host name"),
		flagSet.StringVarP(&options.RootDomain, "root-domain", "rd", "", "only show entries with host names under the given registrable domain"),
		flagSet.BoolVar(&options.ValidOnly, "valid", false, "only show entries whose host names are valid domain names"),
	)

	flagSet.CreateGroup("checks", "Checks",
		flagSet.StringVarP(&options.ChecksFile, "checks", "c", "", "ini file of checks to evaluate against the hosts files"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&options.Output, "output", "o", "", "file to write output to"),
		flagSet.BoolVarP(&options.Json, "json", "j", false, "write output in JSONL(ines) format"),
		flagSet.StringVar(&options.Field, "field", "", "only print one field (ip_address,primary_name,all_host_names)"),
		flagSet.BoolVar(&options.Stats, "stats", false, "print host names aggregated by ip address"),
	)

	flagSet.CreateGroup("config", "Configurations",
		flagSet.IntVarP(&options.Threads, "threads", "t", 10, "number of hosts files to load concurrently"),
		flagSet.BoolVarP(&options.Watch, "watch", "w", false, "reload the hosts files when they change"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVar(&options.Silent, "silent", false, "show only results in output"),
		flagSet.BoolVar(&options.Version, "version", false, "show version of etchosts"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable color in output"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not parse flags: %s\n", err)
	}

	// Check if stdin pipe was given
	options.Stdin = fileutil.HasStdin()

	// Read the inputs and configure the logging
	options.configureOutput()

	// Show the user the banner
	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version)
		os.Exit(0)
	}
	// Validate the options passed by the user and if any
	// invalid options have been used, exit.
	if err := options.validateOptions(); err != nil {
		gologger.Fatal().Msgf("Program exiting: %s\n", err)
	}

	return options
}

package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/etchosts/pkg/checks"
	"github.com/projectdiscovery/etchosts/pkg/hostsfile"
	"github.com/projectdiscovery/etchosts/pkg/table"
	"github.com/projectdiscovery/gologger"
	ioutil "github.com/projectdiscovery/utils/io"
	"github.com/remeh/sizedwaitgroup"
	"github.com/rs/xid"
)

// stdinPath is the name reported for hosts content read from stdin
const stdinPath = "stdin"

// ErrChecksFailed is returned by Run when at least one check failed
var ErrChecksFailed = errors.New("one or more checks failed")

// Runner is a client for reading and querying hosts files.
type Runner struct {
	options    *Options
	runID      string
	paths      []string
	predicates []table.Predicate
	checks     []checks.Check

	stdin      io.Reader
	output     *os.File
	writer     *bufio.Writer
	safeWriter *ioutil.SafeWriter
}

// New creates a new client for reading hosts files.
func New(options *Options) (*Runner, error) {
	runner := &Runner{
		options:    options,
		runID:      xid.New().String(),
		predicates: options.predicates(),
		stdin:      os.Stdin,
	}

	if options.ChecksFile != "" {
		loaded, err := checks.LoadFile(options.ChecksFile)
		if err != nil {
			return nil, err
		}
		runner.checks = loaded
		gologger.Verbose().Msgf("Loaded %d checks from %s\n", len(loaded), options.ChecksFile)
	}

	// Fall back to the system hosts file unless content is piped in
	runner.paths = options.Files
	if len(runner.paths) == 0 && !options.Stdin {
		runner.paths = []string{hostsfile.DefaultPath(hostsfile.OSPlatform{})}
		gologger.Debug().Msgf("Using default hosts file %s\n", runner.paths[0])
	}

	if options.Output != "" {
		output, err := os.Create(options.Output)
		if err != nil {
			return nil, fmt.Errorf("could not create output file: %w", err)
		}
		runner.output = output
		runner.writer = bufio.NewWriter(output)
		runner.safeWriter, err = ioutil.NewSafeWriter(runner.writer)
		if err != nil {
			_ = output.Close()
			return nil, fmt.Errorf("could not create safe writer: %w", err)
		}
	}

	return runner, nil
}

// Close releases all the resources and cleans up
func (r *Runner) Close() {
	if r.output != nil {
		_ = r.writer.Flush()
		_ = r.output.Close()
	}
}

func (options *Options) predicates() []table.Predicate {
	var predicates []table.Predicate
	if options.IPAddress != "" {
		predicates = append(predicates, table.IPAddress(options.IPAddress))
	}
	if options.PrimaryName != "" {
		predicates = append(predicates, table.PrimaryName(options.PrimaryName))
	}
	if options.HostName != "" {
		predicates = append(predicates, table.HostName(options.HostName))
	}
	if options.RootDomain != "" {
		predicates = append(predicates, table.RootDomain(options.RootDomain))
	}
	if options.ValidOnly {
		predicates = append(predicates, table.ValidHostNames())
	}
	return predicates
}

// loadResult is a hosts file, or the reason it could not be read
type loadResult struct {
	path  string
	hosts *hostsfile.Hosts
	err   error
}

// Run reads every hosts file, writes the results and, in watch mode,
// keeps reloading files as they change until ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	results := r.loadAll()
	if len(r.paths) == 0 {
		results = append([]loadResult{r.loadStdin()}, results...)
	}

	failed := false
	for _, result := range results {
		ok, err := r.process(result)
		if err != nil {
			return err
		}
		failed = failed || !ok
	}
	r.flush()

	if r.options.Watch {
		watchFailed, err := r.watch(ctx, r.paths)
		if err != nil {
			return err
		}
		failed = failed || watchFailed
	}

	if failed {
		return ErrChecksFailed
	}
	return nil
}

// loadAll reads the hosts files in parallel, keeping the input order
func (r *Runner) loadAll() []loadResult {
	results := make([]loadResult, len(r.paths))

	swg := sizedwaitgroup.New(r.options.Threads)
	for i, path := range r.paths {
		swg.Add()
		go func(i int, path string) {
			defer swg.Done()

			results[i] = r.load(path)
		}(i, path)
	}
	swg.Wait()

	return results
}

func (r *Runner) load(path string) loadResult {
	gologger.Verbose().Msgf("Reading hosts file %s\n", path)

	hosts, err := hostsfile.New(path)
	if err != nil {
		return loadResult{path: path, err: err}
	}
	gologger.Debug().Msgf("Parsed %d entries from %s\n", hosts.Len(), path)
	return loadResult{path: path, hosts: hosts}
}

func (r *Runner) loadStdin() loadResult {
	content, err := io.ReadAll(r.stdin)
	if err != nil {
		return loadResult{path: stdinPath, err: fmt.Errorf("could not read stdin: %w", err)}
	}
	hosts, err := hostsfile.FromContent(stdinPath, content)
	return loadResult{path: stdinPath, hosts: hosts, err: err}
}

// process writes the output for a single hosts file. It returns false
// when a check failed.
func (r *Runner) process(result loadResult) (bool, error) {
	if result.err != nil {
		if !hostsfile.IsSkipped(result.err) {
			return false, result.err
		}
		gologger.Warning().Msgf("Skipping %s\n", result.err)
		for _, check := range r.checks {
			r.writeCheckResult(checks.Skip(check, result.path, result.err))
		}
		return true, nil
	}

	if len(r.checks) > 0 {
		return r.evaluateChecks(result), nil
	}

	rows := result.hosts.Where(r.predicates...)
	gologger.Verbose().Msgf("%d of %d entries in %s matched\n", rows.Len(), result.hosts.Len(), result.path)

	switch {
	case r.options.Stats:
		r.writeStats(result.path, rows)
	case r.options.Field != "":
		r.writeField(result.path, rows)
	default:
		for _, entry := range rows.Entries() {
			r.writeEntry(result.path, entry)
		}
	}
	return true, nil
}

func (r *Runner) evaluateChecks(result loadResult) bool {
	passed := true
	for _, check := range r.checks {
		// filters given on the command line narrow every check
		res := check.Evaluate(result.path, result.hosts.Where(r.predicates...))
		if res.Status == checks.StatusFail {
			passed = false
		}
		r.writeCheckResult(res)
	}
	return passed
}

func (r *Runner) flush() {
	if r.writer != nil {
		_ = r.writer.Flush()
	}
}

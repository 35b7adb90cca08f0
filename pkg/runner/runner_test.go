package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/rs/xid"
	"github.com/stretchr/testify/require"
)

const sampleHosts = `# static table lookup for hostnames
127.0.0.1   localhost localhost.localdomain
::1         localhost ip6-localhost ip6-loopback

10.0.0.5    printer.corp.example.com printer   # office printer
10.0.0.5    scanner.corp.example.com
10.0.0.9
`

func init() {
	gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
}

func writeTempFile(t *testing.T, dir, content string) string {
	filename := filepath.Join(dir, xid.New().String())
	require.Nil(t, os.WriteFile(filename, []byte(content), 0644))
	return filename
}

func runWithOptions(t *testing.T, options *Options) ([]string, error) {
	dir := t.TempDir()
	options.Output = filepath.Join(dir, "output")
	if options.Threads == 0 {
		options.Threads = 2
	}
	require.Nil(t, options.validateOptions())

	r, err := New(options)
	require.Nil(t, err)
	runErr := r.Run(context.Background())
	r.Close()

	data, err := os.ReadFile(options.Output)
	require.Nil(t, err)
	output := strings.TrimSuffix(string(data), "\n")
	if output == "" {
		return nil, runErr
	}
	return strings.Split(output, "\n"), runErr
}

func TestRunnerEntries(t *testing.T) {
	hostsFile := writeTempFile(t, t.TempDir(), sampleHosts)

	lines, err := runWithOptions(t, &Options{Files: []string{hostsFile}})
	require.Nil(t, err)
	require.Equal(t, []string{
		"127.0.0.1\tlocalhost localhost.localdomain",
		"::1\tlocalhost ip6-localhost ip6-loopback",
		"10.0.0.5\tprinter.corp.example.com printer",
		"10.0.0.5\tscanner.corp.example.com",
	}, lines)
}

func TestRunnerFieldUnwrapsSingleRow(t *testing.T) {
	hostsFile := writeTempFile(t, t.TempDir(), sampleHosts)

	lines, err := runWithOptions(t, &Options{Files: []string{hostsFile}, IPAddress: "127.0.0.1", Field: FieldPrimaryName, Json: true})
	require.Nil(t, err)
	require.Len(t, lines, 1)

	var got fieldOutput
	require.Nil(t, json.Unmarshal([]byte(lines[0]), &got))
	require.Equal(t, "localhost", got.Value, "a single row should yield a scalar")
	require.Equal(t, hostsFile, got.Path)
	require.NotEmpty(t, got.RunID)
}

func TestRunnerFieldMultipleRows(t *testing.T) {
	hostsFile := writeTempFile(t, t.TempDir(), sampleHosts)

	lines, err := runWithOptions(t, &Options{Files: []string{hostsFile}, HostName: "localhost", Field: FieldIPAddress})
	require.Nil(t, err)
	require.Equal(t, []string{"127.0.0.1", "::1"}, lines)
}

func TestRunnerStats(t *testing.T) {
	hostsFile := writeTempFile(t, t.TempDir(), sampleHosts)

	lines, err := runWithOptions(t, &Options{Files: []string{hostsFile}, RootDomain: "example.com", Stats: true})
	require.Nil(t, err)
	require.Equal(t, []string{"10.0.0.5\t2\tprinter.corp.example.com printer scanner.corp.example.com"}, lines)
}

func TestRunnerChecks(t *testing.T) {
	dir := t.TempDir()
	hostsFile := writeTempFile(t, dir, sampleHosts)
	missingFile := filepath.Join(dir, "missing")
	checksFile := writeTempFile(t, dir, `
[localhost]
ip_address = 127.0.0.1
expect_primary_name = localhost
`)

	lines, err := runWithOptions(t, &Options{Files: []string{hostsFile, missingFile}, ChecksFile: checksFile})
	require.Nil(t, err, "skipped files should not fail the run")
	require.Len(t, lines, 2)
	require.Equal(t, "[pass] localhost ("+hostsFile+")", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "[skip] localhost ("+missingFile+"): can't find file"), lines[1])
}

func TestRunnerChecksFailure(t *testing.T) {
	dir := t.TempDir()
	hostsFile := writeTempFile(t, dir, sampleHosts)
	checksFile := writeTempFile(t, dir, `
[printer]
host_name = printer
expect_ip_address = 10.0.0.6
`)

	lines, err := runWithOptions(t, &Options{Files: []string{hostsFile}, ChecksFile: checksFile, Json: true})
	require.ErrorIs(t, err, ErrChecksFailed)
	require.Len(t, lines, 1)

	var got map[string]interface{}
	require.Nil(t, json.Unmarshal([]byte(lines[0]), &got))
	require.Equal(t, "fail", got["status"])
	require.Equal(t, "printer", got["check"])
	require.Equal(t, `expected ip_address "10.0.0.6", got "10.0.0.5"`, got["message"])
}

func TestRunnerStdin(t *testing.T) {
	options := &Options{Stdin: true, Threads: 1, Output: filepath.Join(t.TempDir(), "output")}
	r, err := New(options)
	require.Nil(t, err)
	r.stdin = strings.NewReader("10.0.0.1 host1 alias1 # note\n")

	require.Nil(t, r.Run(context.Background()))
	r.Close()

	data, err := os.ReadFile(options.Output)
	require.Nil(t, err)
	require.Equal(t, "10.0.0.1\thost1 alias1\n", string(data))
}

func TestValidateOptions(t *testing.T) {
	var tests = []struct {
		name    string
		options Options
	}{
		{"verbose-and-silent", Options{Threads: 1, Verbose: true, Silent: true}},
		{"no-threads", Options{}},
		{"unknown-field", Options{Threads: 1, Field: "aliases"}},
		{"field-and-stats", Options{Threads: 1, Field: FieldIPAddress, Stats: true}},
		{"missing-checks", Options{Threads: 1, ChecksFile: filepath.Join(t.TempDir(), "missing")}},
		{"watch-stdin", Options{Threads: 1, Watch: true, Stdin: true}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Error(t, test.options.validateOptions())
		})
	}
}

package runner

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/projectdiscovery/etchosts/internal/store"
	"github.com/projectdiscovery/etchosts/pkg/checks"
	"github.com/projectdiscovery/etchosts/pkg/parser"
	"github.com/projectdiscovery/etchosts/pkg/table"
	"github.com/projectdiscovery/gologger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type entryOutput struct {
	RunID string `json:"run_id"`
	Path  string `json:"path"`
	parser.HostEntry
}

type fieldOutput struct {
	RunID string      `json:"run_id"`
	Path  string      `json:"path"`
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

type statsOutput struct {
	RunID     string   `json:"run_id"`
	Path      string   `json:"path"`
	IPAddress string   `json:"ip_address"`
	HostNames []string `json:"host_names"`
	Count     int      `json:"count"`
}

type checkOutput struct {
	RunID string `json:"run_id"`
	checks.Result
}

func (r *Runner) writeEntry(path string, entry parser.HostEntry) {
	if r.options.Json {
		r.writeJSON(entryOutput{RunID: r.runID, Path: path, HostEntry: entry})
		return
	}
	r.write(entry.String())
}

// writeField writes one column of rows. A single row prints its value
// and several rows print one value per line.
func (r *Runner) writeField(path string, rows *table.Table) {
	var value interface{}
	switch r.options.Field {
	case FieldIPAddress:
		value = rows.IPAddress().Value()
	case FieldPrimaryName:
		value = rows.PrimaryName().Value()
	case FieldAllHostNames:
		value = rows.AllHostNames().Value()
	}

	if r.options.Json {
		r.writeJSON(fieldOutput{RunID: r.runID, Path: path, Field: r.options.Field, Value: value})
		return
	}

	switch v := value.(type) {
	case string:
		r.write(v)
	case []string:
		if r.options.Field == FieldAllHostNames {
			// the host names of a single row
			r.write(strings.Join(v, " "))
			return
		}
		for _, item := range v {
			r.write(item)
		}
	case [][]string:
		for _, names := range v {
			r.write(strings.Join(names, " "))
		}
	}
}

func (r *Runner) writeStats(path string, rows *table.Table) {
	store.FromTable(rows).Iterate(func(ip string, hostnames []string, counter int) {
		if r.options.Json {
			r.writeJSON(statsOutput{RunID: r.runID, Path: path, IPAddress: ip, HostNames: hostnames, Count: counter})
			return
		}
		r.write(fmt.Sprintf("%s\t%d\t%s", ip, counter, strings.Join(hostnames, " ")))
	})
}

func (r *Runner) writeCheckResult(result checks.Result) {
	switch result.Status {
	case checks.StatusFail:
		gologger.Error().Msgf("Check %q failed for %s: %s\n", result.Check, result.Path, result.Message)
	case checks.StatusSkip:
		gologger.Warning().Msgf("Check %q skipped for %s: %s\n", result.Check, result.Path, result.Message)
	}

	if r.options.Json {
		r.writeJSON(checkOutput{RunID: r.runID, Result: result})
		return
	}
	line := fmt.Sprintf("[%s] %s (%s)", result.Status, result.Check, result.Path)
	if result.Message != "" {
		line += ": " + result.Message
	}
	r.write(line)
}

func (r *Runner) writeJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		gologger.Error().Msgf("could not marshal output as json: %v", err)
		return
	}
	r.write(string(data))
}

// write sends a result line to the screen and the output file
func (r *Runner) write(line string) {
	data := line + "\n"
	if r.safeWriter != nil {
		_, _ = r.safeWriter.Write([]byte(data))
	}
	gologger.Silent().Msgf("%s", data)
}

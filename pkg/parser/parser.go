package parser

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/etchosts/pkg/comment"
)

// maxLineSize is the longest line the reader based parser accepts,
// longer lines are dropped
const maxLineSize = 1024 * 1024

// HostEntry is a single mapping of an IP address to its host names.
type HostEntry struct {
	// IPAddress is the first token of the line
	IPAddress string `json:"ip_address"`
	// PrimaryName is the second token of the line
	PrimaryName string `json:"primary_name"`
	// AllHostNames contains every token from the second onward,
	// PrimaryName included.
	AllHostNames []string `json:"all_host_names"`
}

// Aliases returns the host names following the primary name.
func (e HostEntry) Aliases() []string {
	if len(e.AllHostNames) < 2 {
		return nil
	}
	return e.AllHostNames[1:]
}

func (e HostEntry) String() string {
	return e.IPAddress + "\t" + strings.Join(e.AllHostNames, " ")
}

// OnResultFN is called with every entry found by the reader based parser.
// A returned error stops the parsing.
type OnResultFN func(entry HostEntry) error

// ParseLine parses a single line of a hosts file. The returned bool
// is false when the line holds no entry.
func ParseLine(line string) (HostEntry, bool) {
	data, _ := comment.Strip(line, comment.Hash)
	if comment.IsBlank(data) {
		return HostEntry{}, false
	}

	fields := strings.Fields(data)
	if len(fields) < 2 {
		return HostEntry{}, false
	}
	return HostEntry{
		IPAddress:    fields[0],
		PrimaryName:  fields[1],
		AllHostNames: fields[1:],
	}, true
}

// Parse returns the entries of lines in line order.
func Parse(lines []string) []HostEntry {
	var entries []HostEntry
	for _, line := range lines {
		if entry, ok := ParseLine(line); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// ParseFile opens filename and parses it with ParseReader.
func ParseFile(filename string, onResult OnResultFN) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return ParseReader(file, onResult)
}

// ParseReader parses the hosts file content of reader line by line
// returning every entry found to a onResult function.
func ParseReader(reader io.Reader, onResult OnResultFN) error {
	buffered := bufio.NewReaderSize(reader, 64*1024)

	var line []byte
	tooLong := false
	for {
		chunk, err := buffered.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > maxLineSize {
				tooLong = true
				line = line[:0]
			} else {
				line = append(line, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		if !tooLong {
			if entry, ok := ParseLine(strings.TrimRight(string(line), "\r\n")); ok {
				if cbErr := onResult(entry); cbErr != nil {
					return cbErr
				}
			}
		}
		line = line[:0]
		tooLong = false

		if err != nil {
			return nil
		}
	}
}

// Package table holds the parsed entries of a hosts file and lets
// callers query them.
//
// A Table is built once and never modified afterwards. Where returns
// a new Table holding the matching rows in their original order, so
// filters compose by chaining.
package table

import (
	"github.com/projectdiscovery/etchosts/pkg/parser"
)

// Table is an ordered, read-only collection of host entries.
type Table struct {
	entries []parser.HostEntry
}

// New creates a table from entries. The slice is copied.
func New(entries []parser.HostEntry) *Table {
	rows := make([]parser.HostEntry, len(entries))
	for i, entry := range entries {
		entry.AllHostNames = append([]string(nil), entry.AllHostNames...)
		rows[i] = entry
	}
	return &Table{entries: rows}
}

// Entries returns a copy of all the rows in order.
func (t *Table) Entries() []parser.HostEntry {
	return New(t.entries).entries
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.entries)
}

// Where returns the rows matching every predicate.
func (t *Table) Where(predicates ...Predicate) *Table {
	match := And(predicates...)

	var rows []parser.HostEntry
	for _, entry := range t.entries {
		if match(entry) {
			rows = append(rows, entry)
		}
	}
	// rows share host name slices with t, which is fine since neither
	// table ever writes to them
	return &Table{entries: rows}
}

// IPAddress returns the ip_address column.
func (t *Table) IPAddress() Field[string] {
	return column(t, func(e parser.HostEntry) string { return e.IPAddress })
}

// PrimaryName returns the primary_name column.
func (t *Table) PrimaryName() Field[string] {
	return column(t, func(e parser.HostEntry) string { return e.PrimaryName })
}

// AllHostNames returns the all_host_names column.
func (t *Table) AllHostNames() Field[[]string] {
	return column(t, func(e parser.HostEntry) []string {
		return append([]string(nil), e.AllHostNames...)
	})
}

// HostNames returns every host name of every row, in row order.
func (t *Table) HostNames() []string {
	var names []string
	for _, entry := range t.entries {
		names = append(names, entry.AllHostNames...)
	}
	return names
}

func column[T any](t *Table, get func(parser.HostEntry) T) Field[T] {
	values := make([]T, 0, len(t.entries))
	for _, entry := range t.entries {
		values = append(values, get(entry))
	}
	return Field[T]{values: values}
}

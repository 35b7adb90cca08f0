package table

import (
	"regexp"
	"strings"
	"testing"

	"github.com/projectdiscovery/etchosts/pkg/parser"
	"github.com/stretchr/testify/require"
)

const sampleHosts = `127.0.0.1   localhost localhost.localdomain localhost4
::1         localhost ip6-localhost ip6-loopback
# the office printer
10.0.0.5    printer.corp.example.com printer
10.0.0.6    www.example.co.uk www
10.0.0.5    scanner.corp.example.com  # same ip as the printer
10.0.0.7    bad..name
`

func sampleTable(t *testing.T) *Table {
	entries := parser.Parse(strings.Split(sampleHosts, "\n"))
	require.Len(t, entries, 6)
	return New(entries)
}

func TestTableWhereSingleRowUnwraps(t *testing.T) {
	result := sampleTable(t).Where(IPAddress("127.0.0.1"))

	require.Equal(t, 1, result.Len())
	require.Equal(t, "localhost", result.PrimaryName().Value(), "single row should yield a scalar")
	require.Equal(t, "127.0.0.1", result.IPAddress().Value())
	require.Equal(t, []string{"localhost", "localhost.localdomain", "localhost4"}, result.AllHostNames().Value())

	name, ok := result.PrimaryName().Scalar()
	require.True(t, ok)
	require.Equal(t, "localhost", name)
}

func TestTableWhereMultipleRowsYieldSequence(t *testing.T) {
	result := sampleTable(t).Where(IPAddress("10.0.0.5"))

	require.Equal(t, 2, result.Len())
	require.Equal(t, []string{"printer.corp.example.com", "scanner.corp.example.com"}, result.PrimaryName().Value())
	require.Equal(t, [][]string{
		{"printer.corp.example.com", "printer"},
		{"scanner.corp.example.com"},
	}, result.AllHostNames().Value())

	_, ok := result.PrimaryName().Scalar()
	require.False(t, ok, "multiple rows have no scalar")
}

func TestTableWhereNoRows(t *testing.T) {
	result := sampleTable(t).Where(IPAddress("192.0.2.1"))

	require.Equal(t, 0, result.Len())
	require.Empty(t, result.Entries())
	require.Equal(t, []string(nil), result.IPAddress().Value())
}

func TestTableWhereComposes(t *testing.T) {
	table := sampleTable(t)
	local := HostName("localhost")
	v6 := IPAddressMatches(regexp.MustCompile(`:`))

	chained := table.Where(local).Where(v6)
	combined := table.Where(local, v6)
	nested := table.Where(And(local, v6))

	require.Equal(t, combined.Entries(), chained.Entries())
	require.Equal(t, combined.Entries(), nested.Entries())
	require.Equal(t, "::1", chained.IPAddress().Value())

	// filtering again by a predicate already applied changes nothing
	require.Equal(t, chained.Entries(), chained.Where(local).Entries())
}

func TestTableWherePreservesOrder(t *testing.T) {
	result := sampleTable(t).Where(IPAddressMatches(regexp.MustCompile(`^10\.`)))

	require.Equal(t, []string{"10.0.0.5", "10.0.0.6", "10.0.0.5", "10.0.0.7"}, result.IPAddress().Values())
}

func TestTableIsImmutable(t *testing.T) {
	entries := []parser.HostEntry{{IPAddress: "10.0.0.1", PrimaryName: "a", AllHostNames: []string{"a", "b"}}}
	table := New(entries)

	entries[0].AllHostNames[1] = "changed"
	require.Equal(t, []string{"a", "b"}, table.Entries()[0].AllHostNames, "table should not share the input slice")

	got := table.Entries()
	got[0].AllHostNames[0] = "changed"
	names := table.AllHostNames().Values()
	require.Equal(t, []string{"a", "b"}, names[0], "entries should be a copy")
}

func TestPredicates(t *testing.T) {
	table := sampleTable(t)

	var tests = []struct {
		name      string
		predicate Predicate
		expected  []string
	}{
		{"primary-name", PrimaryName("localhost"), []string{"127.0.0.1", "::1"}},
		{"host-name-alias", HostName("printer"), []string{"10.0.0.5"}},
		{"primary-name-regexp", PrimaryNameMatches(regexp.MustCompile(`\.corp\.`)), []string{"10.0.0.5", "10.0.0.5"}},
		{"host-name-regexp", HostNameMatches(regexp.MustCompile(`^ip6-`)), []string{"::1"}},
		{"same-host", SameHost("WWW.Example.CO.UK."), []string{"10.0.0.6"}},
		{"root-domain", RootDomain("example.com"), []string{"10.0.0.5", "10.0.0.5"}},
		{"root-domain-public-suffix", RootDomain("example.co.uk"), []string{"10.0.0.6"}},
		{"invalid-host-names", Not(ValidHostNames()), []string{"10.0.0.7"}},
		{"or", Or(IPAddress("10.0.0.6"), IPAddress("10.0.0.7")), []string{"10.0.0.6", "10.0.0.7"}},
		{"no-predicates", And(), []string{"127.0.0.1", "::1", "10.0.0.5", "10.0.0.6", "10.0.0.5", "10.0.0.7"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, table.Where(test.predicate).IPAddress().Values())
		})
	}
}

func TestTableHostNames(t *testing.T) {
	result := sampleTable(t).Where(IPAddress("::1"))
	require.Equal(t, []string{"localhost", "ip6-localhost", "ip6-loopback"}, result.HostNames())
}

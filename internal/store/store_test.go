package store

import (
	"testing"

	"github.com/projectdiscovery/etchosts/pkg/parser"
	"github.com/projectdiscovery/etchosts/pkg/table"
	"github.com/stretchr/testify/require"
)

func TestStoreFromTable(t *testing.T) {
	entries := parser.Parse([]string{
		"10.0.0.2 b",
		"10.0.0.1 a a-alias",
		"10.0.0.2 b b2",
		"10.0.0.1 a",
		"10.0.0.1 c",
	})
	s := FromTable(table.New(entries))

	require.Equal(t, 2, s.Len())
	require.True(t, s.Exists("10.0.0.1"))
	require.False(t, s.Exists("10.0.0.3"))
	require.Nil(t, s.Get("10.0.0.3"))

	meta := s.Get("10.0.0.1")
	require.Equal(t, 3, meta.Counter)
	require.Equal(t, []string{"a", "a-alias", "c"}, meta.Hostnames)

	var ips []string
	var counters []int
	s.Iterate(func(ip string, hostnames []string, counter int) {
		ips = append(ips, ip)
		counters = append(counters, counter)
	})
	require.Equal(t, []string{"10.0.0.2", "10.0.0.1"}, ips, "iteration should follow first appearance")
	require.Equal(t, []int{2, 3}, counters)
}

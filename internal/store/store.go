package store

import (
	"github.com/projectdiscovery/etchosts/pkg/table"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// Store aggregates host names by ip address
type Store struct {
	ips   map[string]*IPMeta
	order []string
}

// IPMeta contains meta-information about a single
// IP address found in a hosts file.
type IPMeta struct {
	// Hostnames contains the list of hostnames for the IP
	Hostnames []string
	// Counter is the number of entries naming the IP
	Counter int
}

// New creates a new empty store
func New() *Store {
	return &Store{
		ips: make(map[string]*IPMeta),
	}
}

// FromTable creates a store holding every entry of t
func FromTable(t *table.Table) *Store {
	s := New()
	for _, entry := range t.Entries() {
		s.Add(entry.IPAddress, entry.AllHostNames...)
	}
	return s
}

// Add records an entry for ip naming hostnames
func (s *Store) Add(ip string, hostnames ...string) {
	meta, ok := s.ips[ip]
	if !ok {
		meta = &IPMeta{}
		s.ips[ip] = meta
		s.order = append(s.order, ip)
	}
	meta.Counter++
	meta.Hostnames = sliceutil.Dedupe(append(meta.Hostnames, hostnames...))
}

// Exists indicates if an IP exists in the store
func (s *Store) Exists(ip string) bool {
	_, ok := s.ips[ip]
	return ok
}

// Get gets the meta-information for an IP address, nil if unknown.
func (s *Store) Get(ip string) *IPMeta {
	return s.ips[ip]
}

// Len returns the number of distinct IP addresses
func (s *Store) Len() int {
	return len(s.order)
}

// Iterate calls f for every IP in the order it was first added
func (s *Store) Iterate(f func(ip string, hostnames []string, counter int)) {
	for _, ip := range s.order {
		meta := s.ips[ip]
		f(ip, meta.Hostnames, meta.Counter)
	}
}

package table

import (
	"regexp"
	"slices"
	"strings"

	"github.com/miekg/dns"
	"github.com/projectdiscovery/etchosts/pkg/parser"
	"github.com/weppos/publicsuffix-go/publicsuffix"
)

// Predicate selects rows of a table.
type Predicate func(entry parser.HostEntry) bool

// IPAddress matches rows whose ip_address equals value.
func IPAddress(value string) Predicate {
	return func(entry parser.HostEntry) bool {
		return entry.IPAddress == value
	}
}

// PrimaryName matches rows whose primary_name equals value.
func PrimaryName(value string) Predicate {
	return func(entry parser.HostEntry) bool {
		return entry.PrimaryName == value
	}
}

// HostName matches rows listing value in all_host_names.
func HostName(value string) Predicate {
	return func(entry parser.HostEntry) bool {
		return slices.Contains(entry.AllHostNames, value)
	}
}

// IPAddressMatches matches rows whose ip_address matches re.
func IPAddressMatches(re *regexp.Regexp) Predicate {
	return func(entry parser.HostEntry) bool {
		return re.MatchString(entry.IPAddress)
	}
}

// PrimaryNameMatches matches rows whose primary_name matches re.
func PrimaryNameMatches(re *regexp.Regexp) Predicate {
	return func(entry parser.HostEntry) bool {
		return re.MatchString(entry.PrimaryName)
	}
}

// HostNameMatches matches rows with any host name matching re.
func HostNameMatches(re *regexp.Regexp) Predicate {
	return func(entry parser.HostEntry) bool {
		return slices.ContainsFunc(entry.AllHostNames, re.MatchString)
	}
}

// SameHost matches rows naming host, ignoring case and a trailing dot.
func SameHost(host string) Predicate {
	want := dns.CanonicalName(host)
	return func(entry parser.HostEntry) bool {
		return slices.ContainsFunc(entry.AllHostNames, func(name string) bool {
			return dns.CanonicalName(name) == want
		})
	}
}

// RootDomain matches rows with a host name registered under domain,
// e.g. www.example.co.uk for example.co.uk.
func RootDomain(domain string) Predicate {
	want := dns.CanonicalName(domain)
	return func(entry parser.HostEntry) bool {
		for _, name := range entry.AllHostNames {
			root, err := publicsuffix.Domain(strings.TrimSuffix(strings.ToLower(name), "."))
			if err != nil {
				continue
			}
			if dns.CanonicalName(root) == want {
				return true
			}
		}
		return false
	}
}

// ValidHostNames matches rows where every host name is a valid
// domain name.
func ValidHostNames() Predicate {
	return func(entry parser.HostEntry) bool {
		for _, name := range entry.AllHostNames {
			if _, ok := dns.IsDomainName(name); !ok {
				return false
			}
		}
		return true
	}
}

// And matches rows matching all predicates. No predicates match
// every row.
func And(predicates ...Predicate) Predicate {
	return func(entry parser.HostEntry) bool {
		for _, p := range predicates {
			if !p(entry) {
				return false
			}
		}
		return true
	}
}

// Or matches rows matching any of the predicates.
func Or(predicates ...Predicate) Predicate {
	return func(entry parser.HostEntry) bool {
		for _, p := range predicates {
			if p(entry) {
				return true
			}
		}
		return false
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(entry parser.HostEntry) bool {
		return !p(entry)
	}
}

// Package checks evaluates assertions about the entries of a hosts
// file.
//
// Checks are read from an INI file. Every named section is one check:
// the filter keys select rows the way a where clause does and the
// expect_ keys assert the values found in those rows.
//
//	[localhost is loopback]
//	host_name = localhost
//	expect_ip_address = 127.0.0.1, ::1
//
//	[office]
//	root_domain = example.com
//	expect_all_host_names = printer.corp.example.com, printer | scanner.corp.example.com
//
//	[printer]
//	ip_address = 10.0.0.5
//	expect_primary_name = printer.corp.example.com
//	expect_all_host_names = printer.corp.example.com, printer
package checks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/projectdiscovery/etchosts/pkg/table"
	"gopkg.in/ini.v1"
)

// Check is a single named assertion.
type Check struct {
	Name string

	// filters
	IPAddress      string
	PrimaryName    string
	HostName       string
	RootDomain     string
	ValidHostNames bool

	// expectations, nil when not set
	ExpectCount        *int
	ExpectIPAddress    []string
	ExpectPrimaryName  []string
	ExpectAllHostNames [][]string
}

var knownKeys = map[string]struct{}{
	"ip_address":            {},
	"primary_name":          {},
	"host_name":             {},
	"root_domain":           {},
	"valid_host_names":      {},
	"expect_count":          {},
	"expect_ip_address":     {},
	"expect_primary_name":   {},
	"expect_all_host_names": {},
}

// LoadFile reads checks from an INI file.
func LoadFile(filename string) ([]Check, error) {
	return Load(filename)
}

// Load reads checks from an INI source, either a file name or the
// raw []byte content.
func Load(source interface{}) ([]Check, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, source)
	if err != nil {
		return nil, fmt.Errorf("could not load checks: %w", err)
	}

	var checks []Check
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			if len(section.Keys()) > 0 {
				return nil, errors.New("checks must be declared in named sections")
			}
			continue
		}
		check, err := parseSection(section)
		if err != nil {
			return nil, fmt.Errorf("invalid check %q: %w", section.Name(), err)
		}
		checks = append(checks, check)
	}
	if len(checks) == 0 {
		return nil, errors.New("no checks defined")
	}
	return checks, nil
}

func parseSection(section *ini.Section) (Check, error) {
	for _, key := range section.Keys() {
		if _, ok := knownKeys[key.Name()]; !ok {
			return Check{}, fmt.Errorf("unknown key %q", key.Name())
		}
	}

	check := Check{
		Name:        section.Name(),
		IPAddress:   section.Key("ip_address").String(),
		PrimaryName: section.Key("primary_name").String(),
		HostName:    section.Key("host_name").String(),
		RootDomain:  section.Key("root_domain").String(),
	}
	if section.HasKey("valid_host_names") {
		valid, err := section.Key("valid_host_names").Bool()
		if err != nil {
			return Check{}, fmt.Errorf("valid_host_names: %w", err)
		}
		check.ValidHostNames = valid
	}
	if section.HasKey("expect_count") {
		count, err := section.Key("expect_count").Int()
		if err != nil {
			return Check{}, fmt.Errorf("expect_count: %w", err)
		}
		if count < 0 {
			return Check{}, errors.New("expect_count must not be negative")
		}
		check.ExpectCount = &count
	}
	if section.HasKey("expect_ip_address") {
		check.ExpectIPAddress = section.Key("expect_ip_address").Strings(",")
	}
	if section.HasKey("expect_primary_name") {
		check.ExpectPrimaryName = section.Key("expect_primary_name").Strings(",")
	}
	if section.HasKey("expect_all_host_names") {
		for _, row := range strings.Split(section.Key("expect_all_host_names").String(), "|") {
			check.ExpectAllHostNames = append(check.ExpectAllHostNames, splitList(row))
		}
	}
	return check, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Predicates returns the filters of the check.
func (c Check) Predicates() []table.Predicate {
	var predicates []table.Predicate
	if c.IPAddress != "" {
		predicates = append(predicates, table.IPAddress(c.IPAddress))
	}
	if c.PrimaryName != "" {
		predicates = append(predicates, table.PrimaryName(c.PrimaryName))
	}
	if c.HostName != "" {
		predicates = append(predicates, table.HostName(c.HostName))
	}
	if c.RootDomain != "" {
		predicates = append(predicates, table.RootDomain(c.RootDomain))
	}
	if c.ValidHostNames {
		predicates = append(predicates, table.ValidHostNames())
	}
	return predicates
}

func (c Check) hasExpectations() bool {
	return c.ExpectCount != nil || c.ExpectIPAddress != nil || c.ExpectPrimaryName != nil || c.ExpectAllHostNames != nil
}

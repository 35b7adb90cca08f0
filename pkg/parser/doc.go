// Package parser is a package for parsing the hosts file
// format. Each line maps an IP address to a primary name
// followed by optional aliases, separated by whitespace.
//
// Comments start at the first `#` anywhere on a line. Blank
// lines, comment-only lines and lines with fewer than two
// tokens produce no entry. Malformed lines are never an error,
// they are simply dropped.
package parser

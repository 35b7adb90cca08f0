package runner

import (
	"github.com/projectdiscovery/gologger"
)

const banner = `
      __       __             __
 ___ / /_____ / /  ___  ___ _/ /____
/ -_) __/ __// _ \/ _ \(_-</ __(_-<
\__/\__/\__//_//_/\___/___/\__/___/
`

// version is the current version of etchosts
const version = `v0.1.0`

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}

package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
  __        _ __               __ 
 / /_____ _(_) /__ ___  ____  / /_
/ __/ __ '/ / (_-</ _ \/ __/ / __/
\__/\_,_/_/_/___/\___/_/    \__/ 
`

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}

// GetUpdateCallback returns a callback function that updates tailsort
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("tailsort", version)()
	}
}

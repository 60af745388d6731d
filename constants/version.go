package constants

// Product identity shown in the welcome banner
const Name = "hecto"

// Version is set at build time:
//
//	go build -ldflags "-X github.com/lixenwraith/hecto/constants.Version=1.2.3"
var Version = "0.1.0"

// Welcome returns the banner text, e.g. "hecto editor -- version 0.1.0"
func Welcome() string {
	return Name + " editor -- version " + Version
}

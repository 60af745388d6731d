package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/hecto/config"
	"github.com/lixenwraith/hecto/constants"
	"github.com/lixenwraith/hecto/editor"
	"github.com/lixenwraith/hecto/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the editor crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Use \r\n in case the tty is still in raw mode
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mHECTO CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", constants.Name, err)
		os.Exit(1)
	}
}

// run returns only after the terminal has been restored
func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.LogDir, cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	term, err := newTerminal(cfg.Driver)
	if err != nil {
		return err
	}

	log.Printf("%s %s starting, driver=%s", constants.Name, constants.Version, cfg.Driver)

	if err := editor.New(term, nil).Run(); err != nil {
		log.Printf("session ended with error: %v", err)
		return err
	}

	log.Printf("session ended")
	return nil
}

// newTerminal selects the driver named in the config
func newTerminal(driver string) (terminal.Terminal, error) {
	switch driver {
	case config.DriverTcell:
		return terminal.NewTcell()
	case config.DriverANSI:
		return terminal.New(), nil
	}
	return nil, fmt.Errorf("unknown driver %q", driver)
}

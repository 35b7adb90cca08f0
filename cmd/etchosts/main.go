package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/projectdiscovery/etchosts/pkg/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	// Parse the command line flags
	options := runner.ParseOptions()

	hostsRunner, err := runner.New(options)
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s\n", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = hostsRunner.Run(ctx)
	hostsRunner.Close()
	cancel()
	if err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}
}

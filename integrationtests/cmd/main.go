package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"myregistry/integrationtests/scenario"
)

const (
	defaultRegistryURL = "http://localhost:8080"
	defaultExpiryWait  = 5 * time.Second
)

func main() {
	list := flag.Bool("list", false, "list available scenarios and exit")
	scenarioName := flag.String("scenario", "", "scenario to run (or pass as positional arg, or \"all\")")
	registryURL := flag.String("registry", "", "registry base URL (default: http://localhost:8080 or REGISTRY_URL env)")
	expiryWait := flag.Duration("expiry-wait", defaultExpiryWait, "how long to wait for an expired lease to be reaped")
	flag.Parse()

	if *registryURL == "" {
		*registryURL = os.Getenv("REGISTRY_URL")
	}
	if *registryURL == "" {
		*registryURL = defaultRegistryURL
	}

	if *list {
		for _, name := range scenario.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	name := *scenarioName
	if name == "" {
		args := flag.Args()
		if len(args) > 0 {
			name = args[0]
		}
	}
	if name == "" {
		fmt.Fprintln(os.Stderr, "usage: integrationtests [--list] [--scenario=NAME|all] [--registry=URL] [--expiry-wait=DURATION] [scenario_name]")
		fmt.Fprintln(os.Stderr, "  use --list to list scenarios")
		os.Exit(2)
	}

	cfg := &scenario.Config{
		RegistryURL: *registryURL,
		ExpiryWait:  *expiryWait,
	}

	names := []string{name}
	if name == "all" {
		names = scenario.Names()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second*time.Duration(len(names)))
	defer cancel()

	exitCode := 0
	for _, n := range names {
		// Run scenario and capture result
		err := scenario.Run(n, ctx, cfg)

		// Output scenario result
		fmt.Println("\n=== Scenario Result ===")
		fmt.Printf("Scenario: %s\n", n)

		if err != nil {
			fmt.Printf("Status: FAILED\n")
			fmt.Printf("Error: %v\n", err)
			var unknown *scenario.UnknownScenarioError
			if errors.As(err, &unknown) {
				fmt.Fprintf(os.Stderr, "\navailable scenarios: %s\n", strings.Join(scenario.Names(), ", "))
				fmt.Println("=====================")
				os.Exit(2)
			}
			fmt.Println("=====================")
			exitCode = 1
			continue
		}

		fmt.Printf("Status: PASSED\n")
		fmt.Println("=====================")
	}
	os.Exit(exitCode)
}

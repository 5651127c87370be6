package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	GlobalConfigFile string
	Mode             string
	QueriesFile      string
	CorrelationMode  string
}

func ParseFlags() AppFlags {
	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	modeFlag := flag.String("mode", "", "Mode to run the tool: fetch, extract, or evaluate")
	modeFlagAlias := flag.String("m", "", "Alias for -mode")

	queriesFile := flag.String("queries", "", "Path to a text file containing one query per line (overrides config file if set)")
	queriesFileAlias := flag.String("q", "", "Alias for -queries")

	correlationMode := flag.String("correlation", "", "Correlation method for evaluate mode: global or rerank (overrides config file if set)")
	correlationModeAlias := flag.String("r", "", "Alias for -correlation")

	flag.Parse()

	flags := AppFlags{}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if *modeFlag != "" {
		flags.Mode = *modeFlag
	} else if *modeFlagAlias != "" {
		flags.Mode = *modeFlagAlias
	}

	if *queriesFile != "" {
		flags.QueriesFile = *queriesFile
	} else if *queriesFileAlias != "" {
		flags.QueriesFile = *queriesFileAlias
	}

	if *correlationMode != "" {
		flags.CorrelationMode = *correlationMode
	} else if *correlationModeAlias != "" {
		flags.CorrelationMode = *correlationModeAlias
	}

	return flags
}

func ValidateFlags(flags AppFlags) error {
	switch flags.Mode {
	case "fetch", "extract", "evaluate":
		return nil
	case "":
		return fmt.Errorf("--mode argument is required (fetch, extract, or evaluate)")
	default:
		return fmt.Errorf("invalid mode '%s': must be fetch, extract, or evaluate", flags.Mode)
	}
}

func PrintUsageAndExit(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
	flag.Usage()
	os.Exit(2)
}

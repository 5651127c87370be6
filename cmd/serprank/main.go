package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"serprank/internal/comparer"
	"serprank/internal/config"
	"serprank/internal/extractor"
	"serprank/internal/fetcher"
	"serprank/internal/logger"
	"serprank/internal/models"
	"serprank/internal/reporter"
	"serprank/internal/urlhandler"
)

func main() {
	fmt.Println("SerpRank starting...")

	flags := ParseFlags()
	if err := ValidateFlags(flags); err != nil {
		PrintUsageAndExit(err)
	}

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}

	applyFlagOverrides(gCfg, flags, zLogger)

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}
	zLogger.Info().Str("mode", flags.Mode).Msg("Configuration loaded and validated")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch flags.Mode {
	case "fetch":
		err = runFetch(ctx, gCfg, zLogger)
	case "extract":
		err = runExtract(gCfg, zLogger)
	case "evaluate":
		err = runEvaluate(gCfg, zLogger)
	}
	if err != nil {
		zLogger.Fatal().Err(err).Str("mode", flags.Mode).Msg("Run failed")
	}

	zLogger.Info().Str("mode", flags.Mode).Msg("Done")
}

// applyFlagOverrides lets command line flags take precedence over the
// config file for the settings that change between runs
func applyFlagOverrides(gCfg *config.GlobalConfig, flags AppFlags, zLogger zerolog.Logger) {
	if flags.QueriesFile != "" {
		gCfg.FetcherConfig.QueriesFile = flags.QueriesFile
		gCfg.ExtractorConfig.QueriesFile = flags.QueriesFile
		zLogger.Info().Str("queries_file", flags.QueriesFile).Msg("Queries file overridden by command line flag")
	}
	if flags.CorrelationMode != "" {
		gCfg.ComparerConfig.CorrelationMode = flags.CorrelationMode
		zLogger.Info().Str("correlation_mode", flags.CorrelationMode).Msg("Correlation mode overridden by command line flag")
	}
}

// runFetch downloads result pages for every configured query and stores
// the raw HTML on disk for a later extract run
func runFetch(ctx context.Context, gCfg *config.GlobalConfig, zLogger zerolog.Logger) error {
	queries, err := models.LoadQueries(gCfg.FetcherConfig.QueriesFile, gCfg.FetcherConfig.MaxQueries)
	if err != nil {
		return err
	}
	zLogger.Info().Int("queries", len(queries)).Str("file", gCfg.FetcherConfig.QueriesFile).Msg("Queries loaded")

	f, err := fetcher.NewFetcher(gCfg.FetcherConfig, zLogger)
	if err != nil {
		return err
	}

	summary, err := f.Run(ctx, queries)
	if err != nil {
		return err
	}

	zLogger.Info().
		Int("successful_queries", summary.SuccessfulQueries).
		Int("failed_queries", summary.FailedQueries).
		Int("pages_fetched", summary.PagesFetched).
		Msg("Fetch run finished")
	return nil
}

// runExtract parses the stored HTML pages and writes the candidate
// result set as JSON
func runExtract(gCfg *config.GlobalConfig, zLogger zerolog.Logger) error {
	queries, err := models.LoadQueries(gCfg.ExtractorConfig.QueriesFile, gCfg.ExtractorConfig.MaxQueries)
	if err != nil {
		return err
	}

	organicFilter := urlhandler.NewOrganicFilter(urlhandler.OrganicFilterConfig{
		ExcludePatterns: gCfg.ExtractorConfig.ExcludePatterns,
	})
	normalizer := urlhandler.NewURLNormalizer(gCfg.NormalizerConfig.ToNormalizationConfig())

	serpExtractor := extractor.NewSERPExtractor(organicFilter, normalizer, zLogger)
	processor := extractor.NewDirectoryProcessor(
		serpExtractor,
		gCfg.ExtractorConfig.RawHTMLDir,
		gCfg.ExtractorConfig.PagesPerQuery,
		gCfg.ExtractorConfig.TopK,
		zLogger,
	)

	results, err := processor.Process(queries)
	if err != nil {
		return err
	}

	if err := models.SaveResultSet(results, gCfg.ExtractorConfig.OutputFile); err != nil {
		return err
	}

	zLogger.Info().
		Int("queries", results.Len()).
		Str("output_file", gCfg.ExtractorConfig.OutputFile).
		Msg("Extract run finished")
	return nil
}

// runEvaluate compares the candidate result set against the reference
// set and writes the CSV and text reports
func runEvaluate(gCfg *config.GlobalConfig, zLogger zerolog.Logger) error {
	reference, err := models.LoadResultSet(gCfg.ComparerConfig.ReferenceFile)
	if err != nil {
		return err
	}
	candidate, err := models.LoadResultSet(gCfg.ComparerConfig.CandidateFile)
	if err != nil {
		return err
	}

	mode, err := comparer.ParseCorrelationMode(gCfg.ComparerConfig.CorrelationMode)
	if err != nil {
		return err
	}

	cmp, err := comparer.NewComparer(mode, zLogger)
	if err != nil {
		return err
	}

	results, err := cmp.CompareAll(reference, candidate)
	if err != nil {
		return err
	}

	manager := reporter.NewReportManager(gCfg.ReporterConfig, zLogger)
	csvPath, textPath, err := manager.GenerateReports(results, mode)
	if err != nil {
		return err
	}

	fmt.Printf("Comparison complete: %d queries evaluated\n", len(results))
	fmt.Printf("CSV report:  %s\n", csvPath)
	fmt.Printf("Text report: %s\n", textPath)
	return nil
}

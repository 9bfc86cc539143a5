package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"intguard/internal/vectors"
)

var vectorsCmd = &cobra.Command{
	Use:   "vectors [flags] suite.toml...",
	Short: "Run conformance-vector suites",
	Long: `Vectors executes TOML suites of checked operations and compares each
outcome against its expectation. Suites run concurrently; with a terminal
attached a live progress view is shown.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVectors,
}

func init() {
	vectorsCmd.Flags().Int("jobs", runtime.NumCPU(), "number of suites to run concurrently")
	vectorsCmd.Flags().Bool("cache", false, "skip suites whose content hash already passed")
	vectorsCmd.Flags().Bool("no-ui", false, "disable the progress view")
}

func runVectors(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	noUI, err := cmd.Flags().GetBool("no-ui")
	if err != nil {
		return fmt.Errorf("failed to get no-ui flag: %w", err)
	}

	suites := make([]*vectors.Suite, 0, len(args))
	for _, path := range args {
		s, err := vectors.LoadSuite(path)
		if err != nil {
			return err
		}
		suites = append(suites, s)
	}

	var cache *vectors.Cache
	if useCache {
		cache, err = vectors.OpenCache("intguard")
		if err != nil {
			return fmt.Errorf("failed to open result cache: %w", err)
		}
	}

	var results []vectors.SuiteResult
	pending := suites
	if cache != nil {
		pending = pending[:0:0]
		for _, s := range suites {
			fp, err := s.Fingerprint()
			if err != nil {
				return err
			}
			if res, ok, err := cache.Lookup(fp); err == nil && ok {
				results = append(results, res)
				continue
			}
			pending = append(pending, s)
		}
	}

	if len(pending) > 0 {
		var ran []vectors.SuiteResult
		if !noUI && isTerminal(os.Stdout) {
			ran, err = runVectorsWithUI(cmd.Context(), "running vector suites", pending, jobs)
		} else {
			ran, err = vectors.RunSuites(cmd.Context(), pending, jobs, nil)
		}
		if err != nil {
			return err
		}
		if cache != nil {
			for _, res := range ran {
				for _, s := range pending {
					if s.Name != res.Suite {
						continue
					}
					fp, err := s.Fingerprint()
					if err != nil {
						continue
					}
					// Cache write failures only cost a re-run next time.
					_ = cache.Store(fp, res)
				}
			}
		}
		results = append(results, ran...)
	}

	return reportResults(cmd, results)
}

func reportResults(cmd *cobra.Command, results []vectors.SuiteResult) error {
	colored := useColor(cmd, os.Stdout)
	failed := 0
	for _, res := range results {
		status := "pass"
		if len(res.Failures) > 0 {
			status = "FAIL"
			failed++
		}
		if colored {
			if status == "pass" {
				status = color.GreenString(status)
			} else {
				status = color.RedString(status)
			}
		}
		fmt.Printf("%s %s: %d/%d\n", status, res.Suite, res.Passed, res.Total)
		for _, f := range res.Failures {
			fmt.Printf("    %s\n", f)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d suites failed", failed, len(results))
	}
	return nil
}

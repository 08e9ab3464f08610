package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/adeqmish/ai-text-humanizer/internal/client"
)

type result struct {
	Sample   string `json:"sample"`
	Chars    int    `json:"chars"`
	Run      int    `json:"run"`
	WallMs   int64  `json:"wall_ms"`
	OutChars int    `json:"out_chars"`
	Status   int    `json:"status,omitempty"`
	Error    string `json:"error,omitempty"`
}

type job struct {
	sample Sample
	run    int
}

func main() {
	url := flag.String("url", "http://localhost:8090", "API base URL")
	accessKey := flag.String("access-key", "", "access key (optional)")
	runs := flag.Int("runs", 3, "Number of runs per sample")
	concurrency := flag.Int("concurrency", 1, "Requests in flight at once")
	quality := flag.Bool("quality", false, "Quality mode: show input/output for each sample (1 run, no timing table)")
	jsonOut := flag.String("json", "", "Write results to JSON file (e.g. results.json)")
	warmup := flag.Bool("warmup", false, "Run one warmup request before measuring")
	flag.Parse()

	c := client.New(*url, *accessKey)
	c.HTTP = &http.Client{Timeout: 180 * time.Second}
	ctx := context.Background()

	if *quality {
		if failures := runQualityMode(ctx, c); failures > 0 {
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Benchmarking against %s (%d runs per sample, concurrency %d", c.BaseURL, *runs, *concurrency)
	if *warmup {
		fmt.Print(", warmup enabled")
	}
	fmt.Println(")")

	if *warmup {
		w := benchmark(ctx, c, Samples[0], 0)
		if w.Error != "" {
			fmt.Printf("  Warmup FAILED (%s)\n", w.Error)
		} else {
			fmt.Printf("  Warmup %dms (discarded)\n", w.WallMs)
		}
	}

	var jobs []job
	for _, sample := range Samples {
		for run := 1; run <= *runs; run++ {
			jobs = append(jobs, job{sample: sample, run: run})
		}
	}
	results := runAll(ctx, c, jobs, *concurrency)

	fmt.Println()
	printTable(results)
	s := summarize(results)
	printSummary(s)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, results, c.BaseURL); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", *jsonOut)
		}
	}

	if s.Failed > 0 {
		os.Exit(1)
	}
}

// runAll runs every job with at most concurrency requests in flight and
// returns results in job order.
func runAll(ctx context.Context, c *client.Client, jobs []job, concurrency int) []result {
	if concurrency < 1 {
		concurrency = 1
	}
	results := make([]result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, j := range jobs {
		g.Go(func() error {
			results[i] = benchmark(ctx, c, j.sample, j.run)
			if results[i].Error != "" {
				fmt.Printf("  %s run %d FAILED (%s)\n", j.sample.Name, j.run, results[i].Error)
			} else {
				fmt.Printf("  %s run %d %dms\n", j.sample.Name, j.run, results[i].WallMs)
			}
			return nil
		})
	}
	g.Wait()
	return results
}

func benchmark(ctx context.Context, c *client.Client, sample Sample, run int) result {
	r := result{Sample: sample.Name, Chars: utf8.RuneCountInString(sample.Text), Run: run}

	start := time.Now()
	out, err := c.Humanize(ctx, sample.Text)
	r.WallMs = time.Since(start).Milliseconds()

	if err != nil {
		r.Error = err.Error()
		var cerr *client.Error
		if errors.As(err, &cerr) {
			r.Status = cerr.StatusCode
		}
		return r
	}
	r.OutChars = utf8.RuneCountInString(out)
	r.Status = http.StatusOK
	return r
}

func printTable(results []result) {
	fmt.Println("| Sample | Chars | Run | Wall (ms) | Out Chars | Ratio |")
	fmt.Println("|--------|-------|-----|-----------|-----------|-------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("| %-6s | %5d | %d | %9s | %9s | %5s |\n",
				r.Sample, r.Chars, r.Run, "FAIL", "-", "-")
			continue
		}
		ratio := float64(r.OutChars) / float64(r.Chars)
		fmt.Printf("| %-6s | %5d | %d | %9d | %9d | %5.2f |\n",
			r.Sample, r.Chars, r.Run, r.WallMs, r.OutChars, ratio)
	}
}

func runQualityMode(ctx context.Context, c *client.Client) int {
	fmt.Printf("Quality test against %s\n", c.BaseURL)
	fmt.Println(strings.Repeat("=", 72))

	var failures int
	for i, sample := range QualitySamples {
		fmt.Printf("\n--- %d/%d: %s (%d chars) ---\n", i+1, len(QualitySamples), sample.Name, len(sample.Text))
		fmt.Printf("IN:  %s\n", sample.Text)

		start := time.Now()
		out, err := c.Humanize(ctx, sample.Text)
		if err != nil {
			fmt.Printf("ERR: %s\n", err)
			failures++
			continue
		}

		fmt.Printf("OUT: %s\n", out)
		fmt.Printf("     [%dms, %d->%d chars]\n", time.Since(start).Milliseconds(), len(sample.Text), len(out))
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 72))
	fmt.Printf("Done: %d/%d passed\n", len(QualitySamples)-failures, len(QualitySamples))
	return failures
}

type summary struct {
	Total     int
	OK        int
	Failed    int
	MsPerChar float64
	MinMs     int64
	MinSample string
	MaxMs     int64
	MaxSample string
}

func summarize(results []result) summary {
	s := summary{Total: len(results)}

	var totalMs int64
	var totalChars int
	for _, r := range results {
		if r.Error != "" {
			s.Failed++
			continue
		}
		if s.OK == 0 || r.WallMs < s.MinMs {
			s.MinMs, s.MinSample = r.WallMs, r.Sample
		}
		if s.OK == 0 || r.WallMs > s.MaxMs {
			s.MaxMs, s.MaxSample = r.WallMs, r.Sample
		}
		s.OK++
		totalMs += r.WallMs
		totalChars += r.Chars
	}
	if totalChars > 0 {
		s.MsPerChar = float64(totalMs) / float64(totalChars)
	}
	return s
}

func printSummary(s summary) {
	if s.OK == 0 {
		fmt.Printf("\nSummary: all %d runs failed\n", s.Total)
		return
	}
	fmt.Printf("\nSummary:\n")
	fmt.Printf("- Avg ms/char: %.2f\n", s.MsPerChar)
	fmt.Printf("- Min wall: %dms (%s)\n", s.MinMs, s.MinSample)
	fmt.Printf("- Max wall: %dms (%s)\n", s.MaxMs, s.MaxSample)
	fmt.Printf("- Total runs: %d (%d ok, %d failed)\n", s.Total, s.OK, s.Failed)
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Results   []result `json:"results"`
}

func writeJSON(path string, results []result, baseURL string) error {
	report := jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rojanmagar2001/primeprobe/internal/app"
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:3000/check-prime", "Check-prime endpoint; the number is sent as ?number=")
		timeout   = flag.Duration("timeout", 10*time.Second, "HTTP timeout per request (e.g. 10s, 0 = none)")
		rate      = flag.Int("rate", 0, "Max requests per second, up to 1000 (0 = unlimited)")
		numbers   = flag.String("numbers", "", "Comma-separated numbers to check instead of the built-in list")
		input     = flag.String("input", "", "File with one number per line (# comments allowed)")
		format    = flag.String("format", "text", "Output format: text, json")
		color     = flag.String("color", "auto", "Colour output: auto, always, never")
		summary   = flag.Bool("summary", false, "Print a summary line after the last report")
		logLevel  = flag.String("log-level", "warn", "Log level on stderr: debug, info, warn, error")
		userAgent = flag.String("user-agent", "primeprobe/0.1", "User-Agent header")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: primeprobe [options] [number ...]\n\n")
		fmt.Fprintf(os.Stderr, "Checks each number against a check-prime HTTP service and prints one report per number.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  primeprobe\n")
		fmt.Fprintf(os.Stderr, "  primeprobe 7 -7 abc 1000000000000000003\n")
		fmt.Fprintf(os.Stderr, "  primeprobe -rate 5 -input numbers.txt -summary\n")
	}
	flag.Parse()

	items, err := app.LoadItems(flag.Args(), *numbers, *input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	cfg := app.Config{
		BaseURL:   *baseURL,
		Timeout:   *timeout,
		UserAgent: *userAgent,
		Rate:      *rate,
		Format:    *format,
		Color:     *color,
		LogLevel:  *logLevel,
		Summary:   *summary,
		Items:     items,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "interrupted")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

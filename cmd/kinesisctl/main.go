package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"kinesis/pkg/kinesis"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "trace":
		return runTrace(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: kinesisctl <run|runs|trace> [flags]", msg)
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file")
	planPath := fs.String("plan", "", "behavior plan file (YAML)")
	goal := fs.Float64("goal", 0, "goal x coordinate for the default walk-then-stop behavior")
	period := fs.Duration("period", 0, "tick period (e.g. 100ms)")
	storeKind := fs.String("store", "", "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "", "sqlite database path")
	quiet := fs.Bool("quiet", false, "suppress element notifications")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadOrDefaultConfig(*configPath)
	if err != nil {
		return err
	}
	cfg.applyFlags(fs, *planPath, *goal, *period, *storeKind, *dbPath)

	client, err := kinesis.New(ctx, kinesis.Options{StoreKind: cfg.Store, DBPath: cfg.DBPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	req := kinesis.RunRequest{
		PlanPath: cfg.Plan,
		GoalX:    cfg.Goal,
		Period:   cfg.Period,
	}
	if !*quiet {
		req.Log = os.Stdout
	}

	summary, err := client.Run(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("run=%s behavior=%s status=%s ticks=%s elapsed=%s\n",
		summary.RunID, summary.Behavior, summary.Status,
		humanize.Comma(int64(summary.Ticks)), summary.Duration.Round(time.Millisecond))
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file")
	storeKind := fs.String("store", "", "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "", "sqlite database path")
	limit := fs.Int("limit", 20, "maximum runs to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadOrDefaultConfig(*configPath)
	if err != nil {
		return err
	}
	cfg.applyFlags(fs, "", 0, 0, *storeKind, *dbPath)

	client, err := kinesis.New(ctx, kinesis.Options{StoreKind: cfg.Store, DBPath: cfg.DBPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	items, err := client.Runs(ctx, *limit)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%s  %-16s %-9s ticks=%-6s %s\n",
			item.RunID, item.Behavior, item.Status,
			humanize.Comma(int64(item.Ticks)),
			humanize.Time(item.StartedAtUTC))
	}
	return nil
}

func runTrace(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("trace", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file")
	storeKind := fs.String("store", "", "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "", "sqlite database path")
	runID := fs.String("run-id", "", "run to dump")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return usageError("trace: -run-id is required")
	}

	cfg, err := loadOrDefaultConfig(*configPath)
	if err != nil {
		return err
	}
	cfg.applyFlags(fs, "", 0, 0, *storeKind, *dbPath)

	client, err := kinesis.New(ctx, kinesis.Options{StoreKind: cfg.Store, DBPath: cfg.DBPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	ticks, err := client.Trace(ctx, *runID)
	if err != nil {
		return err
	}
	for _, tick := range ticks {
		fmt.Printf("%4d  %-9s v=%+.3f x=%.3f vm=%.3f knee_jerk=%v\n",
			tick.Seq, tick.Status, tick.Velocity, tick.MeasuredX,
			tick.MeasuredVelocity, tick.KneeJerking)
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/go-drift/blocks/pkg/platform"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show configuration and process details",
		Long: `Show the resolved project configuration and details of the current
process, the identifier the background task would log.`,
		Usage: "blocks status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Project: %s (%s)\n", cfg.AppName, cfg.AppID)
	fmt.Fprintf(stdout, "Module:  %s\n", cfg.ModulePath)
	fmt.Fprintf(stdout, "Log:     %s, %s\n", cfg.LogFormat, cfg.LogLevel)
	fmt.Fprintf(stdout, "Screen:  %dx%d\n", cfg.ScreenWidth, cfg.ScreenHeight)
	fmt.Fprintln(stdout)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pid := platform.SystemEnv{}.ProcessID()
	info, err := platform.DescribeProcess(ctx, pid)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Process:")
	fmt.Fprintf(stdout, "  %-10s %d\n", "pid:", info.PID)
	fmt.Fprintf(stdout, "  %-10s %d\n", "ppid:", info.PPID)
	fmt.Fprintf(stdout, "  %-10s %s\n", "name:", orUnknown(info.Name))
	fmt.Fprintf(stdout, "  %-10s %s\n", "exe:", orUnknown(info.Executable))
	fmt.Fprintf(stdout, "  %-10s %d\n", "threads:", info.NumThreads)
	if !info.StartedAt.IsZero() {
		fmt.Fprintf(stdout, "  %-10s %s\n", "started:", info.StartedAt.Format(time.RFC3339))
	}
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/go-drift/blocks/pkg/host"
	"github.com/go-drift/blocks/pkg/layout"
	"github.com/go-drift/blocks/pkg/platform"
	"github.com/go-drift/blocks/pkg/rendering"
	"github.com/go-drift/blocks/pkg/service"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Simulate a host session",
		Long: `Simulate one host session in this process.

The command will:
  1. Deliver a start request to the background task
  2. Drain the main queue, which runs the task's stop request
  3. Create the screen and print its laid-out content

Task log records and host debug records go to standard output using the
log settings from blocks.yaml.

Flags:
  --invocation-id N  Invocation id passed with the start request (default: 1)
  --service ID       Task identifier (default: the app id)
  --screen ID        Screen identifier (default: main)
  --metrics          Print the host's lifecycle metrics when done`,
		Usage: "blocks run [--invocation-id N] [--service ID] [--screen ID] [--metrics]",
		Run:   runRun,
	})
}

type runOptions struct {
	invocationID int
	serviceID    string
	screenID     string
	metrics      bool
}

func parseRunArgs(args []string) (runOptions, error) {
	opts := runOptions{invocationID: 1, screenID: "main"}
	for i := 0; i < len(args); i++ {
		var err error
		switch name := flagName(args[i]); name {
		case "--invocation-id":
			opts.invocationID, i, err = intFlag(args, i, name)
		case "--service":
			opts.serviceID, i, err = stringFlag(args, i, name)
		case "--screen":
			opts.screenID, i, err = stringFlag(args, i, name)
		case "--metrics":
			opts.metrics = true
		default:
			err = fmt.Errorf("unknown argument %q", args[i])
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func runRun(args []string) error {
	opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if opts.serviceID == "" {
		opts.serviceID = cfg.AppID
	}

	logger := newLogger(stdout, cfg)
	screenOut := &rendering.TextRenderer{
		W:        stdout,
		Viewport: layout.Size{Width: float64(cfg.ScreenWidth), Height: float64(cfg.ScreenHeight)},
	}
	reg := prometheus.NewRegistry()
	rt := host.New(host.Config{
		Logger:     platform.SlogLogger{Logger: logger},
		Renderer:   func(string) rendering.Renderer { return screenOut },
		Log:        logger,
		Registerer: reg,
	})
	defer rt.Close()

	var runErr error
	rt.Post(func() {
		runErr = rt.StartService(opts.serviceID, service.Request{Action: cfg.AppID + ".START"}, opts.invocationID)
	})
	rt.Drain()
	if runErr != nil {
		return runErr
	}

	rt.Post(func() {
		_, runErr = rt.CreateScreen(opts.screenID, nil)
	})
	rt.Drain()
	if runErr != nil {
		return runErr
	}

	fmt.Fprintf(stdout, "live services: %d\n", len(rt.Services()))
	if opts.metrics {
		return printMetrics(reg)
	}
	return nil
}

func printMetrics(g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			var labels []string
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			name := fam.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			fmt.Fprintf(stdout, "%s %g\n", name, sampleValue(m))
		}
	}
	return nil
}

func sampleValue(m *dto.Metric) float64 {
	if c := m.GetCounter(); c != nil {
		return c.GetValue()
	}
	return m.GetGauge().GetValue()
}

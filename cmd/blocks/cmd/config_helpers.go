package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-drift/blocks/cmd/blocks/internal/config"
	"github.com/go-drift/blocks/pkg/errors"
	"github.com/go-drift/blocks/pkg/platform"
)

// loadConfig resolves the project configuration, honoring --config.
func loadConfig() (*config.Resolved, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		return config.Resolve(root)
	}
	cfg, err := config.LoadFile(configPath, true)
	if err != nil {
		return nil, err
	}
	return config.ResolveConfig(root, cfg)
}

// newLogger builds the command's slog.Logger and routes reported host
// errors through it.
func newLogger(w io.Writer, cfg *config.Resolved) *slog.Logger {
	logger := platform.NewSlog(w, cfg.LogFormat, cfg.LogLevel)
	errors.SetHandler(&errors.LogHandler{Logger: logger})
	return logger
}

// intFlag parses the value following a flag, accepting both
// "--name value" and "--name=value".
func intFlag(args []string, i int, name string) (int, int, error) {
	raw, next, err := stringFlag(args, i, name)
	if err != nil {
		return 0, i, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, i, fmt.Errorf("%s requires an integer (got %q)", name, raw)
	}
	return n, next, nil
}

func stringFlag(args []string, i int, name string) (string, int, error) {
	if value, ok := strings.CutPrefix(args[i], name+"="); ok {
		return value, i, nil
	}
	if i+1 >= len(args) {
		return "", i, fmt.Errorf("%s requires a value", name)
	}
	return args[i+1], i + 1, nil
}

func flagName(arg string) string {
	name, _, _ := strings.Cut(arg, "=")
	return name
}

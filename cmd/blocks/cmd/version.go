package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the blocks CLI version and build time.",
		Usage: "blocks version",
		Run:   runVersion,
	})
}

func runVersion([]string) error {
	_, err := fmt.Fprintf(stdout, "blocks CLI version %s (built %s)\n", Version, BuildTime)
	return err
}

package cli

import (
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print runtime diagnostics",
	Long: `Prints the executable path, build information and the dependencies
compiled into the binary. Useful when filing a bug report.`,
	Run: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, _ []string) {
	executable, err := os.Executable()
	if err != nil {
		executable = "(unknown)"
	}

	cmd.Printf("%s: %s\n", outputStyles.Detail.Render("Executable"), executable)
	cmd.Printf("%s: %s\n", outputStyles.Detail.Render("Version"), version)
	cmd.Printf("%s: %s\n", outputStyles.Detail.Render("Go version"), runtime.Version())
	cmd.Printf("%s: %s/%s\n", outputStyles.Detail.Render("Platform"), runtime.GOOS, runtime.GOARCH)

	info, ok := debug.ReadBuildInfo()
	if !ok || len(info.Deps) == 0 {
		return
	}
	cmd.Printf("%s:\n", outputStyles.Detail.Render("Dependencies"))
	for _, dep := range info.Deps {
		cmd.Printf("  %s==%s\n", dep.Path, dep.Version)
	}
}

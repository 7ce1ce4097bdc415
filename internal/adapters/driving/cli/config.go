package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tool configuration",
	Long: `Manages the tool configuration stored in ~/.restcall/config.toml.
Configuration survives credential purges and applies to every command.

Available keys:
  insecure        bool    skip TLS certificate verification (default false)
  timeout         int     request timeout in seconds (default 30)
  auth.token_path string  token endpoint path on the API host (default /auth/token)

Examples:
  restcall config list
  restcall config get timeout
  restcall config set timeout 60
  restcall config set auth.token_path /oauth2/token`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a single configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Printf("insecure = %t\n", settings.Insecure)
	cmd.Printf("timeout = %d\n", settings.Timeout)
	cmd.Printf("auth.token_path = %s\n", settings.TokenPath)
	cmd.Println()
	cmd.Printf("Settings file: %s\n", settingsService.Path())
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	switch args[0] {
	case "insecure":
		cmd.Printf("%t\n", settings.Insecure)
	case "timeout":
		cmd.Printf("%d\n", settings.Timeout)
	case "auth.token_path":
		cmd.Println(settings.TokenPath)
	default:
		return fmt.Errorf("unknown configuration key %q", args[0])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	switch key {
	case "insecure":
		insecure, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("insecure expects true or false, got %q", value)
		}
		if err := settingsService.SetInsecure(insecure); err != nil {
			return err
		}
	case "timeout":
		seconds, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeout expects seconds as an integer, got %q", value)
		}
		if err := settingsService.SetTimeout(seconds); err != nil {
			return err
		}
	case "auth.token_path":
		if err := settingsService.SetTokenPath(value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}

	cmd.Printf("%s set to %s\n", key, value)
	return nil
}

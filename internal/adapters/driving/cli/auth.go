package cli

import (
	"bufio"
	"context"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate and store the session credential",
	Long: `Exchanges username and password for an access token and stores the
resulting session credential.

By default the credential is written to the credential file under
~/.restcall. With --env nothing is written; the credential is printed as
shell export lines instead, so it can be applied to the current shell:

  eval "$(restcall auth --host api.example.com --user alice --env)"

The password is prompted with echo disabled when --pass is omitted.

Examples:
  # Authenticate and persist to the credential file
  restcall auth --host api.example.com --user alice

  # Non-default port, export lines on stdout
  restcall auth --host api.example.com --port 8443 --user alice --env`,
	RunE: runAuth,
}

// Flags for auth.
var (
	authHost string
	authPort int
	authUser string
	authPass string
	authEnv  bool
)

func init() {
	authCmd.Flags().StringVar(&authHost, "host", "", "Host name or IP address (required)")
	authCmd.Flags().IntVarP(&authPort, "port", "p", 443, "Port number")
	authCmd.Flags().StringVarP(&authUser, "user", "U", "", "Username (required)")
	authCmd.Flags().StringVarP(&authPass, "pass", "P", "", "Password (prompted when omitted)")
	authCmd.Flags().BoolVar(&authEnv, "env", false, "Print export lines to stdout instead of writing the credential file")
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, _ []string) error {
	if credentialsService == nil {
		return errors.New("credentials service not configured")
	}
	if authHost == "" {
		return errors.New("--host is required")
	}
	if authUser == "" {
		return errors.New("--user is required")
	}

	password := authPass
	if password == "" {
		// Prompt on stderr so --env output stays clean for eval
		cmd.PrintErr("Password: ")
		password = readPassword(cmd)
		cmd.PrintErrln()
	}
	if password == "" {
		return errors.New("password is required")
	}

	cred, err := domain.NewCredential(authHost, authPort, authUser, password)
	if err != nil {
		return err
	}

	authenticated, err := credentialsService.Login(context.Background(), cred)
	if err != nil {
		return err
	}

	if authEnv {
		return credentialsService.PrintExports(cmd.OutOrStdout(), authenticated)
	}

	if err := credentialsService.Save(authenticated); err != nil {
		return err
	}

	cmd.Printf("Authentication successful. Credential saved to %s\n", credentialsService.StorePath())
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword(cmd *cobra.Command) string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	return readLine(bufio.NewReader(cmd.InOrStdin()))
}

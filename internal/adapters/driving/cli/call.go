package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
	"github.com/custodia-labs/restcall-cli/internal/logger"
)

var callCmd = &cobra.Command{
	Use:   "call METHOD PATH",
	Short: "Issue an authenticated request against the API",
	Long: `Issues an authenticated HTTPS request against the API the stored
credential points at. METHOD is one of GET, POST, PUT, PATCH or DELETE
and PATH is the request path, starting with "/".

The response body is printed to stdout; status and headers go to stderr
when --show-header is set. Any status other than 200 is an error: the
body is still printed, and a 401 additionally purges the stored
credential.

Examples:
  # Fetch a resource
  restcall call GET /api/v1/users

  # Create a resource from an inline JSON body
  restcall call POST /api/v1/users --body '{"name": "alice"}'

  # Read the body from a file, add a header, pretty-print the response
  restcall call PUT /api/v1/users/42 --body @user.json -H "X-Request-Id: 7" -p

  # Print the equivalent curl command instead of sending the request
  restcall call DELETE /api/v1/users/42 --curl`,
	Args: cobra.ExactArgs(2),
	RunE: runCall,
}

// Flags for call.
var (
	callHeaders    []string
	callBody       string
	callCurl       bool
	callShowHeader bool
	callPretty     bool
)

func init() {
	callCmd.Flags().StringArrayVarP(&callHeaders, "header", "H", nil, "Request header as \"Key: Value\". Can be used multiple times.")
	callCmd.Flags().StringVar(&callBody, "body", "", "JSON request body, inline or @file")
	callCmd.Flags().BoolVar(&callCurl, "curl", false, "Print the equivalent curl command instead of sending the request")
	callCmd.Flags().BoolVar(&callShowHeader, "show-header", false, "Print response status and headers to stderr")
	callCmd.Flags().BoolVarP(&callPretty, "pretty", "p", false, "Pretty-print JSON response bodies")
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	if credentialsService == nil {
		return errors.New("credentials service not configured")
	}
	if callService == nil {
		return errors.New("call service not configured")
	}

	headers, err := parseHeaderFlags(callHeaders)
	if err != nil {
		return err
	}
	body, err := parseBodyFlag(callBody)
	if err != nil {
		return err
	}

	cred, err := credentialsService.Resolve()
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return fmt.Errorf("%w: run 'restcall auth' first", err)
		}
		return err
	}

	req, err := callService.NewRequest(cred, args[0], args[1], headers, body)
	if err != nil {
		return err
	}

	if callCurl {
		cmd.Println(shellCommand(req.CurlCommand(effectiveInsecure())))
		return nil
	}

	resp, err := req.Invoke(context.Background())
	if err != nil {
		return handleCallError(cmd, cred, err)
	}

	if callShowHeader {
		printResponseHeader(cmd, resp)
	}
	return printResponseBody(cmd, resp)
}

// handleCallError renders a non-200 response and purges the stored
// credential when the API no longer accepts it. Transport failures pass
// through untouched.
func handleCallError(cmd *cobra.Command, cred *domain.AuthenticatedCredential, err error) error {
	var httpErr *domain.HTTPResponseError
	if !errors.As(err, &httpErr) {
		return err
	}

	if callShowHeader {
		cmd.PrintErrln(renderStatusLine(httpErr.StatusCode, httpErr.Reason))
	}
	if httpErr.Body != "" {
		cmd.Println(httpErr.Body)
	}

	if domain.IsUnauthorized(err) {
		if purgeErr := cred.Purge(); purgeErr != nil {
			logger.Warn("Failed to purge credential: %v", purgeErr)
		} else {
			cmd.PrintErrln(outputStyles.Warning.Render("Stored credential purged. Run 'restcall auth' to authenticate again."))
		}
	}

	return err
}

// printResponseHeader writes the status line and headers to stderr so the
// body on stdout stays pipeable.
func printResponseHeader(cmd *cobra.Command, resp *domain.Response) {
	cmd.PrintErrln(renderStatusLine(resp.StatusCode, resp.Reason))

	keys := make([]string, 0, len(resp.Header))
	for k := range resp.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.PrintErrf("%s: %s\n", outputStyles.Detail.Render(k), strings.Join(resp.Header[k], ", "))
	}
	cmd.PrintErrln()
}

// printResponseBody writes the body to stdout. JSON bodies are re-encoded
// compact, or indented with --pretty; anything else is printed as received.
func printResponseBody(cmd *cobra.Command, resp *domain.Response) error {
	if len(resp.Body) == 0 {
		return nil
	}
	if !resp.IsJSON() {
		cmd.Println(resp.Text())
		return nil
	}

	var decoded any
	if err := resp.JSON(&decoded); err != nil {
		// Declared JSON but does not parse; show it as-is
		cmd.Println(resp.Text())
		return nil
	}

	var out []byte
	var err error
	if callPretty {
		out, err = json.MarshalIndent(decoded, "", "  ")
	} else {
		out, err = json.Marshal(decoded)
	}
	if err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}
	cmd.Println(string(out))
	return nil
}

// parseHeaderFlags converts repeated "Key: Value" flags into a header map.
// Both sides are trimmed; the value may itself contain colons.
func parseHeaderFlags(flags []string) (map[string]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	headers := make(map[string]string, len(flags))
	for _, f := range flags {
		parts := strings.SplitN(f, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid header %q, expected \"Key: Value\"", f)
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			return nil, fmt.Errorf("invalid header %q, expected \"Key: Value\"", f)
		}
		headers[key] = strings.TrimSpace(parts[1])
	}
	return headers, nil
}

// parseBodyFlag decodes the --body flag. A leading @ reads the body from a
// file, anything else is taken as inline JSON.
func parseBodyFlag(value string) (any, error) {
	if value == "" {
		return nil, nil
	}

	raw := []byte(value)
	if strings.HasPrefix(value, "@") {
		var err error
		raw, err = os.ReadFile(strings.TrimPrefix(value, "@"))
		if err != nil {
			return nil, fmt.Errorf("read body file: %w", err)
		}
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("body is not valid JSON: %w", err)
	}
	return body, nil
}

// shellCommand joins command tokens into a copy-pasteable shell line.
func shellCommand(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = shellQuote(arg)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n\"'\\$`{}[]()<>;&|*?~#") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/restcall-cli/internal/core/domain"
)

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings     domain.Settings
	getErr       error
	setErr       error
	setInsecure  *bool
	setTimeout   *int
	setTokenPath *string
}

func (m *mockSettingsService) Get() (domain.Settings, error) {
	if m.getErr != nil {
		return domain.Settings{}, m.getErr
	}
	return m.settings, nil
}

func (m *mockSettingsService) SetInsecure(insecure bool) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.setInsecure = &insecure
	return nil
}

func (m *mockSettingsService) SetTimeout(seconds int) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.setTimeout = &seconds
	return nil
}

func (m *mockSettingsService) SetTokenPath(path string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.setTokenPath = &path
	return nil
}

func (m *mockSettingsService) Path() string {
	return "/tmp/restcall-test/config.toml"
}

func setupConfigTest() (*mockSettingsService, func()) {
	oldService := settingsService
	mock := &mockSettingsService{settings: domain.DefaultSettings()}
	settingsService = mock
	return mock, func() {
		settingsService = oldService
	}
}

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigCmd_Short(t *testing.T) {
	assert.Equal(t, "Manage tool configuration", configCmd.Short)
}

func TestConfigCmd_HasSubcommands(t *testing.T) {
	commands := configCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "set")
}

func TestConfigCmd_DefaultsToList(t *testing.T) {
	_, cleanup := setupConfigTest()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "insecure = false")
}

func TestConfigListCmd_Executes(t *testing.T) {
	_, cleanup := setupConfigTest()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "insecure = false")
	assert.Contains(t, buf.String(), "timeout = 30")
	assert.Contains(t, buf.String(), "auth.token_path = /auth/token")
	assert.Contains(t, buf.String(), "Settings file: /tmp/restcall-test/config.toml")
}

func TestConfigListCmd_StoredValues(t *testing.T) {
	mock, cleanup := setupConfigTest()
	defer cleanup()
	mock.settings = domain.Settings{Insecure: true, Timeout: 90, TokenPath: "/oauth2/token"}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "insecure = true")
	assert.Contains(t, buf.String(), "timeout = 90")
	assert.Contains(t, buf.String(), "auth.token_path = /oauth2/token")
}

func TestConfigGetCmd_Insecure(t *testing.T) {
	_, cleanup := setupConfigTest()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "get", "insecure"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "false\n", buf.String())
}

func TestConfigGetCmd_Timeout(t *testing.T) {
	_, cleanup := setupConfigTest()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "get", "timeout"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "30\n", buf.String())
}

func TestConfigGetCmd_TokenPath(t *testing.T) {
	_, cleanup := setupConfigTest()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "get", "auth.token_path"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "/auth/token\n", buf.String())
}

func TestConfigGetCmd_UnknownKey(t *testing.T) {
	_, cleanup := setupConfigTest()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "get", "colour"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown configuration key "colour"`)
}

func TestConfigGetCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "get"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestConfigSetCmd_Insecure(t *testing.T) {
	mock, cleanup := setupConfigTest()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "insecure", "true"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.NotNil(t, mock.setInsecure)
	assert.True(t, *mock.setInsecure)
	assert.Contains(t, buf.String(), "insecure set to true")
}

func TestConfigSetCmd_Timeout(t *testing.T) {
	mock, cleanup := setupConfigTest()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "timeout", "60"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.NotNil(t, mock.setTimeout)
	assert.Equal(t, 60, *mock.setTimeout)
	assert.Contains(t, buf.String(), "timeout set to 60")
}

func TestConfigSetCmd_TokenPath(t *testing.T) {
	mock, cleanup := setupConfigTest()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "auth.token_path", "/oauth2/token"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.NotNil(t, mock.setTokenPath)
	assert.Equal(t, "/oauth2/token", *mock.setTokenPath)
	assert.Contains(t, buf.String(), "auth.token_path set to /oauth2/token")
}

func TestConfigSetCmd_UnknownKey(t *testing.T) {
	_, cleanup := setupConfigTest()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", "colour", "red"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown configuration key "colour"`)
}

func TestConfigSetCmd_InvalidBool(t *testing.T) {
	_, cleanup := setupConfigTest()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", "insecure", "maybe"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `insecure expects true or false, got "maybe"`)
}

func TestConfigSetCmd_InvalidInt(t *testing.T) {
	_, cleanup := setupConfigTest()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", "timeout", "soon"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `timeout expects seconds as an integer, got "soon"`)
}

func TestConfigSetCmd_ServiceErrorSurfaces(t *testing.T) {
	mock, cleanup := setupConfigTest()
	defer cleanup()
	mock.setErr = fmt.Errorf("%w: %q does not start with \"/\"", domain.ErrInvalidPath, "oauth2/token")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", "auth.token_path", "oauth2/token"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidPath)
}

func TestConfigListCmd_GetErrorSurfaces(t *testing.T) {
	mock, cleanup := setupConfigTest()
	defer cleanup()
	mock.getErr = fmt.Errorf("read config file: permission denied")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get settings")
}

func TestConfigCmd_ServiceNotConfigured(t *testing.T) {
	oldService := settingsService
	settingsService = nil
	defer func() {
		settingsService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}

package domain

import "fmt"

// mask replaces sensitive values in string representations.
const mask = "****"

// Credential is the unauthenticated host/port/username/password bundle.
// It exists only transiently: created from CLI input, exchanged once for an
// access token, never persisted.
type Credential struct {
	Host     string
	Port     int
	Username string
	Password string
}

// NewCredential builds an unauthenticated credential for a target API.
// The port must be in the TCP range 1-65535.
func NewCredential(host string, port int, username, password string) (Credential, error) {
	if port < 1 || port > 65535 {
		return Credential{}, fmt.Errorf("%w: %d out of range 1-65535", ErrInvalidPort, port)
	}
	return Credential{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
	}, nil
}

// String masks the password so credentials can be printed safely.
func (c Credential) String() string {
	return fmt.Sprintf("Credential(host=%s, port=%d, username=%s, password=%s)",
		c.Host, c.Port, c.Username, mask)
}

// GoString masks the password under %#v formatting.
func (c Credential) GoString() string {
	return fmt.Sprintf("domain.Credential{Host:%q, Port:%d, Username:%q, Password:%q}",
		c.Host, c.Port, c.Username, mask)
}

// AuthenticatedCredential carries the target API plus the opaque access
// token obtained by a successful login. Host and port are fixed at
// construction. The purge hook, when attached, removes whatever persisted
// representation the credential was restored from; it is never serialized.
type AuthenticatedCredential struct {
	host        string
	port        int
	accessToken string
	purgeHook   func() error
}

// NewAuthenticatedCredential builds an authenticated credential with no
// purge hook attached.
func NewAuthenticatedCredential(host string, port int, accessToken string) *AuthenticatedCredential {
	return &AuthenticatedCredential{
		host:        host,
		port:        port,
		accessToken: accessToken,
	}
}

// Host returns the target API host.
func (c *AuthenticatedCredential) Host() string {
	return c.host
}

// Port returns the target API port.
func (c *AuthenticatedCredential) Port() int {
	return c.port
}

// AccessToken returns the opaque access token.
func (c *AuthenticatedCredential) AccessToken() string {
	return c.accessToken
}

// BaseURL composes the https origin of the target API.
func (c *AuthenticatedCredential) BaseURL() string {
	return fmt.Sprintf("https://%s:%d", c.host, c.port)
}

// OnPurge attaches the removal hook invoked by Purge and returns the
// credential, so resolution code can attach it in one expression.
func (c *AuthenticatedCredential) OnPurge(hook func() error) *AuthenticatedCredential {
	c.purgeHook = hook
	return c
}

// Purge invokes the attached removal hook. Every call re-invokes the hook;
// there is no already-purged guard, so callers fire it at most once per
// credential in practice. Without a hook, Purge is a no-op.
func (c *AuthenticatedCredential) Purge() error {
	if c.purgeHook == nil {
		return nil
	}
	return c.purgeHook()
}

// String masks the access token so credentials can be printed safely.
func (c *AuthenticatedCredential) String() string {
	return fmt.Sprintf("AuthenticatedCredential(host=%s, port=%d, access_token=%s)",
		c.host, c.port, mask)
}

// GoString masks the access token under %#v formatting.
func (c *AuthenticatedCredential) GoString() string {
	return fmt.Sprintf("domain.AuthenticatedCredential{host:%q, port:%d, accessToken:%q}",
		c.host, c.port, mask)
}

// Package file provides the file-based implementation of the ConfigStore
// driven port. Settings are persisted as TOML in the restcall config
// directory, separate from the credential file so that purging a session
// never touches tool configuration.
package file

package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// ErrNoToken is returned when no bearer token is configured for the mail API.
var ErrNoToken = errors.New("report: no mail token available")

// Default keyring coordinates for the stored mail token.
const (
	KeyringService = "whack-arcade"
	KeyringAccount = "graph-token"
)

// TokenSource supplies a bearer token for the mail API.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed token.
type StaticToken string

// Token returns the token, or ErrNoToken if it is empty.
func (t StaticToken) Token(context.Context) (string, error) {
	if strings.TrimSpace(string(t)) == "" {
		return "", ErrNoToken
	}
	return string(t), nil
}

// EnvToken reads the token from the named environment variable.
type EnvToken string

// Token returns the variable's value, or ErrNoToken if it is unset or empty.
func (name EnvToken) Token(context.Context) (string, error) {
	v := strings.TrimSpace(os.Getenv(string(name)))
	if v == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrNoToken, string(name))
	}
	return v, nil
}

// KeyringTokens stores the token in the OS keychain.
type KeyringTokens struct {
	Service string
	Account string
}

// DefaultKeyring returns the keyring entry used by the CLI.
func DefaultKeyring() KeyringTokens {
	return KeyringTokens{Service: KeyringService, Account: KeyringAccount}
}

// Token reads the stored token.
func (k KeyringTokens) Token(context.Context) (string, error) {
	v, err := keyring.Get(k.Service, k.Account)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("%w: nothing stored in keyring", ErrNoToken)
	}
	if err != nil {
		return "", fmt.Errorf("report: keyring get: %w", err)
	}
	return v, nil
}

// Set stores token, replacing any previous one.
func (k KeyringTokens) Set(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("report: token is empty")
	}
	if err := keyring.Set(k.Service, k.Account, token); err != nil {
		return fmt.Errorf("report: keyring set: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (k KeyringTokens) Clear() error {
	if err := keyring.Delete(k.Service, k.Account); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("report: keyring delete: %w", err)
	}
	return nil
}

// ChainTokens tries each source in order and returns the first token found.
type ChainTokens []TokenSource

// Token returns the first available token. When every source fails the
// error matches ErrNoToken and carries each source's failure.
func (c ChainTokens) Token(ctx context.Context) (string, error) {
	errs := []error{ErrNoToken}
	for _, src := range c {
		tok, err := src.Token(ctx)
		if err == nil {
			return tok, nil
		}
		errs = append(errs, err)
	}
	return "", errors.Join(errs...)
}

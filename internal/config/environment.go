package config

import (
	"errors"
	"sync"
)

var (
	ErrEnvironmentAlreadySet = errors.New("environment is already set")
	ErrEnvironmentNotSet     = errors.New("environment is not set")
)

// Credentials are the Trakt application credentials.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Environment holds the credentials shared by every request. It is set once at
// startup and read-only afterwards; a second Set fails instead of overwriting.
type Environment struct {
	mu    sync.RWMutex
	creds *Credentials
}

func (e *Environment) Set(cfg TraktConfig) error {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return errors.New("trakt client id and secret must be non-empty")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.creds != nil {
		return ErrEnvironmentAlreadySet
	}
	e.creds = &Credentials{ClientID: cfg.ClientID, ClientSecret: cfg.ClientSecret}
	return nil
}

func (e *Environment) Credentials() (Credentials, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.creds == nil {
		return Credentials{}, ErrEnvironmentNotSet
	}
	return *e.creds, nil
}

package server

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Host           string
	Port           int
	Root           string
	ReadBufferSize int
	EnableLogging  bool
}

func DefaultConfig() *Config {
	return &Config{
		Host:           "localhost",
		Port:           8080,
		Root:           "www",
		ReadBufferSize: 1024,
		EnableLogging:  true,
	}
}

// Addr returns the host:port the server listens on
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// canonicalRoot returns Root as an absolute path with symlinks evaluated
func (c *Config) canonicalRoot() (string, error) {
	abs, err := filepath.Abs(c.Root)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", c.Root, err)
	}
	root, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", c.Root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("stat root %q: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("root %q is not a directory", root)
	}
	return root, nil
}

// validate checks the fields that have no usable zero value
func (c *Config) validate() error {
	if c.ReadBufferSize <= 0 {
		return errors.New("read buffer size must be > 0")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// internal/config/server.go
package config

import (
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"
)

// Addr is the listen address. An empty Host listens on all interfaces.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

func (a *APIConfig) TimeoutDuration() time.Duration {
	return time.Duration(a.Timeout) * time.Second
}

// ConfigureLogger applies level and format to the given logrus logger.
func (l *LogConfig) ConfigureLogger(logger *logrus.Logger) error {
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	logger.SetLevel(level)

	if l.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func (m *MockAPIConfig) Delay() time.Duration {
	return time.Duration(m.DelayMS) * time.Millisecond
}

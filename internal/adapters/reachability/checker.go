package reachability

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
)

// Checker probes the exchange-rate service with a TCP dial.
type Checker struct {
	address string
	timeout time.Duration
	dialer  *net.Dialer
	logger  *slog.Logger
}

var _ portssvc.ReachabilityChecker = (*Checker)(nil)

// NewChecker creates a checker dialing address (host:port) with the given timeout.
func NewChecker(address string, timeout time.Duration, logger *slog.Logger) *Checker {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		address: address,
		timeout: timeout,
		dialer:  &net.Dialer{Timeout: timeout},
		logger:  logger,
	}
}

// AddressFromURL derives host:port from a base URL, defaulting the port from the scheme.
func AddressFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("url %q has no host", raw)
	}
	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "http":
			port = "80"
		default:
			port = "443"
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}

// Address returns the probed host:port.
func (c *Checker) Address() string {
	return c.address
}

// Check dials the service once. Failures wrap apperrors.ErrUnreachable.
func (c *Checker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrUnreachable, c.address, err)
	}
	_ = conn.Close()
	return nil
}

// IsReachable reports whether a TCP connection to the service can be opened.
func (c *Checker) IsReachable(ctx context.Context) bool {
	if err := c.Check(ctx); err != nil {
		c.logger.DebugContext(ctx, "Exchange-rate service unreachable", slog.String("error", err.Error()))
		return false
	}
	return true
}

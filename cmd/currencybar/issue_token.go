package main

import (
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/currency_bar/internal/utils"
	"github.com/spf13/pflag"
)

// runIssueToken prints a bearer token for an API client, signed with the configured JWT secret.
func runIssueToken(args []string, secret string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("issue-token", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	clientID := fs.String("client", "menubar", "client id placed in the token subject")
	ttl := fs.Duration("ttl", 30*24*time.Hour, "token lifetime, 0 for no expiry")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if secret == "" {
		fmt.Fprintln(stderr, "JWT_SECRET is not set; the API does not require tokens")
		return 1
	}

	token, err := utils.IssueClientToken(*clientID, secret, *ttl, time.Now())
	if err != nil {
		fmt.Fprintf(stderr, "failed to issue token: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, token)
	return 0
}

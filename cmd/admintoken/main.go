// Command admintoken mints a bearer token for the admin API, signed with
// the server's AUTH_JWT_SECRET.
//
// Usage:
//
//	admintoken --subject=ops [--role=admin] [--ttl=24h]
//
// The token is printed to stdout; the expiry goes to stderr.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kesava/telugu-word-analysis/internal/auth"
	"github.com/kesava/telugu-word-analysis/internal/config"
)

func main() {
	subject := flag.String("subject", "", "token subject, e.g. the operator's name")
	role := flag.String("role", auth.RoleAdmin, "token role: admin or reader")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: auth.token_ttl)")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "Usage: admintoken --subject=ops [--role=admin] [--ttl=24h]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Auth.Enabled() {
		log.Fatal("AUTH_JWT_SECRET is required")
	}

	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime)
	token, exp, err := tokens.Issue(*subject, *role)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", exp.Format(time.RFC3339))
}

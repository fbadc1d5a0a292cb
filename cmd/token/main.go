package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/pkg/auth"
)

// token prints an analysis access token signed with JWT_SECRET.
func main() {
	client := flag.String("client", "cli", "subject recorded in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	config.LoadEnv()
	cfg := config.LoadConfig()

	token, err := auth.GenerateAccessToken(cfg.JWTSecret, *client, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v (is JWT_SECRET set?)\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

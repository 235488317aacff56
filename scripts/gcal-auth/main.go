// scripts/gcal-auth/main.go
//
// Run once to authorize read-only Google Calendar access for the gcal
// appointment source and write the OAuth token next to the binary.
//
// Usage:
//   go run scripts/gcal-auth/main.go [credentials.json]

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"

	"adhd-planner/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := gcalendar.OAuthConfigFromJSON(data)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("1. Open this URL in a browser and sign in with the calendar's Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("2. Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(gcalendar.DefaultTokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", gcalendar.DefaultTokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write %s: %v", gcalendar.DefaultTokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", gcalendar.DefaultTokenPath)
	fmt.Println("Set appointments.source to gcal and restart the planner.")
}

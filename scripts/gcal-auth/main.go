// gcal-auth authorizes the planning mirror against a Google account and writes token.json.
//
// Usage:
//
//	go run scripts/gcal-auth/main.go [credentials.json] [token.json]
//
// Only needed for OAuth Desktop credentials; service accounts work without a token.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath, tokenPath := "google-credentials.json", "token.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("read credentials %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("parse credentials: %v (expected an OAuth Desktop App file)", err)
	}

	fmt.Println("1. Ouvrez cette URL et connectez-vous avec le compte qui possède l'agenda :")
	fmt.Println()
	fmt.Println(config.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("2. Collez le code d'autorisation puis Entrée : ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		log.Fatalf("create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("write %s: %v", tokenPath, err)
	}

	fmt.Printf("\n%s enregistré. Redémarrez le bot pour activer la synchronisation Google Calendar.\n", tokenPath)
}

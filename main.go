package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"

	"gcalgateway/config"
	"gcalgateway/lib/mypublisher"
	"gcalgateway/lib/mytime"
	"gcalgateway/lib/myuuid"
	"gcalgateway/lib/myvault"
	"gcalgateway/services/events"
	"gcalgateway/services/events/calendarclient"
	"gcalgateway/services/oauth"
	"gcalgateway/services/oauth/oauthclient"
	"gcalgateway/services/warmup"
)

func main() {
	c := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using process environment")
	}

	cfg, err := config.Load(config.DefaultFilename)
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err)
	}
	if cfg.Google.ClientID == "" || cfg.Google.ClientSecret == "" {
		log.Fatalf("Missing Google client credentials: set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET")
	}

	router := mux.NewRouter()

	vault, vaultCleanup, err := myvault.New[oauth2.Token](c, cfg.StoreConfig())
	if err != nil {
		log.Fatalf("Error creating token vault: %s", err)
	}
	defer vaultCleanup()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	publisher, publisherCleanup, err := mypublisher.New(c, cfg.PublisherConfig(), nower, uuider)
	if err != nil {
		log.Fatalf("Error creating event publisher: %s", err)
	}
	defer publisherCleanup()

	oauthClient := oauthclient.NewOAuthClient(oauthclient.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		Scopes:       cfg.Google.Scopes,
	})
	oauthService := oauth.NewService(cfg.Google.ClientID, cfg.Google.RedirectURL, vault, nower, oauthClient, publisher)
	err = oauthService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering oauth endpoints: %s", err)
	}

	calendarClient := calendarclient.NewGoogleClient(calendarclient.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
	})
	eventService := events.NewService(vault, calendarClient, publisher)
	err = eventService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering event endpoints: %s", err)
	}

	warmup.NewService(vault).RegisterEndpoints(c, router)

	startWebServerBlocking(router, cfg.Port)
}

func startWebServerBlocking(router *mux.Router, port int) {
	log.Printf("Starting webserver on port %d (try http://localhost:%d/initialize)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%d", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %d: %s", port, err)
	}
}

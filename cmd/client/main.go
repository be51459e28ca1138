// Command client is a small CLI for the BrandMate backend: register,
// log in, inspect the current session, and log out.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Robertsonwahn/brandmatebackend/internal/client/api"
	"github.com/Robertsonwahn/brandmatebackend/internal/client/auth"
	"github.com/Robertsonwahn/brandmatebackend/internal/client/session"
	"github.com/Robertsonwahn/brandmatebackend/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.LoadClient()

	store, err := session.Open(cfg.SessionPath)
	if err != nil {
		log.Fatalf("open session store: %v", err)
	}
	defer store.Close()

	apiClient := api.New(cfg.APIBaseURL, cfg.HTTPTimeout)
	manager := auth.NewManager(apiClient, store)

	ctx := context.Background()
	manager.CheckAuthStatus(ctx)

	switch os.Args[1] {
	case "register":
		requireArgs(4, "register <username> <email> <password>")
		report(manager.Register(ctx, os.Args[2], os.Args[3], os.Args[4]))
	case "login":
		requireArgs(3, "login <username-or-email> <password>")
		report(manager.Login(ctx, os.Args[2], os.Args[3]))
	case "whoami":
		state := manager.State()
		if !state.IsAuthenticated {
			fmt.Println("not logged in")
			os.Exit(1)
		}
		fmt.Printf("%s <%s> role=%s\n", state.User.Username, state.User.Email, state.User.Role)
	case "logout":
		manager.Logout(ctx)
		fmt.Println("logged out")
	default:
		usage()
		os.Exit(2)
	}
}

func report(result auth.Result) {
	fmt.Println(result.Message)
	if !result.Success {
		os.Exit(1)
	}
}

func requireArgs(n int, form string) {
	if len(os.Args) < n+1 {
		fmt.Fprintf(os.Stderr, "usage: %s %s\n", os.Args[0], form)
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: client <register|login|whoami|logout> [args]")
}

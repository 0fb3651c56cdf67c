// Command provision creates the store's database and role on a PostgreSQL
// server and writes the .env artifact the server and collector load.
//
// It connects with an administrative role taken from DB_HOST, DB_PORT,
// DB_ADMIN_USER and DB_ADMIN_PASSWORD, then runs the DDL for the four
// positional arguments.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"tick_store/internal/platform/config"
	"tick_store/internal/platform/db"
	"tick_store/internal/platform/provision"
)

const applyTimeout = 30 * time.Second

func main() {
	args, err := provision.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = config.DefaultDBPort
	}
	adminUser := os.Getenv("DB_ADMIN_USER")
	if adminUser == "" {
		adminUser = "postgres"
	}

	admin := config.DBConfig{
		Host:     host,
		Port:     port,
		Name:     "postgres",
		User:     adminUser,
		Password: os.Getenv("DB_ADMIN_PASSWORD"),
		SSLMode:  config.DefaultDBSSLMode,
	}

	adminDB, err := db.Open(admin)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	if err := provision.Apply(ctx, adminDB, provision.Statements(args)); err != nil {
		log.Fatal(err)
	}
	log.Printf("database %q and role %q provisioned", args.DBName, args.DBUser)

	if err := provision.WriteEnvFile(".env", args, host, port); err != nil {
		log.Fatal(err)
	}
	log.Println(".env written")
}

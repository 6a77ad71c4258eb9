// Command admincli creates an admin account directly against the database,
// for bootstrapping a fresh deployment before any admin can log in.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/devhub/backend/internal/server/config"
	"github.com/devhub/backend/internal/server/models"
	"github.com/devhub/backend/internal/server/repositories/repomanager"
	"github.com/devhub/backend/internal/server/services"
	"golang.org/x/term"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	name := flag.String("name", "", "admin display name")
	email := flag.String("email", "", "admin email address")
	flag.Parse()

	if *name == "" || *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*name, *email); err != nil {
		log.Fatal(err)
	}
}

func run(name, email string) error {
	ctx := context.Background()
	cfg := config.LoadEnvConfig()

	password, err := promptPassword()
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	users := services.NewUserService(db, m, cfg)

	user, err := users.Register(ctx, name, email, password, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("error creating admin: %w", err)
	}

	fmt.Printf("admin account created: %s (%s)\n", user.Email, user.ID)
	return nil
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	p1, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}

	fmt.Print("Repeat password: ")
	p2, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}

	if string(p1) != string(p2) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(p1) == 0 {
		return "", fmt.Errorf("password must not be empty")
	}

	return string(p1), nil
}

package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrlokans/madr/internal/auth"
	"github.com/mrlokans/madr/internal/config"
	"github.com/mrlokans/madr/internal/database"
)

// CreateAccountCommand registers an account directly in the database,
// bypassing the HTTP API.
type CreateAccountCommand struct {
	Username     string
	Email        string
	Password     string
	DatabasePath string
	BcryptCost   int
}

func NewCreateAccountCommand() *CreateAccountCommand {
	return &CreateAccountCommand{}
}

func (cmd *CreateAccountCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-account", flag.ContinueOnError)

	fs.StringVar(&cmd.Username, "username", "", "Account username (required)")
	fs.StringVar(&cmd.Email, "email", "", "Account email, used to log in (required)")
	fs.StringVar(&cmd.Password, "password", "", "Account password (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the catalog database file")
	fs.IntVar(&cmd.BcryptCost, "cost", 12, "bcrypt cost factor")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-account -username <name> -email <email> -password <password> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create an account in the catalog database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Username == "" {
		return fmt.Errorf("required flag -username not provided")
	}
	if cmd.Email == "" {
		return fmt.Errorf("required flag -email not provided")
	}
	if cmd.Password == "" {
		return fmt.Errorf("required flag -password not provided")
	}

	return nil
}

func (cmd *CreateAccountCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath, "silent")
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	// Registration never signs tokens, so the issuer is left out
	service := auth.NewService(db.DB, config.Auth{BcryptCost: cmd.BcryptCost}, nil)

	account, err := service.Register(context.Background(), cmd.Username, cmd.Email, cmd.Password)
	if err != nil {
		return err
	}

	fmt.Printf("Created account %d (%s, %s) in %s\n", account.ID, account.Username, account.Email, absDBPath)
	return nil
}

package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"saukstas/config"
	"saukstas/internal/application/usecase"
	"saukstas/internal/infrastructure/attempts"
	"saukstas/internal/infrastructure/database"
	"saukstas/pkg/logger"
)

// HandleSetupAdmin creates the admin account interactively. The setup key is
// read from ADMIN_SETUP_KEY, the password from the terminal without echo.
func HandleSetupAdmin(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("couldn't stop db instance", "err", err)
		}
	}()

	in := bufio.NewReader(os.Stdin)
	username := prompt(in, "Username: ")
	email := prompt(in, "Email (optional): ")

	password, err := readPassword(in, "Password: ")
	if err != nil {
		ExitOnError(err)
	}
	confirm, err := readPassword(in, "Repeat password: ")
	if err != nil {
		ExitOnError(err)
	}
	if password != confirm {
		ExitOnError(errors.New("passwords do not match"))
	}

	tokens := usecase.NewTokens(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLInHours)*time.Hour)
	auth := usecase.NewAuthenticator(database.NewUserStore(db), attempts.NewMemoryStore(), tokens, usecase.AuthConfig{
		MaxAttempts: cfg.Auth.MaxAttempts,
		Lockout:     time.Duration(cfg.Auth.LockoutInMinutes) * time.Minute,
		SetupKey:    cfg.Auth.SetupKey,
	})

	user, err := auth.SetupAdmin(context.Background(), usecase.SetupInput{
		SetupKey: cfg.Auth.SetupKey,
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		ExitOnError(err)
	}

	fmt.Printf("admin %q created\n", user.Username) //nolint
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label) //nolint
	line, _ := in.ReadString('\n')

	return strings.TrimSpace(line)
}

func readPassword(in *bufio.Reader, label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return prompt(in, label), nil
	}

	fmt.Print(label) //nolint
	raw, err := term.ReadPassword(fd)
	fmt.Println() //nolint
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	return string(raw), nil
}

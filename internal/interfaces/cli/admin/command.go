// Package admin manages admin accounts from the command line.
package admin

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	adminUsecases "oficina/internal/application/admin/usecases"
	"oficina/internal/infrastructure/auth"
	"oficina/internal/infrastructure/config"
	"oficina/internal/infrastructure/database"
	"oficina/internal/infrastructure/repository"
	"oficina/internal/infrastructure/storage"
	"oficina/internal/shared/logger"
)

var (
	env      string
	email    string
	password string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVar(&email, "email", "", "Admin email (required)")
	_ = cmd.MarkPersistentFlagRequired("email")

	create := &cobra.Command{
		Use:   "create",
		Short: "Create an admin; the password is prompted when not given",
		RunE:  runCreate,
	}
	create.Flags().StringVar(&password, "password", "", "Admin password (prompted when empty)")

	remove := &cobra.Command{
		Use:   "delete",
		Short: "Delete an admin; its clients become unowned",
		RunE:  runDelete,
	}

	cmd.AddCommand(create, remove)
	return cmd
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, logger.NewLogger(), nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	pw := password
	if pw == "" {
		var err error
		if pw, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	uc := adminUsecases.NewCreateAdminUseCase(
		repository.NewAdminRepository(database.Get(), log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)
	a, err := uc.Execute(context.Background(), adminUsecases.CreateAdminCommand{Email: email, Password: pw})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Admin %s created with id %d\n", a.Email(), a.ID())
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	uc := adminUsecases.NewDeleteAdminUseCase(
		repository.NewAdminRepository(database.Get(), log),
		storage.NewPhotoStore(cfg.Server.StaticDir, cfg.Upload.MaxPhotoBytes, log),
		log,
	)
	if err := uc.Execute(context.Background(), email); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Admin %s deleted\n", email)
	return nil
}

// readPassword prompts twice on a terminal. Piped input is read as a
// single line.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		first, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprint(prompt, "Confirm password: ")
		second, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		if string(first) != string(second) {
			return "", errors.New("passwords do not match")
		}
		return string(first), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("password is required")
	}
	return line, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/service"
	"github.com/NiharGandhi/pent/models"
)

const usage = `usage: client [flags] <command> [args]

commands:
  register <username> <email> [password]   create an account
  login <username> [password]              check credentials
  user <id>                                show a user's public profile
  version                                  show the server version
  encrypt <plaintext>                      encrypt with the configured secret
  decrypt <ciphertext>                     decrypt with the configured secret

A missing password is prompted for without echo.
`

type command struct {
	minArgs, maxArgs int
	run              func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register": {2, 3, (*App).register},
	"login":    {1, 2, (*App).login},
	"user":     {1, 1, (*App).lookupUser},
	"version":  {0, 0, (*App).version},
	"encrypt":  {1, 1, (*App).encrypt},
	"decrypt":  {1, 1, (*App).decrypt},
}

type App struct {
	services *service.ClientServices

	out          io.Writer
	readPassword PasswordReader

	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.ClientServices, out io.Writer, readPassword PasswordReader, logger *logger.Logger) *App {
	return &App{
		services:     services,
		out:          out,
		readPassword: readPassword,
		logger:       logger,
	}
}

// Run dispatches args[0] to its command. "help" prints the usage text.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	name, rest := args[0], args[1:]
	if name == "help" || name == "-h" || name == "--help" {
		a.printUsage()
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(rest) < cmd.minArgs || len(rest) > cmd.maxArgs {
		return fmt.Errorf("%w for %s", ErrWrongArguments, name)
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	return cmd.run(a, ctx, rest)
}

func (a *App) register(ctx context.Context, args []string) error {
	password, err := a.passwordArg(args, 2)
	if err != nil {
		return err
	}

	user, err := a.services.AuthService.Register(ctx, models.Credentials{
		Username: args[0],
		Email:    args[1],
		Password: password,
	})
	if err != nil {
		return err
	}

	return a.printJSON(user)
}

func (a *App) login(ctx context.Context, args []string) error {
	password, err := a.passwordArg(args, 1)
	if err != nil {
		return err
	}

	user, err := a.services.AuthService.Login(ctx, models.Credentials{
		Username: args[0],
		Password: password,
	})
	if err != nil {
		return err
	}

	return a.printJSON(user)
}

func (a *App) lookupUser(ctx context.Context, args []string) error {
	user, err := a.services.AuthService.LookupUser(ctx, args[0])
	if err != nil {
		return err
	}

	return a.printJSON(user)
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.services.AuthService.ServerVersion(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) encrypt(ctx context.Context, args []string) error {
	ciphertext, err := a.services.CipherService.Encrypt(ctx, args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, ciphertext)
	return err
}

func (a *App) decrypt(ctx context.Context, args []string) error {
	plaintext, err := a.services.CipherService.Decrypt(ctx, strings.TrimSpace(args[0]))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, plaintext)
	return err
}

// passwordArg returns args[i] when given, otherwise prompts for it.
func (a *App) passwordArg(args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}

	password, err := a.readPassword("Password: ")
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", ErrEmptyPassword
	}
	return password, nil
}

func (a *App) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error writing data to JSON: %w", err)
	}

	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

func (a *App) printUsage() {
	_, _ = fmt.Fprint(a.out, usage)
}

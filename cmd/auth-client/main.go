package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	internalhttp "github.com/klwxsrx/dashboard-auth/internal/pkg/http"
	"github.com/klwxsrx/dashboard-auth/internal/user/client"
	pkgcmd "github.com/klwxsrx/dashboard-auth/pkg/cmd"
	"github.com/klwxsrx/dashboard-auth/pkg/env"
	"github.com/klwxsrx/dashboard-auth/pkg/log"
)

type options struct {
	email           string
	register        bool
	firstName       string
	lastName        string
	refreshInterval time.Duration
}

func main() {
	ctx := context.Background()
	logger := log.New(log.ParseLevel(env.Must(env.ParseDefault("LOG_LEVEL", "warn"))))
	defer func() {
		if pkgcmd.HandleAppPanic(ctx, logger, recover()) {
			os.Exit(1)
		}
	}()

	var opts options
	flag.StringVar(&opts.email, "email", "", "account email")
	flag.BoolVar(&opts.register, "register", false, "register the account before login")
	flag.StringVar(&opts.firstName, "first-name", "", "first name for registration")
	flag.StringVar(&opts.lastName, "last-name", "", "last name for registration")
	flag.DurationVar(&opts.refreshInterval, "refresh-interval", 5*time.Minute, "how often the session is refreshed")
	flag.Parse()
	if opts.email == "" {
		flag.Usage()
		os.Exit(2)
	}

	authService := client.NewAuthService(
		internalhttp.NewClientFactory(logger).MustInitClient(internalhttp.DestinationAuthService),
	)

	password := mustPromptPassword()
	if opts.register {
		err := authService.Register(ctx, client.RegistrationIn{
			Email:     opts.email,
			Password:  password,
			FirstName: opts.firstName,
			LastName:  opts.lastName,
		})
		if err != nil && !errors.Is(err, client.ErrUserAlreadyExists) {
			panic(fmt.Errorf("register: %w", err))
		}
	}

	_, err := authService.Login(ctx, opts.email, password)
	if err != nil {
		panic(fmt.Errorf("login: %w", err))
	}

	user, err := authService.CurrentUser(ctx)
	if err != nil {
		panic(fmt.Errorf("get current user: %w", err))
	}
	fmt.Printf("signed in as %s %s <%s> (%s)\n", user.FirstName, user.LastName, user.Email, user.ID)

	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		sessionKeeper(authService, opts.refreshInterval),
	)

	err = authService.Logout(ctx)
	if err != nil {
		panic(fmt.Errorf("logout: %w", err))
	}
	fmt.Println("signed out")
}

// sessionKeeper refreshes the session periodically and asks for the password when the server requires it.
func sessionKeeper(authService client.AuthService, interval time.Duration) func(context.Context) error {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}

			_, err := authService.Refresh(ctx, "")
			if errors.Is(err, client.ErrReauthenticationRequired) {
				fmt.Println("session expired, re-enter your password")
				_, err = authService.Refresh(ctx, mustPromptPassword())
			}
			if err != nil {
				return fmt.Errorf("refresh session: %w", err)
			}
		}
	}
}

func mustPromptPassword() string {
	fmt.Print("password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		panic(fmt.Errorf("read password: %w", err))
	}

	return string(password)
}

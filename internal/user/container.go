package user

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/klwxsrx/dashboard-auth/internal/pkg/cmd"
	"github.com/klwxsrx/dashboard-auth/internal/user/app/encoding"
	"github.com/klwxsrx/dashboard-auth/internal/user/app/service"
	"github.com/klwxsrx/dashboard-auth/internal/user/app/session"
	"github.com/klwxsrx/dashboard-auth/internal/user/domain"
	"github.com/klwxsrx/dashboard-auth/internal/user/infra"
	"github.com/klwxsrx/dashboard-auth/internal/user/infra/http"
	"github.com/klwxsrx/dashboard-auth/internal/user/infra/password"
	userinfrasession "github.com/klwxsrx/dashboard-auth/internal/user/infra/session"
	"github.com/klwxsrx/dashboard-auth/pkg/env"
	"github.com/klwxsrx/dashboard-auth/pkg/event"
	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
	"github.com/klwxsrx/dashboard-auth/pkg/lazy"
	"github.com/klwxsrx/dashboard-auth/pkg/sql"
)

type DependencyContainer struct {
	AuthService lazy.Loader[service.Authentication]
	UserService lazy.Loader[service.User]

	cookies lazy.Loader[http.CookieFactory]

	loginHandler          lazy.Loader[http.LoginHandler]
	registerUserHandler   lazy.Loader[http.RegisterUserHandler]
	logoutHandler         lazy.Loader[http.LogoutHandler]
	refreshTokenHandler   lazy.Loader[http.RefreshTokenHandler]
	getCurrentUserHandler lazy.Loader[http.GetCurrentUserHandler]
	getUserByIDHandler    lazy.Loader[http.GetUserByIDHandler]
}

func NewDependencyContainer(
	sessionConfig lazy.Loader[service.SessionConfig],
	storage lazy.Loader[cmd.StorageAdapter],
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	eventDispatchers lazy.Loader[cmd.EventDispatchers],
) DependencyContainer {
	eventDispatcher := eventDispatcherProvider(eventDispatchers)
	storageContainer := infra.NewStorageContainer(storage, db, dbMigrations, eventDispatcher)

	passwordEncoder := passwordEncoderProvider()
	tokenCodec := tokenCodecProvider(sessionConfig)
	cookies := cookieFactoryProvider(sessionConfig)

	credentialsVerifier := credentialsVerifierProvider(storageContainer, passwordEncoder)
	authService := authServiceProvider(credentialsVerifier, tokenCodec)
	userService := userServiceProvider(storageContainer, passwordEncoder)

	return DependencyContainer{
		AuthService: authService,
		UserService: userService,
		cookies:     cookies,
		loginHandler: lazy.New(func() (http.LoginHandler, error) {
			return http.NewLoginHandler(authService.MustLoad(), cookies.MustLoad()), nil
		}),
		registerUserHandler: lazy.New(func() (http.RegisterUserHandler, error) {
			return http.NewRegisterUserHandler(userService.MustLoad()), nil
		}),
		logoutHandler: lazy.New(func() (http.LogoutHandler, error) {
			return http.NewLogoutHandler(cookies.MustLoad()), nil
		}),
		refreshTokenHandler: lazy.New(func() (http.RefreshTokenHandler, error) {
			return http.NewRefreshTokenHandler(authService.MustLoad(), cookies.MustLoad()), nil
		}),
		getCurrentUserHandler: lazy.New(func() (http.GetCurrentUserHandler, error) {
			return http.NewGetCurrentUserHandler(userService.MustLoad()), nil
		}),
		getUserByIDHandler: lazy.New(func() (http.GetUserByIDHandler, error) {
			return http.NewGetUserByIDHandler(userService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	authRequired := http.WithSessionAuthentication(c.AuthService.MustLoad(), c.cookies.MustLoad())

	registry.Register(c.loginHandler.MustLoad())
	registry.Register(c.registerUserHandler.MustLoad())
	registry.Register(c.logoutHandler.MustLoad())
	registry.Register(c.refreshTokenHandler.MustLoad())
	registry.Register(c.getCurrentUserHandler.MustLoad(), authRequired...)
	registry.Register(c.getUserByIDHandler.MustLoad(), authRequired...)
}

// SessionConfigProvider reads SESSION_* variables.
func SessionConfigProvider() lazy.Loader[service.SessionConfig] {
	return lazy.New(func() (service.SessionConfig, error) {
		config := service.SessionConfig{
			Secret:       []byte(env.Must(env.Parse[string]("SESSION_SECRET"))),
			TokenTTL:     env.Must(env.ParseDefault[time.Duration]("SESSION_TOKEN_TTL", service.DefaultTokenTTL)),
			ReauthTTL:    env.Must(env.ParseDefault[time.Duration]("SESSION_REAUTH_TTL", 0)),
			CookieSecure: env.Must(env.ParseDefault("SESSION_COOKIE_SECURE", false)),
		}.WithDefaults()

		err := config.Validate()
		if err != nil {
			return service.SessionConfig{}, fmt.Errorf("invalid session config: %w", err)
		}

		return config, nil
	})
}

func eventDispatcherProvider(eventDispatchers lazy.Loader[cmd.EventDispatchers]) lazy.Loader[event.Dispatcher] {
	return lazy.New(func() (event.Dispatcher, error) {
		return eventDispatchers.MustLoad().MustInit(domain.Topic()), nil
	})
}

func passwordEncoderProvider() lazy.Loader[encoding.PasswordEncoder] {
	return lazy.New(func() (encoding.PasswordEncoder, error) {
		return password.NewEncoder(bcrypt.DefaultCost), nil
	})
}

func tokenCodecProvider(sessionConfig lazy.Loader[service.SessionConfig]) lazy.Loader[session.TokenCodec] {
	return lazy.New(func() (session.TokenCodec, error) {
		config := sessionConfig.MustLoad()
		return userinfrasession.NewCodec(config.Secret, config.TokenTTL, service.TokenIssuer), nil
	})
}

func cookieFactoryProvider(sessionConfig lazy.Loader[service.SessionConfig]) lazy.Loader[http.CookieFactory] {
	return lazy.New(func() (http.CookieFactory, error) {
		config := sessionConfig.MustLoad()
		return http.NewCookieFactory(config.ReauthTTL, config.CookieSecure), nil
	})
}

func credentialsVerifierProvider(
	storageContainer infra.StorageContainer,
	passwordEncoder lazy.Loader[encoding.PasswordEncoder],
) lazy.Loader[service.CredentialsVerifier] {
	return lazy.New(func() (service.CredentialsVerifier, error) {
		return service.NewCredentialsVerifier(
			storageContainer.UserRepo.MustLoad(),
			passwordEncoder.MustLoad(),
		), nil
	})
}

func authServiceProvider(
	credentialsVerifier lazy.Loader[service.CredentialsVerifier],
	tokenCodec lazy.Loader[session.TokenCodec],
) lazy.Loader[service.Authentication] {
	return lazy.New(func() (service.Authentication, error) {
		return service.NewAuthentication(
			credentialsVerifier.MustLoad(),
			tokenCodec.MustLoad(),
		), nil
	})
}

func userServiceProvider(
	storageContainer infra.StorageContainer,
	passwordEncoder lazy.Loader[encoding.PasswordEncoder],
) lazy.Loader[service.User] {
	return lazy.New(func() (service.User, error) {
		return service.NewUser(
			storageContainer.UserRepo.MustLoad(),
			passwordEncoder.MustLoad(),
		), nil
	})
}

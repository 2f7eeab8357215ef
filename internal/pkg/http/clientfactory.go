package http

import (
	"fmt"

	pkgenv "github.com/klwxsrx/dashboard-auth/pkg/env"
	pkghttp "github.com/klwxsrx/dashboard-auth/pkg/http"
	pkglog "github.com/klwxsrx/dashboard-auth/pkg/log"
	pkgstrings "github.com/klwxsrx/dashboard-auth/pkg/strings"
)

type Destination string

const (
	DestinationAuthService Destination = "auth"
)

type ClientFactory struct {
	logger pkglog.Logger
}

func NewClientFactory(logger pkglog.Logger) *ClientFactory {
	return &ClientFactory{logger: logger}
}

// MustInitClient reads the base url from <DESTINATION>_SERVICE_URL.
func (f *ClientFactory) MustInitClient(dest Destination, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	hostEnv := fmt.Sprintf("%s_SERVICE_URL", pkgstrings.ToScreamingSnakeCase(string(dest)))
	host := pkgenv.Must(pkgenv.Parse[string](hostEnv))
	return f.InitClient(host, extraOpts...)
}

func (f *ClientFactory) InitClient(baseURL string, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	opts := append([]pkghttp.ClientOption{
		pkghttp.WithBaseURL(baseURL),
		pkghttp.WithRequestLogging(f.logger, pkglog.LevelDebug, pkglog.LevelWarn),
	}, extraOpts...)

	return pkghttp.NewClient(opts...)
}

//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/google/wire"

	"github.com/lk2023060901/callerguard-backend/internal/conf"
	"github.com/lk2023060901/callerguard-backend/internal/lookup/biz"
	"github.com/lk2023060901/callerguard-backend/internal/lookup/service"
	"github.com/lk2023060901/callerguard-backend/internal/pkg/logger"
	"github.com/lk2023060901/callerguard-backend/internal/server"
)

// ProviderSet is the Wire provider set for all dependencies
var ProviderSet = wire.NewSet(
	// Upstream providers
	upstreamProviderSet,

	// Use cases
	useCaseProviderSet,

	// HTTP services
	service.NewLookupService,

	// Servers
	server.NewHTTPServer,
)

// Search and chat completion clients
var upstreamProviderSet = wire.NewSet(
	provideSearchProvider,
	provideChatProvider,
	provideTokenCounter,
)

// Use case providers
var useCaseProviderSet = wire.NewSet(
	providePolicy,
	provideSummaryOptions,
	biz.NewSummarizer,
	biz.NewLookupUseCase,
)

// InitializeApp initializes the application with Wire
func InitializeApp(config *conf.Config, log *logger.Logger) (*App, func(), error) {
	wire.Build(ProviderSet, newApp)
	return nil, nil, nil
}

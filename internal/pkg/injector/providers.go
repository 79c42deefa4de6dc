package injector

import (
	"go.uber.org/zap"

	"github.com/lk2023060901/callerguard-backend/internal/ai/provider/factory"
	"github.com/lk2023060901/callerguard-backend/internal/ai/provider/openai"
	aitypes "github.com/lk2023060901/callerguard-backend/internal/ai/provider/types"
	"github.com/lk2023060901/callerguard-backend/internal/conf"
	"github.com/lk2023060901/callerguard-backend/internal/lookup/biz"
	"github.com/lk2023060901/callerguard-backend/internal/pkg/logger"
	"github.com/lk2023060901/callerguard-backend/internal/websearch/provider"
)

// Provider functions for dependencies built from configuration

func provideSearchProvider(config *conf.Config) (provider.Provider, error) {
	return provider.NewFactory().Create(&config.Search)
}

func provideChatProvider(config *conf.Config) (aitypes.Provider, func(), error) {
	p, err := openai.New(factory.DeepSeek(config.LLM.APIKey,
		factory.WithBaseURL(config.LLM.BaseURL),
		factory.WithModel(config.LLM.Model),
		factory.WithTimeout(config.LLM.Timeout),
	))
	if err != nil {
		return nil, nil, err
	}
	return p, func() { _ = p.Close() }, nil
}

// provideTokenCounter returns nil when the encoding is disabled or cannot be
// loaded; prompt token estimates are then skipped.
func provideTokenCounter(config *conf.Config, log *logger.Logger) biz.TokenCounter {
	if config.LLM.TokenEncoding == "" {
		return nil
	}
	counter, err := biz.NewTiktokenCounter(config.LLM.TokenEncoding)
	if err != nil {
		log.Warn("prompt token estimates disabled", zap.Error(err))
		return nil
	}
	return counter
}

func providePolicy(config *conf.Config) biz.Policy {
	return config.Policy()
}

func provideSummaryOptions(config *conf.Config) biz.SummaryOptions {
	return config.SummaryOptions()
}

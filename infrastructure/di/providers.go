package di

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	domainconfig "feelingmachine-backend/domain/config"
	"feelingmachine-backend/infrastructure/config"
	pkgerrors "feelingmachine-backend/pkg/errors"
)

// ProvideLogger builds the application logger from configuration
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// ProvideDomainConfig builds and checks the domain configuration
func ProvideDomainConfig() (*domainconfig.DomainConfig, error) {
	dc := domainconfig.DefaultDomainConfig()
	if err := dc.Validate(); err != nil {
		return nil, err
	}
	return dc, nil
}

// ProvideErrorHandler builds the HTTP error handler. Debug detail is only
// exposed in development.
func ProvideErrorHandler(logger *zap.Logger, cfg *config.Config) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, cfg.IsDevelopment())
}

// Package logger builds *slog.Logger values with functional options and
// provides attribute constructors shared across the module.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "oszoom"),
//	    logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	)
//	logger.SetAsDefault(log)
//
//	log.Debug("zoom applied", logger.OS(os), logger.Factor(0.8))
//
// Development uses the text handler at debug level; production and staging
// use JSON at info level. Discard returns a logger that drops everything and
// is the default wherever a logger is optional.
package logger

package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/segmentio/analytics-go/v3"

	"github.com/zapdesk/zapdesk-backend/api"
	"github.com/zapdesk/zapdesk-backend/infra"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases"
	"github.com/zapdesk/zapdesk-backend/utils"
)

func RunServer(appVersion string) error {
	// This is where we read the environment variables and set up the configuration for the application.
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             "zapdesk-backend",
		AppVersion:          appVersion,
		Port:                utils.GetRequiredEnv[string]("PORT"),
		ApiUrl:              utils.GetEnv("ZAPDESK_API_URL", ""),
		FrontendUrl:         utils.GetEnv("ZAPDESK_FRONTEND_URL", ""),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		SegmentWriteKey:     utils.GetEnv("SEGMENT_WRITE_KEY", ""),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 10)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           utils.GetEnv("PG_DATABASE", "zapdesk"),
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", 20),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
	evolutionConfig := infra.EvolutionConfiguration{
		BaseUrl:                utils.GetEnv("EVOLUTION_API_URL", ""),
		ApiKey:                 utils.GetEnv("EVOLUTION_API_KEY", ""),
		WebhookCallbackBaseUrl: utils.GetEnv("WEBHOOK_CALLBACK_BASE_URL", ""),
	}
	n8nConfig := infra.N8nConfiguration{
		ChatWebhookUrl: utils.GetEnv("N8N_CHAT_WEBHOOK_URL", ""),
		ApiKey:         utils.GetEnv("N8N_API_KEY", ""),
	}
	serverConfig := struct {
		jwtSigningSecret string
		loggingFormat    string
		sentryDsn        string
		enableTracing    bool
		mediaBucketUrl   string
		connectionLimit  int
	}{
		jwtSigningSecret: utils.GetRequiredEnv[string]("AUTH_JWT_SIGNING_SECRET"),
		loggingFormat:    utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:        utils.GetEnv("SENTRY_DSN", ""),
		enableTracing:    utils.GetEnv("ENABLE_TRACING", false),
		mediaBucketUrl:   utils.GetEnv("MEDIA_BUCKET_URL", ""),
		connectionLimit:  utils.GetEnv("CONNECTION_LIMIT", 1),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env)
	defer sentry.Flush(3 * time.Second)

	telemetryRessources, err := infra.InitTelemetry(infra.TelemetryConfiguration{
		Enabled:         serverConfig.enableTracing,
		ApplicationName: apiConfig.AppName,
	})
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
	}

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	repos := repositories.NewRepositories(
		pool,
		[]byte(serverConfig.jwtSigningSecret),
		repositories.WithN8nConfiguration(n8nConfig),
	)

	uc := usecases.NewUsecases(repos,
		usecases.WithAppName(apiConfig.AppName),
		usecases.WithApiVersion(apiConfig.AppVersion),
		usecases.WithMediaBucketUrl(serverConfig.mediaBucketUrl),
		usecases.WithEvolutionConfiguration(evolutionConfig),
		usecases.WithConnectionLimit(serverConfig.connectionLimit),
	)

	segmentClient := analytics.New(apiConfig.SegmentWriteKey)

	auth := utils.NewAuthentication(uc.NewTokenValidator())

	router := api.InitRouterMiddlewares(ctx, apiConfig, segmentClient, telemetryRessources)
	server := api.NewServer(router, apiConfig, uc, auth)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	segmentClient.Close()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(ctx,
			errors.Wrap(err, "Error while shutting down the server"))
		return err
	}

	return nil
}

package usecases

import (
	"github.com/zapdesk/zapdesk-backend/infra"
	"github.com/zapdesk/zapdesk-backend/repositories"
	"github.com/zapdesk/zapdesk-backend/usecases/executor_factory"
	"github.com/zapdesk/zapdesk-backend/usecases/token"
)

type Usecases struct {
	Repositories    repositories.Repositories
	appName         string
	apiVersion      string
	mediaBucketUrl  string
	evolutionConfig infra.EvolutionConfiguration
	connectionLimit int
}

type Option func(*options)

type options struct {
	appName         string
	apiVersion      string
	mediaBucketUrl  string
	evolutionConfig infra.EvolutionConfiguration
	connectionLimit int
}

func WithAppName(appName string) Option {
	return func(o *options) {
		o.appName = appName
	}
}

func WithApiVersion(apiVersion string) Option {
	return func(o *options) {
		o.apiVersion = apiVersion
	}
}

func WithMediaBucketUrl(bucket string) Option {
	return func(o *options) {
		o.mediaBucketUrl = bucket
	}
}

func WithEvolutionConfiguration(config infra.EvolutionConfiguration) Option {
	return func(o *options) {
		o.evolutionConfig = config
	}
}

func WithConnectionLimit(limit int) Option {
	return func(o *options) {
		o.connectionLimit = limit
	}
}

func NewUsecases(repos repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return Usecases{
		Repositories:    repos,
		appName:         o.appName,
		apiVersion:      o.apiVersion,
		mediaBucketUrl:  o.mediaBucketUrl,
		evolutionConfig: o.evolutionConfig,
		connectionLimit: o.connectionLimit,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTokenValidator() *token.Validator {
	return token.NewValidator(
		usecases.NewExecutorFactory(),
		usecases.Repositories.ZapdeskDbRepository,
		usecases.Repositories.ZapdeskDbRepository,
		usecases.Repositories.AccessTokenRepository,
	)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.ZapdeskDbRepository,
	}
}

// NewInboundWebhookUsecase runs before authentication: webhook deliveries are
// authenticated with the per-instance token, not with user credentials.
func (usecases *Usecases) NewInboundWebhookUsecase() InboundWebhookUsecase {
	return InboundWebhookUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.ZapdeskDbRepository,
		automation:         usecases.Repositories.N8nRepository,
		gatewayRepository:  usecases.Repositories.EvolutionRepository,
		evolutionConfig:    usecases.evolutionConfig,
	}
}

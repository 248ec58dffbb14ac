package repositories

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zapdesk/zapdesk-backend/infra"
)

type Repositories struct {
	ExecutorGetter        ExecutorGetter
	ZapdeskDbRepository   *ZapdeskDbRepository
	AccessTokenRepository *AccessTokenRepository
	EvolutionRepository   *EvolutionRepository
	N8nRepository         *N8nRepository
	BlobRepository        BlobRepository
}

type Option func(*options)

type options struct {
	gatewayHttpClient *http.Client
	n8nConfig         infra.N8nConfiguration
}

func WithGatewayHttpClient(client *http.Client) Option {
	return func(o *options) {
		o.gatewayHttpClient = client
	}
}

func WithN8nConfiguration(config infra.N8nConfiguration) Option {
	return func(o *options) {
		o.n8nConfig = config
	}
}

func NewRepositories(pool *pgxpool.Pool, jwtSigningSecret []byte, opts ...Option) Repositories {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return Repositories{
		ExecutorGetter:        NewExecutorGetter(pool),
		ZapdeskDbRepository:   NewZapdeskDbRepository(),
		AccessTokenRepository: NewAccessTokenRepository(jwtSigningSecret),
		EvolutionRepository:   NewEvolutionRepository(o.gatewayHttpClient),
		N8nRepository:         NewN8nRepository(o.n8nConfig, o.gatewayHttpClient),
		BlobRepository:        NewBlobRepository(),
	}
}

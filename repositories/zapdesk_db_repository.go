package repositories

// ZapdeskDbRepository groups the queries against the application database.
type ZapdeskDbRepository struct{}

func NewZapdeskDbRepository() *ZapdeskDbRepository {
	return &ZapdeskDbRepository{}
}

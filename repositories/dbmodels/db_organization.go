package dbmodels

import (
	"time"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type DBOrganization struct {
	Id        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_ORGANIZATIONS = "orgs"

var SelectOrganizationColumn = utils.ColumnList[DBOrganization]()

func AdaptOrganization(db DBOrganization) (models.Organization, error) {
	return models.Organization{
		Id:        db.Id,
		Name:      db.Name,
		CreatedAt: db.CreatedAt,
	}, nil
}

type DBOrganizationSummary struct {
	DBOrganization
	MembersCount  int `db:"members_count"`
	ChannelsCount int `db:"channels_count"`
	ContactsCount int `db:"contacts_count"`
}

func AdaptOrganizationSummary(db DBOrganizationSummary) (models.OrganizationSummary, error) {
	org, err := AdaptOrganization(db.DBOrganization)
	if err != nil {
		return models.OrganizationSummary{}, err
	}
	return models.OrganizationSummary{
		Organization:  org,
		MembersCount:  db.MembersCount,
		ChannelsCount: db.ChannelsCount,
		ContactsCount: db.ContactsCount,
	}, nil
}

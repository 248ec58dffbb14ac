package models

import "time"

type Organization struct {
	Id        string
	Name      string
	CreatedAt time.Time
}

// OrganizationSummary is the org listing row: the raw organization plus the
// store-side member/channel/contact counts.
type OrganizationSummary struct {
	Organization
	MembersCount  int
	ChannelsCount int
	ContactsCount int
}

type CreateOrganizationInput struct {
	Name string
}

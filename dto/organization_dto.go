package dto

import (
	"time"

	"github.com/zapdesk/zapdesk-backend/models"
)

type APIOrganization struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptOrganizationDto(org models.Organization) APIOrganization {
	return APIOrganization{
		Id:        org.Id,
		Name:      org.Name,
		CreatedAt: org.CreatedAt,
	}
}

type APIOrganizationSummary struct {
	APIOrganization
	MembersCount  int `json:"members_count"`
	ChannelsCount int `json:"channels_count"`
	ContactsCount int `json:"contacts_count"`
}

func AdaptOrganizationSummaryDto(summary models.OrganizationSummary) APIOrganizationSummary {
	return APIOrganizationSummary{
		APIOrganization: AdaptOrganizationDto(summary.Organization),
		MembersCount:    summary.MembersCount,
		ChannelsCount:   summary.ChannelsCount,
		ContactsCount:   summary.ContactsCount,
	}
}

type CreateOrganizationBodyDto struct {
	Name string `json:"name" binding:"required"`
}

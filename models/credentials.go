package models

type IntoCredentials interface {
	IntoCredentials() Credentials
}

type Identity struct {
	UserId     UserId
	Email      string
	ApiKeyId   string
	ApiKeyName string
}

type Credentials struct {
	ActorIdentity  Identity // user or api key, for audit log
	OrganizationId string
	Role           Role
}

func (u User) IntoCredentials() Credentials {
	return Credentials{
		ActorIdentity: Identity{
			UserId: u.UserId,
			Email:  u.Email,
		},
		OrganizationId: u.OrganizationId,
		Role:           u.Role,
	}
}

func (k ApiKey) IntoCredentials() Credentials {
	return Credentials{
		ActorIdentity: Identity{
			ApiKeyId:   k.Id,
			ApiKeyName: k.Description,
		},
		OrganizationId: k.OrganizationId,
		Role:           k.Role,
	}
}

func NewCredentialWithApiKey(organizationId string, role Role, apiKeyName string) Credentials {
	return Credentials{
		ActorIdentity:  Identity{ApiKeyName: apiKeyName},
		OrganizationId: organizationId,
		Role:           role,
	}
}

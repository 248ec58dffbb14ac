package models

type Permission int

const (
	CONVERSATION_READ Permission = iota
	CONVERSATION_ACCEPT
	CONVERSATION_END
	CONVERSATION_END_ANY
	MESSAGE_SEND
	CHANNEL_READ
	QUEUE_READ
	QUEUE_EDIT
	TAG_READ
	TAG_EDIT
	WORKSPACE_READ
	WORKSPACE_EDIT
	WORKSPACE_MEMBERS_READ
	ORGANIZATION_CREATE
	ORGANIZATION_LIST
	MESSAGING_SETTINGS_READ
	MESSAGING_SETTINGS_EDIT
	WEBHOOK_CONFIGURE
	MEDIA_UPLOAD
	AUTOMATION_TRIGGER
	DASHBOARD_READ
)

func (p Permission) String() string {
	switch p {
	case CONVERSATION_READ:
		return "CONVERSATION_READ"
	case CONVERSATION_ACCEPT:
		return "CONVERSATION_ACCEPT"
	case CONVERSATION_END:
		return "CONVERSATION_END"
	case CONVERSATION_END_ANY:
		return "CONVERSATION_END_ANY"
	case MESSAGE_SEND:
		return "MESSAGE_SEND"
	case CHANNEL_READ:
		return "CHANNEL_READ"
	case QUEUE_READ:
		return "QUEUE_READ"
	case QUEUE_EDIT:
		return "QUEUE_EDIT"
	case TAG_READ:
		return "TAG_READ"
	case TAG_EDIT:
		return "TAG_EDIT"
	case WORKSPACE_READ:
		return "WORKSPACE_READ"
	case WORKSPACE_EDIT:
		return "WORKSPACE_EDIT"
	case WORKSPACE_MEMBERS_READ:
		return "WORKSPACE_MEMBERS_READ"
	case ORGANIZATION_CREATE:
		return "ORGANIZATION_CREATE"
	case ORGANIZATION_LIST:
		return "ORGANIZATION_LIST"
	case MESSAGING_SETTINGS_READ:
		return "MESSAGING_SETTINGS_READ"
	case MESSAGING_SETTINGS_EDIT:
		return "MESSAGING_SETTINGS_EDIT"
	case WEBHOOK_CONFIGURE:
		return "WEBHOOK_CONFIGURE"
	case MEDIA_UPLOAD:
		return "MEDIA_UPLOAD"
	case AUTOMATION_TRIGGER:
		return "AUTOMATION_TRIGGER"
	case DASHBOARD_READ:
		return "DASHBOARD_READ"
	default:
		return "UNKNOWN_PERMISSION"
	}
}

var agentPermissions = []Permission{
	CONVERSATION_READ,
	CONVERSATION_ACCEPT,
	CONVERSATION_END,
	MESSAGE_SEND,
	CHANNEL_READ,
	QUEUE_READ,
	TAG_READ,
	WORKSPACE_READ,
	WORKSPACE_MEMBERS_READ,
	DASHBOARD_READ,
}

var supervisorPermissions = append(append([]Permission{}, agentPermissions...),
	CONVERSATION_END_ANY,
	QUEUE_EDIT,
	TAG_EDIT,
	MESSAGING_SETTINGS_READ,
)

var adminPermissions = append(append([]Permission{}, supervisorPermissions...),
	WORKSPACE_EDIT,
	ORGANIZATION_CREATE,
	ORGANIZATION_LIST,
	MESSAGING_SETTINGS_EDIT,
	WEBHOOK_CONFIGURE,
	MEDIA_UPLOAD,
)

var ROLES_PERMISSIONS = map[Role][]Permission{
	AGENT:      agentPermissions,
	SUPERVISOR: supervisorPermissions,
	ADMIN:      adminPermissions,
	API_CLIENT: {
		CONVERSATION_READ,
		MESSAGE_SEND,
		AUTOMATION_TRIGGER,
		WEBHOOK_CONFIGURE,
	},
	PLATFORM_ADMIN: append(append([]Permission{}, adminPermissions...), AUTOMATION_TRIGGER),
}

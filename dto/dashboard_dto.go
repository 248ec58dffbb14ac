package dto

import "github.com/zapdesk/zapdesk-backend/models"

type APIDashboardStats struct {
	PendingConversations int `json:"pending_conversations"`
	ActiveConversations  int `json:"active_conversations"`
	ClosedConversations  int `json:"closed_conversations"`
	ActiveConnections    int `json:"active_connections"`
	Queues               int `json:"queues"`
	MessagesToday        int `json:"messages_today"`
}

func AdaptDashboardStatsDto(stats models.DashboardStats) APIDashboardStats {
	return APIDashboardStats{
		PendingConversations: stats.PendingConversations,
		ActiveConversations:  stats.ActiveConversations,
		ClosedConversations:  stats.ClosedConversations,
		ActiveConnections:    stats.ActiveConnections,
		Queues:               stats.Queues,
		MessagesToday:        stats.MessagesToday,
	}
}

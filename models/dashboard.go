package models

// DashboardStats carries the workspace counters, computed store-side in a
// single aggregate query.
type DashboardStats struct {
	PendingConversations int
	ActiveConversations  int
	ClosedConversations  int
	ActiveConnections    int
	Queues               int
	MessagesToday        int
}

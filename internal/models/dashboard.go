package models

// DashboardStats is recomputed across all collections on every request.
type DashboardStats struct {
	ActivePolicies int     `json:"activePolicies"`
	OpenClaims     int     `json:"openClaims"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	NewLeads       int     `json:"newLeads"`
	TotalClients   int     `json:"totalClients"`
	PendingClaims  int     `json:"pendingClaims"`
}

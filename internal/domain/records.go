package domain

import "time"

// DashboardMetric is a single tenant-scoped dashboard row.
type DashboardMetric struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Metric    string    `json:"metric"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// AdminUser is the user record joined onto a tenant admin row.
type AdminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TenantAdmin is a tenant administrator with the joined user record.
type TenantAdmin struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Role      string    `json:"role"`
	ElectedAt time.Time `json:"elected_at"`
	User      AdminUser `json:"user"`
}

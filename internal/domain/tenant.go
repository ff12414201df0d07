package domain

import "time"

// OnboardingStatus tracks where a tenant is in the external provisioning
// pipeline. Tenant records are created by that pipeline and are read-only
// to the gateway.
type OnboardingStatus string

const (
	OnboardingPending    OnboardingStatus = "pending"
	OnboardingEnqueued   OnboardingStatus = "enqueued"
	OnboardingProcessing OnboardingStatus = "processing"
	OnboardingSuccess    OnboardingStatus = "success"
	OnboardingFailed     OnboardingStatus = "failed"
)

func ValidOnboardingStatus(s string) bool {
	switch OnboardingStatus(s) {
	case OnboardingPending, OnboardingEnqueued, OnboardingProcessing, OnboardingSuccess, OnboardingFailed:
		return true
	}
	return false
}

// Tenant is an organization served by the gateway. The slug is the public
// identity (subdomain label); ID is the stable internal key used for row
// scoping.
type Tenant struct {
	ID               string           `json:"id"`
	Slug             string           `json:"slug"`
	Name             string           `json:"name"`
	Region           string           `json:"region"`
	OnboardingStatus OnboardingStatus `json:"onboarding_status"`
	OnboardingError  *string          `json:"onboarding_error"`
	CreatedAt        time.Time        `json:"created_at"`
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты удаления учетной записи
const (
	ResultSuccess = "success"
	ResultFailed  = "failed"
)

var (
	// AccountDeletionTotal tracks account deletions by result (success or failed)
	AccountDeletionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "issuetracker_account_deletions_total",
			Help: "Total number of account deletions by result (success or failed)",
		},
		[]string{"result"},
	)

	// CascadedOrganizationTotal tracks organizations removed while deleting their owner's account
	CascadedOrganizationTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "issuetracker_cascaded_organizations_total",
			Help: "Total number of organizations deleted as part of an account deletion",
		},
	)

	// LoginTotal tracks the total number of successful logins
	LoginTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "issuetracker_logins_total",
			Help: "Total number of successful user logins",
		},
	)
)

// RecordAccountDeletion records an account deletion with the given result
func RecordAccountDeletion(result string) {
	AccountDeletionTotal.WithLabelValues(result).Inc()
}

// RecordCascadedOrganization records an organization deleted by the account cascade
func RecordCascadedOrganization() {
	CascadedOrganizationTotal.Inc()
}

// RecordLogin records a user login
func RecordLogin() {
	LoginTotal.Inc()
}

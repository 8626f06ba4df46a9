package service

// AccessMetrics records authorization outcomes.
type AccessMetrics interface {
	// ObserveGuardDecision counts one route guard verdict.
	ObserveGuardDecision(requirement, reason string, allowed bool)

	// ObserveClassifierFailure counts a capability lookup that failed and was treated as negative.
	ObserveClassifierFailure(check string)
}

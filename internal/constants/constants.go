package constants

// Context keys set by middleware and read by handlers
const (
	ContextKeyUserID  = "user_id"
	ContextKeyClaims  = "claims"
	ContextKeyProject = "project"
	ContextKeyMember  = "project_member"
	ContextKeyTask    = "task"
)

// Validation limits
const (
	MinMoodValue = 1
	MaxMoodValue = 5
)

// Pagination defaults
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Workload defaults
const (
	// DefaultHoursPerTask seeds estimated_hours when a workload row is first
	// materialized for a user/project pair.
	DefaultHoursPerTask = 5
)

// Tunnel generation defaults
const (
	DefaultTunnelThreshold = 0.7
)

package ports

import "context"

// RiskAssessor scores a transaction attempt from 0 (clean) to 100.
// Scores at or above the configured block threshold stop the transfer.
type RiskAssessor interface {
	AssessRisk(ctx context.Context, userID string, amount float64, beneficiary string) (score int, factors []string)
	ReportSuspiciousActivity(ctx context.Context, userID, activityType string, details map[string]any)
}

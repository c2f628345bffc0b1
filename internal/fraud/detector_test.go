package fraud

import (
	"context"
	"testing"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestDetector(at time.Time) *Detector {
	d := NewDetector(nil, logger.NewZapLogger(zap.NewNop().Sugar()))
	d.now = func() time.Time { return at }
	return d
}

func midday() time.Time {
	return time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
}

func TestAssessRiskCleanTransfer(t *testing.T) {
	t.Parallel()

	d := newTestDetector(midday())
	ctx := context.Background()

	// First transfer to a beneficiary always scores the novelty points.
	score, factors := d.AssessRisk(ctx, "user-1", 250.50, "Alice Dupont")
	assert.Equal(t, 20, score)
	assert.Contains(t, factors, "New beneficiary")

	// Repeat transfer to the same person is clean.
	score, factors = d.AssessRisk(ctx, "user-1", 250.50, "alice dupont")
	assert.Equal(t, 0, score)
	assert.Empty(t, factors)
}

func TestAssessRiskHighAmount(t *testing.T) {
	t.Parallel()

	d := newTestDetector(midday())
	ctx := context.Background()

	d.AssessRisk(ctx, "user-2", 1, "Bob")

	score, factors := d.AssessRisk(ctx, "user-2", 1500.50, "Bob")
	assert.Equal(t, 30, score)
	assert.Contains(t, factors, "High amount: 1500.5")
}

func TestAssessRiskRoundAmount(t *testing.T) {
	t.Parallel()

	current := midday()
	d := newTestDetector(current)
	d.now = func() time.Time { return current }
	ctx := context.Background()

	d.AssessRisk(ctx, "user-3", 1, "Bob")

	// Space the calls out so the velocity factor stays quiet.
	current = current.Add(11 * time.Minute)
	score, factors := d.AssessRisk(ctx, "user-3", 500, "Bob")
	assert.Equal(t, 10, score)
	assert.Contains(t, factors, "Round amount")

	// Small round numbers are everyday transfers.
	current = current.Add(11 * time.Minute)
	score, _ = d.AssessRisk(ctx, "user-3", 200, "Bob")
	assert.Equal(t, 0, score)
}

func TestAssessRiskVelocity(t *testing.T) {
	t.Parallel()

	d := newTestDetector(midday())
	ctx := context.Background()

	score, _ := d.AssessRisk(ctx, "user-4", 250.50, "Bob")
	assert.Equal(t, 20, score) // new beneficiary only

	score, _ = d.AssessRisk(ctx, "user-4", 250.50, "Bob")
	assert.Equal(t, 0, score) // one prior attempt in window

	score, factors := d.AssessRisk(ctx, "user-4", 250.50, "Bob")
	assert.Equal(t, 20, score)
	assert.Contains(t, factors, "High velocity: 20 points")

	score, factors = d.AssessRisk(ctx, "user-4", 250.50, "Bob")
	assert.Equal(t, 40, score)
	assert.Contains(t, factors, "High velocity: 40 points")
}

func TestAssessRiskVelocityWindowSlides(t *testing.T) {
	t.Parallel()

	current := midday()
	d := newTestDetector(current)
	d.now = func() time.Time { return current }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d.AssessRisk(ctx, "user-5", 250.50, "Bob")
	}

	// Eleven minutes later the burst is outside the window.
	current = current.Add(11 * time.Minute)
	score, _ := d.AssessRisk(ctx, "user-5", 250.50, "Bob")
	assert.Equal(t, 0, score)
}

func TestAssessRiskNightHours(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hour int
		want int
	}{
		{"deep night", 2, 15},
		{"late evening", 23, 10},
		{"midday", 12, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			current := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
			d := newTestDetector(current)
			d.now = func() time.Time { return current }
			ctx := context.Background()

			d.AssessRisk(ctx, "user-6", 1, "Bob")

			current = time.Date(2025, 6, 3, tc.hour, 0, 0, 0, time.UTC)
			score, _ := d.AssessRisk(ctx, "user-6", 250.50, "Bob")
			assert.Equal(t, tc.want, score)
		})
	}
}

func TestAssessRiskCapsAtHundred(t *testing.T) {
	t.Parallel()

	d := newTestDetector(time.Date(2025, 6, 2, 2, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d.AssessRisk(ctx, "user-7", 250.50, "Bob")
	}

	// High amount + round + new beneficiary + night + velocity > 100.
	score, _ := d.AssessRisk(ctx, "user-7", 2000, "Somebody Else")
	assert.Equal(t, 100, score)
}

func TestReportSuspiciousActivityWithoutRedis(t *testing.T) {
	t.Parallel()

	d := newTestDetector(midday())
	d.ReportSuspiciousActivity(context.Background(), "user-8", "blocked_transfer", map[string]any{
		"amount":     2000.0,
		"risk_score": 100,
	})
	assert.Equal(t, 1, d.alerts["user-8"])
}

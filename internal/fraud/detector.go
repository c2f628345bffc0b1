package fraud

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	highAmountThreshold = 1000.0
	velocityLimit       = 3
	velocityWindow      = 10 * time.Minute

	velocityHighPoints   = 40
	velocityMediumPoints = 20
	nightHighPoints      = 15
	nightMediumPoints    = 10
	roundAmountMin       = 500.0
	roundAmountPoints    = 10
	newBeneficiaryPoints = 20
	highAmountPoints     = 30

	velocityExpiry    = time.Hour
	beneficiaryExpiry = 90 * 24 * time.Hour
	alertExpiry       = 30 * 24 * time.Hour
)

// Detector scores transfer attempts with rule-based checks: amount,
// velocity, beneficiary novelty, time of day and round numbers.
// Counters live in Redis; without a Redis client they are tracked
// in-process for the lifetime of the service.
type Detector struct {
	rdb *redis.Client
	log *logger.ZapLogger
	now func() time.Time

	mu            sync.Mutex
	velocity      map[string][]time.Time
	beneficiaries map[string]map[string]struct{}
	alerts        map[string]int
}

func NewDetector(rdb *redis.Client, log *logger.ZapLogger) *Detector {
	return &Detector{
		rdb:           rdb,
		log:           log,
		now:           time.Now,
		velocity:      map[string][]time.Time{},
		beneficiaries: map[string]map[string]struct{}{},
		alerts:        map[string]int{},
	}
}

// AssessRisk returns a 0-100 score plus the factors that contributed.
// The current attempt is recorded after scoring, so back-to-back
// transfers raise the velocity factor for the next one.
func (d *Detector) AssessRisk(ctx context.Context, userID string, amount float64, beneficiary string) (int, []string) {
	score := 0
	var factors []string

	if amount > highAmountThreshold {
		score += highAmountPoints
		factors = append(factors, fmt.Sprintf("High amount: %v", amount))
	}

	if pts := d.checkVelocity(ctx, userID); pts > 0 {
		score += pts
		factors = append(factors, fmt.Sprintf("High velocity: %d points", pts))
	}

	if d.isNewBeneficiary(ctx, userID, beneficiary) {
		score += newBeneficiaryPoints
		factors = append(factors, "New beneficiary")
	}

	if pts := d.nightPoints(); pts > 0 {
		score += pts
		factors = append(factors, "Unusual time")
	}

	if math.Mod(amount, 100) == 0 && amount >= roundAmountMin {
		score += roundAmountPoints
		factors = append(factors, "Round amount")
	}

	if score > 100 {
		score = 100
	}

	d.recordAttempt(ctx, userID)
	return score, factors
}

// ReportSuspiciousActivity keeps an alert trail per user for review.
func (d *Detector) ReportSuspiciousActivity(ctx context.Context, userID, activityType string, details map[string]any) {
	d.log.Log(logger.LogEntry{
		Level:   "warn",
		Message: fmt.Sprintf("suspicious activity: user=%s type=%s", userID, activityType),
		Service: "fraud",
	})

	if d.rdb == nil {
		d.mu.Lock()
		d.alerts[userID]++
		d.mu.Unlock()
		return
	}

	alert, err := json.Marshal(map[string]any{
		"type":      activityType,
		"details":   details,
		"timestamp": d.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	key := alertsKey(userID)
	if err := d.rdb.RPush(ctx, key, alert).Err(); err != nil {
		d.warnRedis("failed to record fraud alert", err)
		return
	}
	d.rdb.Expire(ctx, key, alertExpiry)
}

func (d *Detector) checkVelocity(ctx context.Context, userID string) int {
	count := d.attemptsInWindow(ctx, userID)

	if count >= velocityLimit {
		d.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: fmt.Sprintf("high transfer velocity: user=%s count=%d", userID, count),
			Service: "fraud",
		})
		return velocityHighPoints
	}
	if count >= 2 {
		return velocityMediumPoints
	}
	return 0
}

func (d *Detector) attemptsInWindow(ctx context.Context, userID string) int {
	now := d.now()
	windowStart := now.Add(-velocityWindow)

	if d.rdb == nil {
		d.mu.Lock()
		defer d.mu.Unlock()
		count := 0
		for _, ts := range d.velocity[userID] {
			if !ts.Before(windowStart) && !ts.After(now) {
				count++
			}
		}
		return count
	}

	count, err := d.rdb.ZCount(ctx, velocityKey(userID),
		formatScore(windowStart), formatScore(now)).Result()
	if err != nil {
		d.warnRedis("velocity check failed", err)
		return 0
	}
	return int(count)
}

func (d *Detector) recordAttempt(ctx context.Context, userID string) {
	now := d.now()

	if d.rdb == nil {
		d.mu.Lock()
		defer d.mu.Unlock()
		kept := d.velocity[userID][:0]
		for _, ts := range d.velocity[userID] {
			if now.Sub(ts) < velocityExpiry {
				kept = append(kept, ts)
			}
		}
		d.velocity[userID] = append(kept, now)
		return
	}

	key := velocityKey(userID)
	err := d.rdb.ZAdd(ctx, key, redis.Z{
		Score:  scoreOf(now),
		Member: strconv.FormatInt(now.UnixNano(), 10),
	}).Err()
	if err != nil {
		d.warnRedis("failed to record transfer attempt", err)
		return
	}
	d.rdb.Expire(ctx, key, velocityExpiry)
}

func (d *Detector) isNewBeneficiary(ctx context.Context, userID, beneficiary string) bool {
	sum := md5.Sum([]byte(strings.ToLower(beneficiary)))
	hash := hex.EncodeToString(sum[:])

	if d.rdb == nil {
		d.mu.Lock()
		defer d.mu.Unlock()
		seen, ok := d.beneficiaries[userID]
		if !ok {
			seen = map[string]struct{}{}
			d.beneficiaries[userID] = seen
		}
		if _, known := seen[hash]; known {
			return false
		}
		seen[hash] = struct{}{}
		return true
	}

	key := beneficiariesKey(userID)
	known, err := d.rdb.SIsMember(ctx, key, hash).Result()
	if err != nil {
		d.warnRedis("beneficiary check failed", err)
		return false
	}
	if known {
		return false
	}
	if err := d.rdb.SAdd(ctx, key, hash).Err(); err != nil {
		d.warnRedis("failed to record beneficiary", err)
		return true
	}
	d.rdb.Expire(ctx, key, beneficiaryExpiry)
	return true
}

func (d *Detector) nightPoints() int {
	hour := d.now().UTC().Hour()
	if hour < 5 {
		return nightHighPoints
	}
	if hour >= 22 {
		return nightMediumPoints
	}
	return 0
}

func (d *Detector) warnRedis(msg string, err error) {
	d.log.Log(logger.LogEntry{
		Level:   "warn",
		Message: msg,
		Service: "fraud",
		Error:   err,
	})
}

func velocityKey(userID string) string      { return "fraud:velocity:" + userID }
func beneficiariesKey(userID string) string { return "fraud:beneficiaries:" + userID }
func alertsKey(userID string) string        { return "fraud:alerts:" + userID }

func scoreOf(ts time.Time) float64 { return float64(ts.UnixNano()) / float64(time.Second) }

func formatScore(ts time.Time) string {
	return strconv.FormatFloat(scoreOf(ts), 'f', -1, 64)
}

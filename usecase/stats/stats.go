package stats

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/pkg/clock"
	"github.com/fitcall/backend/pkg/datebucket"
	"github.com/fitcall/backend/repository"
)

const leaderboardSize = 10

// daysPerYear keeps ages comparable with historical data; calendar-exact age
// would shift cohort boundaries.
const daysPerYear = 365.25

type UseCase struct {
	calls  repository.CallRepository
	users  repository.UserRepository
	clock  clock.Clock
	logger *zap.Logger
}

func New(calls repository.CallRepository, users repository.UserRepository, clk clock.Clock, logger *zap.Logger) *UseCase {
	if clk == nil {
		clk = clock.System()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		calls:  calls,
		users:  users,
		clock:  clk,
		logger: logger,
	}
}

// UserStats reports the user's completed calls bucketed into the current
// month and year, with a per-category breakdown of the yearly subset.
func (uc *UseCase) UserStats(ctx context.Context, username string) (*domain.UserStats, error) {
	if username == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "username is required")
	}

	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	completed, err := uc.calls.List(ctx, repository.CallFilter{
		UserID: user.ID,
		Status: domain.CallStatusCompleted,
	})
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	monthly, yearly := countBuckets(completed, now)

	// Group the yearly-eligible subset by category; categories without a
	// yearly-eligible record never show up.
	type group struct {
		monthly int
		yearly  int
	}
	groups := make(map[string]*group)
	var order []string
	for _, call := range completed {
		parsed, ok := datebucket.Parse(call.CallDate)
		if !ok || !datebucket.InYear(parsed, now) {
			continue
		}
		g, exists := groups[call.CallName]
		if !exists {
			g = &group{}
			groups[call.CallName] = g
			order = append(order, call.CallName)
		}
		g.yearly++
		if parsed.Month() == now.Month() {
			g.monthly++
		}
	}

	categories := make([]domain.CategoryStats, 0, len(order))
	for _, name := range order {
		categories = append(categories, domain.CategoryStats{
			Category:         name,
			MonthlyCompleted: groups[name].monthly,
			YearlyCompleted:  groups[name].yearly,
		})
	}

	return &domain.UserStats{
		Username:         user.Username,
		MonthlyCompleted: monthly,
		YearlyCompleted:  yearly,
		CategoriesStats:  categories,
	}, nil
}

// GlobalStats ranks the ten users with the most completed calls and reports
// system-wide monthly and yearly completion totals. The totals cover every
// user's records, not only the displayed entries.
func (uc *UseCase) GlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	completed, err := uc.calls.List(ctx, repository.CallFilter{
		Status: domain.CallStatusCompleted,
	})
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	counts := make(map[int64]int)
	byUser := make(map[int64][]domain.Call)
	for _, call := range completed {
		counts[call.UserID]++
		byUser[call.UserID] = append(byUser[call.UserID], call)
	}

	ranked := make([]int64, 0, len(counts))
	for userID := range counts {
		ranked = append(ranked, userID)
	}
	// Ties break by ascending user id so the leaderboard is deterministic.
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > leaderboardSize {
		ranked = ranked[:leaderboardSize]
	}

	users, err := uc.users.GetByIDs(ctx, ranked)
	if err != nil {
		return nil, err
	}
	usernames := make(map[int64]string, len(users))
	for _, user := range users {
		usernames[user.ID] = user.Username
	}

	entries := make([]domain.LeaderboardEntry, 0, len(ranked))
	for _, userID := range ranked {
		username, ok := usernames[userID]
		if !ok {
			// A leaderboard row without a user record should not sink the
			// whole report.
			username = fmt.Sprintf("User#%d", userID)
		}
		entries = append(entries, domain.LeaderboardEntry{
			Username:       username,
			CompletedCalls: counts[userID],
			Categories:     yearlyCategories(byUser[userID], now),
		})
	}

	totalMonthly, totalYearly := countBuckets(completed, now)

	return &domain.GlobalStats{
		TotalMonthlyCompleted: totalMonthly,
		TotalYearlyCompleted:  totalYearly,
		TopUsers:              entries,
	}, nil
}

// ComparisonStats contrasts the user's current-month completions against the
// average of their 5-year age cohort and against all users.
func (uc *UseCase) ComparisonStats(ctx context.Context, username string) (*domain.ComparisonStats, error) {
	if username == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "username is required")
	}

	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	userCompleted, err := uc.calls.List(ctx, repository.CallFilter{
		UserID: user.ID,
		Status: domain.CallStatusCompleted,
	})
	if err != nil {
		return nil, err
	}
	userMonthly, _ := countBuckets(userCompleted, now)

	age := ageYears(user.Birthdate, now)
	groupStart := (age / 5) * 5
	groupEnd := groupStart + 4

	allUsers, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}

	var cohortIDs []int64
	for _, u := range allUsers {
		a := ageYears(u.Birthdate, now)
		if a >= groupStart && a <= groupEnd {
			cohortIDs = append(cohortIDs, u.ID)
		}
	}

	var cohortAverage float64
	if len(cohortIDs) > 0 {
		cohortCompleted, err := uc.calls.List(ctx, repository.CallFilter{
			UserIDs: cohortIDs,
			Status:  domain.CallStatusCompleted,
		})
		if err != nil {
			return nil, err
		}
		cohortMonthly, _ := countBuckets(cohortCompleted, now)
		cohortAverage = float64(cohortMonthly) / float64(len(cohortIDs))
	}

	var globalAverage float64
	if len(allUsers) > 0 {
		allCompleted, err := uc.calls.List(ctx, repository.CallFilter{
			Status: domain.CallStatusCompleted,
		})
		if err != nil {
			return nil, err
		}
		allMonthly, _ := countBuckets(allCompleted, now)
		globalAverage = float64(allMonthly) / float64(len(allUsers))
	}

	return &domain.ComparisonStats{
		Username:               user.Username,
		UserMonthlyCompleted:   userMonthly,
		AgeGroupStart:          groupStart,
		AgeGroupEnd:            groupEnd,
		AgeGroupAverageMonthly: round2(cohortAverage),
		AllAverageMonthly:      round2(globalAverage),
	}, nil
}

// countBuckets counts the calls falling in the current month and the current
// year. The two counts are independent; unparsable dates contribute to
// neither.
func countBuckets(calls []domain.Call, now time.Time) (monthly, yearly int) {
	for _, call := range calls {
		parsed, ok := datebucket.Parse(call.CallDate)
		if !ok {
			continue
		}
		if datebucket.InMonth(parsed, now) {
			monthly++
		}
		if datebucket.InYear(parsed, now) {
			yearly++
		}
	}
	return monthly, yearly
}

func yearlyCategories(calls []domain.Call, now time.Time) []domain.LeaderboardCategory {
	counts := make(map[string]int)
	var order []string
	for _, call := range calls {
		parsed, ok := datebucket.Parse(call.CallDate)
		if !ok || !datebucket.InYear(parsed, now) {
			continue
		}
		if _, seen := counts[call.CallName]; !seen {
			order = append(order, call.CallName)
		}
		counts[call.CallName]++
	}

	categories := make([]domain.LeaderboardCategory, 0, len(order))
	for _, name := range order {
		categories = append(categories, domain.LeaderboardCategory{
			Category:       name,
			CompletedCalls: counts[name],
		})
	}
	return categories
}

// ageYears approximates age in whole years with a 365.25-day year. Absent or
// unparsable birthdates yield 0, which lands those users in the 0-4 cohort.
func ageYears(birthdate string, now time.Time) int {
	birth, ok := datebucket.Parse(birthdate)
	if !ok {
		return 0
	}
	days := now.Sub(birth).Hours() / 24
	return int(math.Floor(days / daysPerYear))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

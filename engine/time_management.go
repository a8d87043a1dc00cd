package engine

import "time"

// TimeHandler tracks the wall-clock budget of one top-level search.
type TimeHandler struct {
	timeForMove time.Time
	budget      time.Duration
}

// BudgetFor returns the budget for a search to target plies: deeper targets
// get proportionally more time.
func BudgetFor(target int, cfg Config) time.Duration {
	ms := cfg.BaseBudgetMs + cfg.DepthBudgetMs*Max(target, 0)
	return time.Duration(ms) * time.Millisecond
}

func (th *TimeHandler) StartTime(target int, cfg Config) {
	th.timeForMove = time.Now()
	th.budget = BudgetFor(target, cfg)
}

func (th *TimeHandler) Elapsed() time.Duration {
	return time.Since(th.timeForMove)
}

// TimeStatus reports whether the budget is spent.
func (th *TimeHandler) TimeStatus() bool {
	return th.Elapsed() >= th.budget
}

package engine

import (
	"time"

	"github.com/balkashynov/wrkday/internal/clock"
	"github.com/balkashynov/wrkday/internal/models"
)

// ApplyLeaveRequest holds the data needed to apply for leave
type ApplyLeaveRequest struct {
	Category         models.LeaveCategory
	StartDate        time.Time
	EndDate          time.Time
	HalfDay          bool
	Reason           string
	EmergencyContact string
}

// ComputeRequestedDays returns the number of leave days a request would
// consume: a flat 0.5 for half-day requests regardless of the date
// range, the inclusive day span otherwise.
func ComputeRequestedDays(start, end time.Time, halfDay bool) (float64, error) {
	span, err := clock.InclusiveDaySpan(start, end)
	if err != nil {
		return 0, errRange("end date is before start date")
	}
	if halfDay {
		return 0.5, nil
	}
	return float64(span), nil
}

// ApplyLeave validates and creates a pending leave request. The balance
// is only checked here, not debited; debiting happens on approval so
// several pending requests can compete for the same balance.
func (e *Engine) ApplyLeave(req ApplyLeaveRequest) (*models.LeaveRequest, error) {
	if req.Category == "" {
		return nil, errInvalid("leave category is required")
	}
	if req.Reason == "" {
		return nil, errInvalid("reason is required")
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, errInvalid("start and end dates are required")
	}

	bal := e.balanceFor(req.Category)
	if bal == nil {
		return nil, errInvalid("unknown leave category '%s'", req.Category)
	}

	days, err := ComputeRequestedDays(req.StartDate, req.EndDate, req.HalfDay)
	if err != nil {
		return nil, err
	}

	if days > bal.Remaining() {
		return nil, errInsufficient(bal.Remaining())
	}

	e.state.Leaves = append(e.state.Leaves, models.LeaveRequest{
		ID:               nextID(e.state.Leaves, func(l models.LeaveRequest) uint { return l.ID }),
		CreatedAt:        e.clock.Now(),
		Category:         req.Category,
		StartDate:        clock.DayOf(req.StartDate),
		EndDate:          clock.DayOf(req.EndDate),
		HalfDay:          req.HalfDay,
		Reason:           req.Reason,
		EmergencyContact: req.EmergencyContact,
		Days:             days,
		Status:           models.LeavePending,
	})
	leave := &e.state.Leaves[len(e.state.Leaves)-1]

	e.persist()
	if e.notifier != nil {
		e.notifier.LeaveSubmitted(leave.Category, leave.Days)
	}
	return leave, nil
}

// Approve transitions a pending request to approved and debits the
// category balance in the same step. The availability check from apply
// time is repeated here, since other requests may have been approved
// against the same balance in between.
func (e *Engine) Approve(requestID uint) (*models.LeaveRequest, error) {
	leave, err := e.pendingLeave(requestID)
	if err != nil {
		return nil, err
	}

	bal := e.balanceFor(leave.Category)
	if bal == nil {
		return nil, errInvalid("unknown leave category '%s'", leave.Category)
	}
	if leave.Days > bal.Remaining() {
		return nil, errInsufficient(bal.Remaining())
	}

	leave.Status = models.LeaveApproved
	bal.UsedDays += leave.Days

	e.persist()
	return leave, nil
}

// Reject transitions a pending request to rejected. No balance effect.
func (e *Engine) Reject(requestID uint) (*models.LeaveRequest, error) {
	leave, err := e.pendingLeave(requestID)
	if err != nil {
		return nil, err
	}

	leave.Status = models.LeaveRejected
	e.persist()
	return leave, nil
}

// CancelLeave withdraws a request that is still pending. Nothing was
// debited yet, so there is no balance effect. Cancelling an approved
// leave is not supported.
func (e *Engine) CancelLeave(requestID uint) (*models.LeaveRequest, error) {
	leave, err := e.pendingLeave(requestID)
	if err != nil {
		return nil, err
	}

	leave.Status = models.LeaveCancelled
	e.persist()
	return leave, nil
}

// LeaveBalances returns the per-category ledger, keyed by category.
func (e *Engine) LeaveBalances() map[models.LeaveCategory]models.LeaveBalance {
	out := make(map[models.LeaveCategory]models.LeaveBalance, len(e.state.Balances))
	for _, bal := range e.state.Balances {
		out[bal.Category] = bal
	}
	return out
}

// ListLeaves returns leave requests, optionally filtered by status.
// Pass "" for no filter.
func (e *Engine) ListLeaves(status models.LeaveStatus) []models.LeaveRequest {
	var out []models.LeaveRequest
	for _, leave := range e.state.Leaves {
		if status != "" && leave.Status != status {
			continue
		}
		out = append(out, leave)
	}
	return out
}

// pendingLeave finds a request by ID and checks it is still pending.
func (e *Engine) pendingLeave(requestID uint) (*models.LeaveRequest, error) {
	for i := range e.state.Leaves {
		if e.state.Leaves[i].ID != requestID {
			continue
		}
		leave := &e.state.Leaves[i]
		if leave.Status.Terminal() {
			return nil, errTransition("leave request #%d is already %s", requestID, leave.Status)
		}
		return leave, nil
	}
	return nil, errNotFound("leave request #%d not found", requestID)
}

// SeedBalances sets the per-category entitlements for a fresh session.
// Existing entries keep their used days; only the totals move. New
// categories start unused.
func (e *Engine) SeedBalances(entitlements map[models.LeaveCategory]float64) error {
	for category, total := range entitlements {
		if total < 0 {
			return errInvalid("entitlement for '%s' must not be negative", category)
		}
		if bal := e.balanceFor(category); bal != nil && total < bal.UsedDays {
			return errInvalid("entitlement for '%s' must cover the %.1f day(s) already used", category, bal.UsedDays)
		}
	}
	for category, total := range entitlements {
		if bal := e.balanceFor(category); bal != nil {
			bal.TotalDays = total
			continue
		}
		e.state.Balances = append(e.state.Balances, models.LeaveBalance{
			ID:        nextID(e.state.Balances, func(b models.LeaveBalance) uint { return b.ID }),
			Category:  category,
			TotalDays: total,
		})
	}
	e.persist()
	return nil
}

// balanceFor finds the ledger entry for a category, nil if absent.
func (e *Engine) balanceFor(category models.LeaveCategory) *models.LeaveBalance {
	for i := range e.state.Balances {
		if e.state.Balances[i].Category == category {
			return &e.state.Balances[i]
		}
	}
	return nil
}

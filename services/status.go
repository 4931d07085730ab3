// Package services holds the cross-entity business rules: the status
// transition table, denormalized-label refresh, and deadline aggregation.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ngo-erp-api/models"
	"ngo-erp-api/store"
)

// Kind identifies an entity collection in the transition table.
type Kind string

const (
	KindBeneficiary  Kind = "beneficiary"
	KindReport       Kind = "report"
	KindWorkPlan     Kind = "work_plan"
	KindSafeguarding Kind = "safeguarding_activity"
	KindRecruitment  Kind = "recruitment"
	KindPayrollRun   Kind = "payroll_run"
)

// Action names a status transition. The same action name maps to different
// status pairs per entity.
type Action string

const (
	ActionVerify        Action = "verify"
	ActionReject        Action = "reject"
	ActionMarkSubmitted Action = "markSubmitted"
	ActionMarkCompleted Action = "markCompleted"
)

// ErrIllegalTransition rejects an action not defined for the record's current
// status, e.g. completing an already-completed activity.
var ErrIllegalTransition = errors.New("illegal status transition")

// transitions is the full table: kind -> current status -> action -> next
// status. Anything absent from the table is an illegal transition.
var transitions = map[Kind]map[string]map[Action]string{
	KindBeneficiary: {
		models.BeneficiaryStatusPending: {
			ActionVerify: models.BeneficiaryStatusVerified,
			ActionReject: models.BeneficiaryStatusRejected,
		},
	},
	KindReport: {
		models.ReportStatusPending: {
			ActionMarkSubmitted: models.ReportStatusSubmitted,
		},
	},
	KindWorkPlan: {
		models.WorkPlanStatusDraft: {
			ActionMarkSubmitted: models.WorkPlanStatusSubmitted,
		},
		models.WorkPlanStatusSubmitted: {
			ActionMarkCompleted: models.WorkPlanStatusCompleted,
		},
	},
	KindSafeguarding: {
		models.SafeguardingStatusPlanned: {
			ActionMarkCompleted: models.SafeguardingStatusCompleted,
		},
	},
	KindRecruitment: {
		models.RecruitmentStatusOpen: {
			ActionMarkCompleted: models.RecruitmentStatusClosed,
		},
		models.RecruitmentStatusInterviewing: {
			ActionMarkCompleted: models.RecruitmentStatusClosed,
		},
		models.RecruitmentStatusOffered: {
			ActionMarkCompleted: models.RecruitmentStatusClosed,
		},
	},
	KindPayrollRun: {
		models.PayrollStatusDraft: {
			ActionMarkSubmitted: models.PayrollStatusSubmitted,
		},
		models.PayrollStatusSubmitted: {
			ActionVerify: models.PayrollStatusApproved,
			ActionReject: models.PayrollStatusDraft,
		},
		models.PayrollStatusApproved: {
			ActionMarkCompleted: models.PayrollStatusPaid,
		},
	},
}

// NextStatus resolves the transition table for one step.
func NextStatus(kind Kind, current string, action Action) (string, error) {
	byStatus, ok := transitions[kind]
	if !ok {
		return "", fmt.Errorf("no transitions defined for %s", kind)
	}
	next, ok := byStatus[current][action]
	if !ok {
		return "", fmt.Errorf("%w: %s %q in status %q", ErrIllegalTransition, kind, action, current)
	}
	return next, nil
}

// StatusService applies named transitions to stored records. Every entry
// point resolves the table first, so an illegal pair never reaches the store.
type StatusService struct {
	stores *store.Stores
	now    func() time.Time
}

func NewStatusService(stores *store.Stores) *StatusService {
	return &StatusService{stores: stores, now: time.Now}
}

func (s *StatusService) VerifyBeneficiary(ctx context.Context, id uint) (*models.Beneficiary, error) {
	return s.transitionBeneficiary(ctx, id, ActionVerify)
}

func (s *StatusService) RejectBeneficiary(ctx context.Context, id uint) (*models.Beneficiary, error) {
	return s.transitionBeneficiary(ctx, id, ActionReject)
}

func (s *StatusService) transitionBeneficiary(ctx context.Context, id uint, action Action) (*models.Beneficiary, error) {
	rec, err := s.stores.Beneficiaries.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := NextStatus(KindBeneficiary, rec.Status, action)
	if err != nil {
		return nil, err
	}
	return s.stores.Beneficiaries.Update(ctx, id, map[string]any{"status": next})
}

// MarkReportSubmitted moves a pending report to submitted and stamps the
// submission time.
func (s *StatusService) MarkReportSubmitted(ctx context.Context, id uint) (*models.Report, error) {
	rec, err := s.stores.Reports.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := NextStatus(KindReport, rec.Status, ActionMarkSubmitted)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return s.stores.Reports.Update(ctx, id, map[string]any{
		"status":       next,
		"submitted_at": &now,
	})
}

func (s *StatusService) MarkWorkPlanSubmitted(ctx context.Context, id uint) (*models.WorkPlan, error) {
	return s.transitionWorkPlan(ctx, id, ActionMarkSubmitted)
}

func (s *StatusService) MarkWorkPlanCompleted(ctx context.Context, id uint) (*models.WorkPlan, error) {
	return s.transitionWorkPlan(ctx, id, ActionMarkCompleted)
}

func (s *StatusService) transitionWorkPlan(ctx context.Context, id uint, action Action) (*models.WorkPlan, error) {
	rec, err := s.stores.WorkPlans.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := NextStatus(KindWorkPlan, rec.Status, action)
	if err != nil {
		return nil, err
	}
	return s.stores.WorkPlans.Update(ctx, id, map[string]any{"status": next})
}

// MarkSafeguardingCompleted completes a planned activity and stamps the
// completion time. Completed activities drop out of deadline aggregation.
func (s *StatusService) MarkSafeguardingCompleted(ctx context.Context, id uint) (*models.SafeguardingActivity, error) {
	rec, err := s.stores.Safeguarding.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := NextStatus(KindSafeguarding, rec.Status, ActionMarkCompleted)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return s.stores.Safeguarding.Update(ctx, id, map[string]any{
		"status":       next,
		"completed_at": &now,
	})
}

// CloseRecruitment closes an open position from any non-terminal status.
func (s *StatusService) CloseRecruitment(ctx context.Context, id uint) (*models.Recruitment, error) {
	rec, err := s.stores.Recruitments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := NextStatus(KindRecruitment, rec.Status, ActionMarkCompleted)
	if err != nil {
		return nil, err
	}
	return s.stores.Recruitments.Update(ctx, id, map[string]any{"status": next})
}

func (s *StatusService) SubmitPayrollRun(ctx context.Context, id uint) (*models.PayrollRun, error) {
	return s.transitionPayroll(ctx, id, ActionMarkSubmitted)
}

// ApprovePayrollRun approves a submitted run and stamps the approval time.
func (s *StatusService) ApprovePayrollRun(ctx context.Context, id uint) (*models.PayrollRun, error) {
	rec, err := s.stores.PayrollRuns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := NextStatus(KindPayrollRun, rec.Status, ActionVerify)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return s.stores.PayrollRuns.Update(ctx, id, map[string]any{
		"status":      next,
		"approved_at": &now,
	})
}

// RejectPayrollRun sends a submitted run back to draft.
func (s *StatusService) RejectPayrollRun(ctx context.Context, id uint) (*models.PayrollRun, error) {
	return s.transitionPayroll(ctx, id, ActionReject)
}

// MarkPayrollRunPaid marks an approved run as paid.
func (s *StatusService) MarkPayrollRunPaid(ctx context.Context, id uint) (*models.PayrollRun, error) {
	return s.transitionPayroll(ctx, id, ActionMarkCompleted)
}

func (s *StatusService) transitionPayroll(ctx context.Context, id uint, action Action) (*models.PayrollRun, error) {
	rec, err := s.stores.PayrollRuns.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := NextStatus(KindPayrollRun, rec.Status, action)
	if err != nil {
		return nil, err
	}
	return s.stores.PayrollRuns.Update(ctx, id, map[string]any{"status": next})
}

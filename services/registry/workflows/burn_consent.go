// Package workflows holds the Temporal workflows that orchestrate the
// two-party burn consent protocol. The workflow tracks a pending burn
// request and resolves it either when the issuer signals acceptance or
// when the consent window elapses.
package workflows

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ghuser/assetforge/pkg/logger"
	"github.com/ghuser/assetforge/services/registry/infrastructure/persistence/postgres"
)

const (
	// BurnAcceptedSignal is sent when the issuer accepts a pending burn
	// request tracked by a BurnConsentWorkflow.
	BurnAcceptedSignal = "burn-accepted"

	// BurnConsentWorkflowIDPrefix namespaces workflow ids so one workflow
	// runs per (holder, item) pair.
	BurnConsentWorkflowIDPrefix = "burn-consent"

	consentResolvedTopic = "registry.burn.consent_resolved"
)

// BurnConsentInput starts a consent workflow for one pending burn request.
type BurnConsentInput struct {
	Requester uuid.UUID     `json:"requester"`
	Holder    uuid.UUID     `json:"holder"`
	ItemID    uuid.UUID     `json:"item_id"`
	Timeout   time.Duration `json:"timeout"`
}

// BurnAcceptedPayload is the body of a BurnAcceptedSignal.
type BurnAcceptedPayload struct {
	AcceptedBy uuid.UUID `json:"accepted_by"`
}

// BurnConsentResult is the terminal state of a consent workflow.
type BurnConsentResult struct {
	Accepted   bool      `json:"accepted"`
	AcceptedBy uuid.UUID `json:"accepted_by,omitempty"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// consentOutcome is what RecordConsentOutcome persists to the audit trail.
type consentOutcome struct {
	Requester  uuid.UUID `json:"requester"`
	Holder     uuid.UUID `json:"holder"`
	ItemID     uuid.UUID `json:"item_id"`
	Accepted   bool      `json:"accepted"`
	AcceptedBy uuid.UUID `json:"accepted_by,omitempty"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// BurnConsentWorkflow waits for the issuer's acceptance of a burn request.
// It blocks on the BurnAcceptedSignal until in.Timeout elapses, then records
// the outcome through an activity so the audit trail reflects abandoned
// requests as well as accepted ones.
func BurnConsentWorkflow(ctx workflow.Context, in BurnConsentInput) (BurnConsentResult, error) {
	log := workflow.GetLogger(ctx)
	log.Info("burn consent workflow started",
		"requester", in.Requester.String(),
		"holder", in.Holder.String(),
		"item_id", in.ItemID.String(),
	)

	timeout := in.Timeout
	if timeout <= 0 {
		timeout = 72 * time.Hour
	}

	var result BurnConsentResult

	acceptCh := workflow.GetSignalChannel(ctx, BurnAcceptedSignal)
	timerCtx, cancelTimer := workflow.WithCancel(ctx)
	timer := workflow.NewTimer(timerCtx, timeout)

	selector := workflow.NewSelector(ctx)
	selector.AddReceive(acceptCh, func(c workflow.ReceiveChannel, _ bool) {
		var payload BurnAcceptedPayload
		c.Receive(ctx, &payload)
		cancelTimer()
		result.Accepted = true
		result.AcceptedBy = payload.AcceptedBy
	})
	selector.AddFuture(timer, func(f workflow.Future) {
		if err := f.Get(ctx, nil); err == nil {
			log.Info("burn consent window elapsed", "item_id", in.ItemID.String())
		}
	})
	selector.Select(ctx)

	result.ResolvedAt = workflow.Now(ctx)

	actCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumAttempts:    5,
		},
	})

	var a *Activities
	if err := workflow.ExecuteActivity(actCtx, a.RecordConsentOutcome, consentOutcome{
		Requester:  in.Requester,
		Holder:     in.Holder,
		ItemID:     in.ItemID,
		Accepted:   result.Accepted,
		AcceptedBy: result.AcceptedBy,
		ResolvedAt: result.ResolvedAt,
	}).Get(ctx, nil); err != nil {
		return result, err
	}

	return result, nil
}

// ConsentRecorder persists resolved consent decisions.
// *postgres.AuditRepository is the production implementation.
type ConsentRecorder interface {
	Record(ctx context.Context, ev *postgres.AuditEvent) error
}

// Activities are the side-effecting operations BurnConsentWorkflow delegates
// to the worker process.
type Activities struct {
	audit ConsentRecorder
	log   logger.Logger
}

// NewActivities wires workflow activities to their infrastructure.
func NewActivities(audit ConsentRecorder, log logger.Logger) *Activities {
	return &Activities{audit: audit, log: log}
}

// RecordConsentOutcome appends the resolved consent decision to the audit
// trail. The event id is derived from the (holder, item) pair and resolution
// time so activity retries stay idempotent.
func (a *Activities) RecordConsentOutcome(ctx context.Context, out consentOutcome) error {
	payload, err := json.Marshal(out)
	if err != nil {
		return err
	}

	eventID := uuid.NewSHA1(out.Holder, append(out.ItemID[:], []byte(out.ResolvedAt.UTC().Format(time.RFC3339Nano))...))

	if err := a.audit.Record(ctx, &postgres.AuditEvent{
		EventID:    eventID,
		Topic:      consentResolvedTopic,
		Payload:    payload,
		OccurredAt: out.ResolvedAt,
	}); err != nil {
		return err
	}

	a.log.InfoContext(ctx, "burn consent outcome recorded",
		"item_id", out.ItemID.String(),
		"accepted", out.Accepted,
	)
	return nil
}

// WorkflowID returns the deterministic workflow id for a pending burn of
// (holder, item). Starting with the same id while a run is open is a no-op,
// matching the ledger's last-requester-wins semantics.
func WorkflowID(holder, itemID uuid.UUID) string {
	return BurnConsentWorkflowIDPrefix + ":" + holder.String() + ":" + itemID.String()
}

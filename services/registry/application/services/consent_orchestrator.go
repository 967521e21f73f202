package services

import (
	"context"
	"time"

	"go.temporal.io/sdk/client"

	"github.com/ghuser/assetforge/pkg/logger"
	pkgworkflows "github.com/ghuser/assetforge/pkg/workflows"
	"github.com/ghuser/assetforge/services/registry/domain/models"
	"github.com/ghuser/assetforge/services/registry/workflows"
)

// ConsentOrchestrator mirrors the ledger's burn request/accept state into
// Temporal so abandoned requests get a durable timeout. Like event
// publishing, orchestration is observational: a Temporal failure is logged
// and never blocks or rolls back the ledger mutation.
type ConsentOrchestrator struct {
	tc        *pkgworkflows.TemporalClient
	taskQueue string
	timeout   time.Duration
	log       logger.Logger
}

// NewConsentOrchestrator returns an orchestrator bound to the given Temporal
// client and task queue.
func NewConsentOrchestrator(tc *pkgworkflows.TemporalClient, taskQueue string, timeout time.Duration, log logger.Logger) *ConsentOrchestrator {
	return &ConsentOrchestrator{tc: tc, taskQueue: taskQueue, timeout: timeout, log: log}
}

// RequestStarted opens (or reuses) the consent workflow for one pending burn
// of (holder, item).
func (o *ConsentOrchestrator) RequestStarted(ctx context.Context, requester, holder models.Principal, id models.ItemID) {
	if o == nil || o.tc == nil {
		return
	}

	_, err := o.tc.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        workflows.WorkflowID(holder, id),
		TaskQueue: o.taskQueue,
	}, workflows.BurnConsentWorkflow, workflows.BurnConsentInput{
		Requester: requester,
		Holder:    holder,
		ItemID:    id,
		Timeout:   o.timeout,
	})
	if err != nil {
		o.log.WarnContext(ctx, "start burn consent workflow failed",
			"item_id", id.String(), "error", err)
	}
}

// Accepted signals the open consent workflow that the holder agreed.
func (o *ConsentOrchestrator) Accepted(ctx context.Context, holder models.Principal, id models.ItemID, acceptedBy models.Principal) {
	if o == nil || o.tc == nil {
		return
	}

	err := o.tc.Client.SignalWorkflow(ctx, workflows.WorkflowID(holder, id), "",
		workflows.BurnAcceptedSignal, workflows.BurnAcceptedPayload{AcceptedBy: acceptedBy})
	if err != nil {
		o.log.WarnContext(ctx, "signal burn consent workflow failed",
			"item_id", id.String(), "error", err)
	}
}

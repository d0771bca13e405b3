package service

import (
	"context"
	"errors"
	"fmt"

	"fulfillment-admin/internal/core/httpclient"
	"fulfillment-admin/internal/core/logger"
	orderdomain "fulfillment-admin/internal/features/orders/domain"
	"fulfillment-admin/internal/features/tracking/domain"
	"fulfillment-admin/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// TrackingView is everything the order detail screen needs for the workflow panel.
type TrackingView struct {
	Order *orderdomain.Order `json:"order"`
	// Tracking is nil when the order has no tracking yet.
	Tracking   *domain.TrackingRecord `json:"tracking"`
	Candidates []domain.Status        `json:"candidates"`
	CanCreate  bool                   `json:"can_create"`
	CanReset   bool                   `json:"can_reset"`
	Busy       bool                   `json:"busy"`
}

// WorkflowService drives the status workflow for the admin console: it
// validates proposals, enforces confirmation and serializes mutations per order.
type WorkflowService struct {
	orders   ports.OrderReader
	gateway  ports.TrackingGateway
	store    ports.TrackingStore
	executor *TransitionExecutor
	resetter *ResetController
	creator  *TrackingCreator
	guard    *mutationGuard
	log      *zap.Logger
}

// NewWorkflowService creates a new WorkflowService.
func NewWorkflowService(orders ports.OrderReader, gateway ports.TrackingGateway, store ports.TrackingStore) *WorkflowService {
	return &WorkflowService{
		orders:   orders,
		gateway:  gateway,
		store:    store,
		executor: NewTransitionExecutor(gateway, store),
		resetter: NewResetController(gateway, store),
		creator:  NewTrackingCreator(gateway, store),
		guard:    newMutationGuard(),
		log:      logger.Named("workflow"),
	}
}

// Load fetches the order and its tracking from the remote service and refreshes
// the stored record. A missing record is reported as a view with CanCreate set.
func (s *WorkflowService) Load(ctx context.Context, orderID string) (*TrackingView, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	rec, err := s.refresh(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return s.view(order, rec), nil
}

// Candidates returns the operator picklist for a status.
func (s *WorkflowService) Candidates(current domain.Status) []domain.Status {
	return domain.RemainingStatuses(current)
}

// Propose validates current -> next without side effects.
func (s *WorkflowService) Propose(ctx context.Context, orderID string, next domain.Status) (domain.Decision, *domain.TrackingRecord, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Decision{}, nil, err
	}

	rec, err := s.current(ctx, orderID)
	if err != nil {
		return domain.Decision{}, nil, err
	}
	if rec == nil {
		return domain.Decision{}, nil, ErrNoTracking
	}

	return domain.Validate(rec.Status, next, orderContext(order), rec), rec, nil
}

// Apply validates next against the stored record and executes it. When the
// decision needs confirmation, confirmed must be true or ErrConfirmationRequired
// is returned together with the decision.
func (s *WorkflowService) Apply(ctx context.Context, orderID string, next domain.Status, confirmed bool) (*domain.TrackingRecord, domain.Decision, error) {
	token, release, err := s.guard.acquire(orderID)
	if err != nil {
		return nil, domain.Decision{}, err
	}
	defer release()

	decision, current, err := s.Propose(ctx, orderID, next)
	if err != nil {
		return nil, decision, err
	}

	if !decision.Valid {
		return nil, decision, decision.Err(current.Status, next)
	}

	if decision.RequiresConfirmation && !confirmed {
		return nil, decision, ErrConfirmationRequired
	}

	rec, err := s.executor.Execute(httpclient.WithRequestID(ctx, token), orderID, current.Status, next, decision)
	if err != nil {
		return nil, decision, err
	}

	s.warnIfLate(ctx, orderID, "apply")
	return rec, decision, nil
}

// Reset reverts the order's tracking unless its status is terminal.
func (s *WorkflowService) Reset(ctx context.Context, orderID string) (*domain.TrackingRecord, error) {
	token, release, err := s.guard.acquire(orderID)
	if err != nil {
		return nil, err
	}
	defer release()

	rec, err := s.current(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNoTracking
	}
	if rec.Status.IsTerminal() {
		return nil, ErrResetNotAllowed
	}

	reset, err := s.resetter.Reset(httpclient.WithRequestID(ctx, token), orderID)
	if err != nil {
		return nil, err
	}

	s.warnIfLate(ctx, orderID, "reset")
	return reset, nil
}

// Create attaches tracking to an order that has none. Blank carrier or
// tracking number is rejected before any remote call.
func (s *WorkflowService) Create(ctx context.Context, req domain.NewTracking) (*domain.TrackingRecord, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	token, release, err := s.guard.acquire(req.OrderID)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := s.current(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTrackingExists
	}

	return s.creator.Create(httpclient.WithRequestID(ctx, token), req)
}

// current returns the stored record, falling back to the remote service.
func (s *WorkflowService) current(ctx context.Context, orderID string) (*domain.TrackingRecord, error) {
	rec, err := s.store.Get(ctx, orderID)
	if err != nil {
		s.log.Warn("Tracking store read failed, refetching", zap.String("order_id", orderID), zap.Error(err))
	}
	if rec != nil {
		return rec, nil
	}
	return s.refresh(ctx, orderID)
}

// refresh fetches the record from the remote service and replaces the stored copy.
func (s *WorkflowService) refresh(ctx context.Context, orderID string) (*domain.TrackingRecord, error) {
	rec, err := s.gateway.GetTracking(ctx, orderID)
	if errors.Is(err, domain.ErrTrackingNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to get tracking: %w", err)
	}

	if !rec.IsConsistent() {
		s.log.Warn("Tracking status does not match latest history entry",
			zap.String("order_id", orderID),
			zap.String("status", rec.Status.String()),
		)
	}

	if err := storeAnswer(ctx, s.store, orderID, rec, s.log); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *WorkflowService) view(order *orderdomain.Order, rec *domain.TrackingRecord) *TrackingView {
	v := &TrackingView{
		Order:     order,
		Tracking:  rec,
		CanCreate: rec == nil,
		Busy:      s.guard.busy(order.ID),
	}
	if rec != nil {
		v.Candidates = domain.RemainingStatuses(rec.Status)
		v.CanReset = !rec.Status.IsTerminal()
	}
	return v
}

// warnIfLate records results that arrived after the caller went away. The
// store already mirrors the remote answer; only the caller misses it.
func (s *WorkflowService) warnIfLate(ctx context.Context, orderID, op string) {
	if ctx.Err() != nil {
		s.log.Warn("Remote answer arrived after the caller left",
			zap.String("order_id", orderID),
			zap.String("op", op),
			zap.Error(ctx.Err()),
		)
	}
}

func orderContext(o *orderdomain.Order) domain.OrderContext {
	return domain.OrderContext{
		PaymentStatus: string(o.PaymentStatus),
		PaymentMethod: string(o.PaymentMethod),
	}
}

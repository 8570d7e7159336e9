package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"tiffinbox/marketplace-svc/internal/domain"
)

// approvalHooks carry everything that differs between onboarding kinds.
type approvalHooks struct {
	kind      domain.RequestKind
	canSubmit func(u *domain.User) bool
	validate  func(details []byte) error
	onApprove func(ctx context.Context, tx Repository, req *domain.PartnerRequest) error
	onReject  func(ctx context.Context, tx Repository, req *domain.PartnerRequest) error
}

// ApprovalWorkflow drives pending -> approved|rejected for one request kind.
// A rejected request may be resubmitted; it is replaced by a fresh pending one.
type ApprovalWorkflow struct {
	repo  Repository
	hooks approvalHooks
}

var _ ApprovalServiceInterface = (*ApprovalWorkflow)(nil)

func NewRestaurantApprovals(repo Repository) *ApprovalWorkflow {
	return &ApprovalWorkflow{repo: repo, hooks: approvalHooks{
		kind: domain.RequestRestaurant,
		canSubmit: func(u *domain.User) bool {
			return u.Role == domain.RoleCustomer || (u.Role == domain.RoleRestaurant && u.RestaurantID == nil)
		},
		validate: func(details []byte) error {
			_, err := decodeRestaurantApplication(details)
			return err
		},
		onApprove: approveRestaurant,
		onReject: func(ctx context.Context, tx Repository, req *domain.PartnerRequest) error {
			return tx.SetUserRestaurant(ctx, req.UserID, nil)
		},
	}}
}

func NewDeliveryApprovals(repo Repository) *ApprovalWorkflow {
	return &ApprovalWorkflow{repo: repo, hooks: approvalHooks{
		kind: domain.RequestDelivery,
		canSubmit: func(u *domain.User) bool {
			return u.Role == domain.RoleDelivery
		},
		validate: func(details []byte) error {
			_, err := decodeDeliveryApplication(details)
			return err
		},
		onApprove: func(ctx context.Context, tx Repository, req *domain.PartnerRequest) error {
			partnerID := req.ID
			return tx.SetUserDeliveryPartner(ctx, req.UserID, &partnerID)
		},
		onReject: func(ctx context.Context, tx Repository, req *domain.PartnerRequest) error {
			return tx.SetUserDeliveryPartner(ctx, req.UserID, nil)
		},
	}}
}

func decodeRestaurantApplication(details []byte) (*domain.RestaurantApplication, error) {
	var app domain.RestaurantApplication
	if err := json.Unmarshal(details, &app); err != nil {
		return nil, invalid("details", "must be a restaurant application object")
	}
	if strings.TrimSpace(app.Name) == "" {
		return nil, invalid("name", "is required")
	}
	if strings.TrimSpace(app.Address) == "" {
		return nil, invalid("address", "is required")
	}
	return &app, nil
}

func decodeDeliveryApplication(details []byte) (*domain.DeliveryApplication, error) {
	var app domain.DeliveryApplication
	if err := json.Unmarshal(details, &app); err != nil {
		return nil, invalid("details", "must be a delivery application object")
	}
	if strings.TrimSpace(app.VehicleType) == "" {
		return nil, invalid("vehicle_type", "is required")
	}
	if strings.TrimSpace(app.Phone) == "" {
		return nil, invalid("phone", "is required")
	}
	return &app, nil
}

func approveRestaurant(ctx context.Context, tx Repository, req *domain.PartnerRequest) error {
	app, err := decodeRestaurantApplication(req.Details)
	if err != nil {
		return err
	}
	rest := &domain.Restaurant{
		OwnerID:     req.UserID,
		Name:        app.Name,
		Address:     app.Address,
		Description: app.Description,
		Cuisine:     app.Cuisine,
		RecipeBox:   app.RecipeBox,
	}
	if err := tx.CreateRestaurant(ctx, rest); err != nil {
		return fmt.Errorf("create restaurant: %w", err)
	}
	if err := tx.SetUserRestaurant(ctx, req.UserID, &rest.ID); err != nil {
		return err
	}
	return tx.SetUserRole(ctx, req.UserID, domain.RoleRestaurant)
}

func (w *ApprovalWorkflow) Kind() domain.RequestKind {
	return w.hooks.kind
}

func (w *ApprovalWorkflow) Submit(ctx context.Context, user *domain.User, details []byte) (*domain.PartnerRequest, error) {
	if !w.hooks.canSubmit(user) {
		return nil, ErrForbidden
	}
	if err := w.hooks.validate(details); err != nil {
		return nil, err
	}

	var created *domain.PartnerRequest
	err := w.repo.WithTx(ctx, func(tx Repository) error {
		existing, err := tx.GetRequestByUser(ctx, user.ID, w.hooks.kind)
		switch {
		case err == nil:
			if existing.Status != domain.RequestRejected {
				return fmt.Errorf("%s request is %s: %w", w.hooks.kind, existing.Status, ErrRequestExists)
			}
			if err := tx.DeleteRequest(ctx, existing.ID); err != nil {
				return err
			}
		case !errors.Is(err, ErrNotFound):
			return err
		}

		created = &domain.PartnerRequest{
			UserID:  user.ID,
			Kind:    w.hooks.kind,
			Status:  domain.RequestPending,
			Details: json.RawMessage(details),
		}
		return tx.CreateRequest(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (w *ApprovalWorkflow) Mine(ctx context.Context, userID int) (*domain.PartnerRequest, error) {
	return w.repo.GetRequestByUser(ctx, userID, w.hooks.kind)
}

func (w *ApprovalWorkflow) List(ctx context.Context, status domain.RequestStatus) ([]domain.PartnerRequest, error) {
	switch status {
	case "", domain.RequestPending, domain.RequestApproved, domain.RequestRejected:
	default:
		return nil, invalid("status", "must be pending, approved or rejected")
	}
	return w.repo.ListRequests(ctx, w.hooks.kind, status)
}

func (w *ApprovalWorkflow) Approve(ctx context.Context, admin *domain.User, id int) (*domain.PartnerRequest, error) {
	return w.decide(ctx, admin, id, domain.RequestApproved, "", w.hooks.onApprove)
}

func (w *ApprovalWorkflow) Reject(ctx context.Context, admin *domain.User, id int, reason string) (*domain.PartnerRequest, error) {
	return w.decide(ctx, admin, id, domain.RequestRejected, reason, w.hooks.onReject)
}

func (w *ApprovalWorkflow) decide(
	ctx context.Context,
	admin *domain.User,
	id int,
	status domain.RequestStatus,
	reason string,
	hook func(context.Context, Repository, *domain.PartnerRequest) error,
) (*domain.PartnerRequest, error) {
	if !isAdmin(admin) {
		return nil, ErrForbidden
	}

	var decided *domain.PartnerRequest
	err := w.repo.WithTx(ctx, func(tx Repository) error {
		req, err := tx.LockRequest(ctx, id, w.hooks.kind)
		if err != nil {
			return err
		}
		if req.Status != domain.RequestPending {
			return ErrRequestNotPending
		}
		if err := hook(ctx, tx, req); err != nil {
			return err
		}

		now := time.Now().UTC()
		reviewer := admin.ID
		req.Status = status
		req.RejectReason = reason
		req.ReviewedBy = &reviewer
		req.ReviewedAt = &now
		if err := tx.UpdateRequestStatus(ctx, req); err != nil {
			return err
		}
		decided = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decided, nil
}

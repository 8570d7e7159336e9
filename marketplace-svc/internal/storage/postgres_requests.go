package storage

import (
	"context"
	"database/sql"

	"tiffinbox/marketplace-svc/internal/domain"
)

const requestColumns = `id, user_id, kind, status, details, COALESCE(reject_reason, ''), reviewed_by, reviewed_at, created_at`

func scanRequest(row rowScanner, req *domain.PartnerRequest) error {
	var (
		reviewer   sql.NullInt64
		reviewedAt sql.NullTime
		details    []byte
	)
	if err := row.Scan(&req.ID, &req.UserID, &req.Kind, &req.Status, &details, &req.RejectReason,
		&reviewer, &reviewedAt, &req.CreatedAt); err != nil {
		return err
	}
	req.Details = details
	req.ReviewedBy = intPtr(reviewer)
	if reviewedAt.Valid {
		t := reviewedAt.Time
		req.ReviewedAt = &t
	}
	return nil
}

func (r *PostgresRepository) CreateRequest(ctx context.Context, req *domain.PartnerRequest) error {
	return r.q.QueryRowContext(ctx, `
		INSERT INTO partner_requests (user_id, kind, status, details)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		req.UserID, req.Kind, req.Status, []byte(req.Details),
	).Scan(&req.ID, &req.CreatedAt)
}

func (r *PostgresRepository) GetRequestByUser(ctx context.Context, userID int, kind domain.RequestKind) (*domain.PartnerRequest, error) {
	var req domain.PartnerRequest
	row := r.q.QueryRowContext(ctx, `SELECT `+requestColumns+`
		FROM partner_requests WHERE user_id = $1 AND kind = $2`, userID, kind)
	if err := scanRequest(row, &req); err != nil {
		return nil, notFound(err)
	}
	return &req, nil
}

func (r *PostgresRepository) LockRequest(ctx context.Context, id int, kind domain.RequestKind) (*domain.PartnerRequest, error) {
	var req domain.PartnerRequest
	row := r.q.QueryRowContext(ctx, `SELECT `+requestColumns+`
		FROM partner_requests WHERE id = $1 AND kind = $2 FOR UPDATE`, id, kind)
	if err := scanRequest(row, &req); err != nil {
		return nil, notFound(err)
	}
	return &req, nil
}

// ListRequests filters by status unless status is empty.
func (r *PostgresRepository) ListRequests(ctx context.Context, kind domain.RequestKind, status domain.RequestStatus) ([]domain.PartnerRequest, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+requestColumns+`
		FROM partner_requests
		WHERE kind = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC`, kind, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []domain.PartnerRequest{}
	for rows.Next() {
		var req domain.PartnerRequest
		if err := scanRequest(rows, &req); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *PostgresRepository) DeleteRequest(ctx context.Context, id int) error {
	return affected(r.q.ExecContext(ctx, `DELETE FROM partner_requests WHERE id = $1`, id))
}

func (r *PostgresRepository) UpdateRequestStatus(ctx context.Context, req *domain.PartnerRequest) error {
	var reviewedAt sql.NullTime
	if req.ReviewedAt != nil {
		reviewedAt = sql.NullTime{Time: *req.ReviewedAt, Valid: true}
	}
	return affected(r.q.ExecContext(ctx, `
		UPDATE partner_requests SET status = $1, reject_reason = $2, reviewed_by = $3, reviewed_at = $4
		WHERE id = $5`,
		req.Status, nullString(req.RejectReason), nullInt(req.ReviewedBy), reviewedAt, req.ID))
}

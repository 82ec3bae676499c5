package postgresql

import (
	"context"

	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type approvalEventRepositoryImpl struct {
	db *database.DB
}

func NewApprovalEventRepository(db *database.DB) leave.ApprovalEventRepository {
	return &approvalEventRepositoryImpl{db: db}
}

func (r *approvalEventRepositoryImpl) Append(ctx context.Context, event leave.ApprovalEvent) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_approval_events (id, request_id, stage, actor_id, decision, comment, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query, event.RequestID, event.Stage, event.ActorID, event.Decision, event.Comment, event.CreatedAt)
	return err
}

func (r *approvalEventRepositoryImpl) ListByRequest(ctx context.Context, requestID string) ([]leave.ApprovalEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, request_id, stage, actor_id, decision, comment, created_at
		FROM leave_approval_events
		WHERE request_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []leave.ApprovalEvent
	for rows.Next() {
		var e leave.ApprovalEvent
		if err := rows.Scan(&e.ID, &e.RequestID, &e.Stage, &e.ActorID, &e.Decision, &e.Comment, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

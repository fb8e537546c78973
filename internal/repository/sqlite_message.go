package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/scriptchat/internal/db"
	"github.com/alexanderramin/scriptchat/internal/domain"
)

// SQLiteMessageRepo implements MessageRepo. Messages are append-only and
// ordered by a per-conversation sequence number.
type SQLiteMessageRepo struct {
	db db.DBTX
}

func NewSQLiteMessageRepo(conn db.DBTX) *SQLiteMessageRepo {
	return &SQLiteMessageRepo{db: conn}
}

// Append stores m after the conversation's last message. The sequence
// number is allocated in the same statement as the insert.
func (r *SQLiteMessageRepo) Append(ctx context.Context, conversationID string, m domain.Message) error {
	query := `INSERT INTO messages (id, conversation_id, seq, role, content, created_at)
		SELECT ?, ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?
		FROM messages WHERE conversation_id = ?`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		conversationID,
		string(m.Role),
		m.Content,
		formatTime(m.Timestamp),
		conversationID,
	)
	if err != nil {
		return fmt.Errorf("appending message to conversation %s: %w", conversationID, err)
	}
	return nil
}

func (r *SQLiteMessageRepo) ListByConversation(ctx context.Context, conversationID string) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, role, content, created_at FROM messages WHERE conversation_id = ? ORDER BY seq`,
		conversationID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	msgs := []domain.Message{}
	for rows.Next() {
		var (
			m         domain.Message
			role      string
			createdAt string
		)
		if err := rows.Scan(&m.ID, &role, &m.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning message row: %w", err)
		}
		m.Role = domain.Role(role)
		if m.Timestamp, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing message created_at: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return msgs, nil
}

func (r *SQLiteMessageRepo) CountByConversation(ctx context.Context, conversationID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM messages WHERE conversation_id = ?`, conversationID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting messages: %w", err)
	}
	return n, nil
}

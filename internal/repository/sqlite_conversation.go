package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/scriptchat/internal/db"
	"github.com/alexanderramin/scriptchat/internal/domain"
)

// SQLiteConversationRepo implements ConversationRepo.
type SQLiteConversationRepo struct {
	db db.DBTX
}

func NewSQLiteConversationRepo(conn db.DBTX) *SQLiteConversationRepo {
	return &SQLiteConversationRepo{db: conn}
}

const conversationColumns = `id, title, mode, data, created_at, updated_at`

func (r *SQLiteConversationRepo) Create(ctx context.Context, c *domain.Conversation) error {
	data, err := encodeBundle(c.Data)
	if err != nil {
		return err
	}
	query := `INSERT INTO conversations (` + conversationColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		c.ID,
		c.Title,
		string(c.Mode),
		data,
		formatTime(c.CreatedAt),
		formatTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting conversation: %w", err)
	}
	return nil
}

func (r *SQLiteConversationRepo) GetByID(ctx context.Context, id string) (*domain.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE id = ?`
	c, err := scanConversation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("conversation %s: %w", id, ErrNotFound)
	}
	return c, err
}

// List returns every conversation, most recently updated first.
func (r *SQLiteConversationRepo) List(ctx context.Context) ([]*domain.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations ORDER BY updated_at DESC, created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	defer rows.Close()

	var out []*domain.Conversation
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversations: %w", err)
	}
	return out, nil
}

// Update replaces title, record and updated_at. Mode and creation time
// never change.
func (r *SQLiteConversationRepo) Update(ctx context.Context, c *domain.Conversation) error {
	data, err := encodeBundle(c.Data)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE conversations SET title = ?, data = ?, updated_at = ? WHERE id = ?`,
		c.Title, data, formatTime(c.UpdatedAt), c.ID)
	if err != nil {
		return fmt.Errorf("updating conversation: %w", err)
	}
	return requireRow(res, "conversation", c.ID)
}

// Delete removes the conversation and, by cascade, its messages.
func (r *SQLiteConversationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM conversations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting conversation: %w", err)
	}
	return requireRow(res, "conversation", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversation(row rowScanner) (*domain.Conversation, error) {
	var (
		c                    domain.Conversation
		mode, data           string
		createdAt, updatedAt string
	)
	if err := row.Scan(&c.ID, &c.Title, &mode, &data, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning conversation: %w", err)
	}

	c.Mode = domain.Mode(mode)
	bundle, err := decodeBundle(data)
	if err != nil {
		return nil, err
	}
	c.Data = bundle

	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	c.Messages = []domain.Message{}
	return &c, nil
}

func requireRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return nil
}

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"slidechat/models"

	_ "github.com/lib/pq"
)

// ThreadRepository is the thread-persistence collaborator: an append-mostly
// message log per conversation where existing rows may be replaced in place
// by id but never reordered.
type ThreadRepository interface {
	AppendMessage(threadID string, msg *models.ConversationMessage) error
	ReplaceMessage(threadID string, msg *models.ConversationMessage) error
	GetMessages(threadID string) ([]models.ConversationMessage, error)
	Close() error
}

type PostgresThreadRepository struct {
	db *sql.DB
}

func NewPostgresThreadRepository(databaseURL string) (*PostgresThreadRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresThreadRepository{db: db}, nil
}

func (r *PostgresThreadRepository) AppendMessage(threadID string, msg *models.ConversationMessage) error {
	metadataJSON, err := json.Marshal(msg.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := `
		INSERT INTO slidechat.messages (id, thread_id, role, content, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.Exec(query, msg.ID, threadID, string(msg.Role), msg.Content, metadataJSON, msg.CreatedAt); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	return nil
}

func (r *PostgresThreadRepository) ReplaceMessage(threadID string, msg *models.ConversationMessage) error {
	metadataJSON, err := json.Marshal(msg.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := `
		UPDATE slidechat.messages
		SET content = $1, metadata = $2
		WHERE id = $3 AND thread_id = $4`

	result, err := r.db.Exec(query, msg.Content, metadataJSON, msg.ID, threadID)
	if err != nil {
		return fmt.Errorf("failed to replace message: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check replaced rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("message with id %s not found in thread %s", msg.ID, threadID)
	}

	return nil
}

func (r *PostgresThreadRepository) GetMessages(threadID string) ([]models.ConversationMessage, error) {
	query := `
		SELECT id, role, content, metadata, created_at
		FROM slidechat.messages
		WHERE thread_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(query, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ConversationMessage
	for rows.Next() {
		var msg models.ConversationMessage
		var role string
		var metadataJSON []byte

		if err := rows.Scan(&msg.ID, &role, &msg.Content, &metadataJSON, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msg.Role = models.Role(role)
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &msg.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
			}
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

func (r *PostgresThreadRepository) Close() error {
	return r.db.Close()
}

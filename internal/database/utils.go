package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// ListMessageTexts returns the message column of every row. There is no ORDER
// BY, so row order is whatever the storage engine returns.
func ListMessageTexts(ctx context.Context, txn *gorm.DB) ([]sql.NullString, error) {
	var texts []sql.NullString
	if err := txn.WithContext(ctx).Model(&Message{}).Pluck("message", &texts).Error; err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	return texts, nil
}

func ListMessages(ctx context.Context, txn *gorm.DB) ([]Message, error) {
	var messages []Message
	if err := txn.WithContext(ctx).Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	return messages, nil
}

// CreateMessage inserts one row with a bound parameter inside its own
// transaction. The transaction commits on success and rolls back otherwise,
// returning the connection to the pool on both paths.
func CreateMessage(ctx context.Context, txn *gorm.DB, text sql.NullString) error {
	err := txn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&Message{Message: text}).Error
	})
	if err != nil {
		slog.Error("error inserting message", "error", err)
		return fmt.Errorf("error inserting message: %w", err)
	}
	return nil
}

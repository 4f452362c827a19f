package api

import (
	"database/sql"

	"message-board/internal/database"
	"message-board/pkg/api"

	"github.com/samber/lo"
)

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func convertMessage(m database.Message) api.Message {
	return api.Message{
		Id:      m.Id,
		Message: fromNullString(m.Message),
	}
}

func convertMessages(ms []database.Message) []api.Message {
	return lo.Map(ms, func(m database.Message, _ int) api.Message { return convertMessage(m) })
}

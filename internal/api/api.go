package api

import (
	"database/sql"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"message-board/internal/database"
	"message-board/pkg/api"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

//go:embed templates/index.html
var templates embed.FS

var indexTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

type BoardService struct {
	db    *gorm.DB
	index *template.Template
}

func NewBoardService(db *gorm.DB) *BoardService {
	return &BoardService{db: db, index: indexTemplate}
}

func (s *BoardService) AddRoutes(r chi.Router) {
	r.Get("/", PageHandler(s.index, s.Index))
	r.Post("/submit", RestHandler(s.Submit))
	r.Get("/messages", RestHandler(s.ListMessages))
	r.Get("/health", RestHandler(s.Health))
}

type indexPage struct {
	Messages []string
}

func (s *BoardService) Index(r *http.Request) (any, error) {
	texts, err := database.ListMessageTexts(r.Context(), s.db)
	if err != nil {
		slog.Error("error listing messages", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving messages")
	}

	return indexPage{
		Messages: lo.Map(texts, func(text sql.NullString, _ int) string { return text.String }),
	}, nil
}

func (s *BoardService) Submit(r *http.Request) (any, error) {
	req, err := ParseRequestForm[api.SubmitRequest](r)
	if err != nil {
		return nil, err
	}

	if err := database.CreateMessage(r.Context(), s.db, toNullString(req.NewMessage)); err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "failed to save message")
	}

	return api.SubmitResponse{Message: req.NewMessage}, nil
}

func (s *BoardService) ListMessages(r *http.Request) (any, error) {
	messages, err := database.ListMessages(r.Context(), s.db)
	if err != nil {
		slog.Error("error listing messages", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving messages")
	}

	return convertMessages(messages), nil
}

func (s *BoardService) Health(r *http.Request) (any, error) {
	if err := database.Ping(r.Context(), s.db); err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "database unreachable: %w", err)
	}
	return nil, nil
}

package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"webblog/internal/forms"
	"webblog/internal/logger"
	"webblog/internal/models"
	"webblog/internal/repository"
)

type CommentService interface {
	Create(ctx context.Context, articleID int64, f forms.CommentForm) (*models.Comment, error)
}

type commentService struct {
	repo   repository.CommentRepo
	render renderer
}

func NewCommentService(repo repository.CommentRepo) CommentService {
	return &commentService{repo: repo, render: newRenderer()}
}

// Create добавляет комментарий к статье articleID.
func (s *commentService) Create(ctx context.Context, articleID int64, f forms.CommentForm) (*models.Comment, error) {
	log := logger.WithCtx(ctx)
	log.Info("Добавление комментария", zap.Int64("article_id", articleID), zap.String("author", f.Author))

	if err := f.Validate(); err != nil {
		log.Warn("Форма комментария не прошла валидацию", zap.Error(err))
		return nil, err
	}

	c, err := s.repo.Create(ctx, &models.Comment{
		ArticleID: articleID,
		Author:    f.Author,
		Text:      f.Text,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Статья для комментария не найдена", zap.Int64("article_id", articleID))
		} else {
			log.Error("Ошибка добавления комментария (repo)", zap.Error(err))
		}
		return nil, err
	}

	s.render.comment(c)
	log.Info("Комментарий добавлен", zap.Int64("id", c.ID), zap.Int64("article_id", articleID))
	return c, nil
}

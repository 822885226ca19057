package persistent

import (
	"keijiban/internal/entity"
	"keijiban/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}
	return &entity.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		UserID:    m.UserID,
		Username:  m.Username,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}
	return &model.PostModel{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		UserID:    e.UserID,
		Username:  e.Username,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToAnnotatedPostEntity(r *model.PostWithLikeCount) *entity.Post {
	if r == nil {
		return nil
	}
	return &entity.Post{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		UserID:    r.UserID,
		Username:  r.Username,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		LikeCount: r.LikeCount,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}
	return &entity.Like{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

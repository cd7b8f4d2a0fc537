package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/devlinkhq/devlink-backend/internal/domain/entity"
	"github.com/devlinkhq/devlink-backend/internal/domain/policy"
	"github.com/devlinkhq/devlink-backend/internal/domain/repository"
	"github.com/devlinkhq/devlink-backend/pkg/apperrors"
)

// PostService orchestrates the Post aggregate: load, ownership check,
// domain mutation, persist. Like and comment edits go through the
// repository's atomic primitives so concurrent edits on the same post
// cannot lose updates.
type PostService struct {
	Posts  repository.PostRepository
	Users  repository.UserRepository
	Logger *logrus.Logger
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, Logger: logger}
}

// Create publishes a post, snapshotting the author's name and avatar.
func (s *PostService) Create(ctx context.Context, principalID, text string) (*entity.Post, error) {
	oid, err := principalOID(principalID)
	if err != nil {
		return nil, err
	}
	author, err := s.Users.GetByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Unauthorized("token is not valid")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	p := entity.NewPost(author, text)
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, apperrors.Internal(err)
	}
	return p, nil
}

// List returns all posts newest first.
func (s *PostService) List(ctx context.Context) ([]entity.Post, error) {
	posts, err := s.Posts.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return posts, nil
}

// Get returns one post; unknown and malformed ids both read as 404.
func (s *PostService) Get(ctx context.Context, id string) (*entity.Post, error) {
	return s.load(ctx, id)
}

// Delete removes a post after the ownership check.
func (s *PostService) Delete(ctx context.Context, principalID, id string) error {
	p, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !policy.OwnsPost(principalID, p) {
		return apperrors.Unauthorized("not authorized to delete this post")
	}
	if err := s.Posts.Delete(ctx, p.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("no post with such id")
		}
		return apperrors.Internal(err)
	}
	return nil
}

// Like records the principal's like and returns the updated likes list,
// most recent first. Liking twice fails with a conflict.
func (s *PostService) Like(ctx context.Context, principalID, id string) ([]entity.Like, error) {
	uid, err := principalOID(principalID)
	if err != nil {
		return nil, err
	}
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	like := entity.Like{User: uid}
	if err := s.Posts.AddLike(ctx, p.ID, like); err != nil {
		switch {
		case errors.Is(err, entity.ErrAlreadyLiked):
			return nil, apperrors.Conflict("post already liked")
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperrors.NotFound("no post with such id")
		default:
			return nil, apperrors.Internal(err)
		}
	}
	p.Likes = entity.InsertFront(p.Likes, like)
	return p.Likes, nil
}

// Unlike removes the principal's like and returns the updated list.
func (s *PostService) Unlike(ctx context.Context, principalID, id string) ([]entity.Like, error) {
	uid, err := principalOID(principalID)
	if err != nil {
		return nil, err
	}
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.Posts.RemoveLike(ctx, p.ID, uid); err != nil {
		switch {
		case errors.Is(err, entity.ErrNotLiked):
			return nil, apperrors.Conflict("post has not yet been liked")
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperrors.NotFound("no post with such id")
		default:
			return nil, apperrors.Internal(err)
		}
	}
	p.Likes, _ = entity.RemoveWhere(p.Likes, func(l entity.Like) bool { return l.User == uid })
	return p.Likes, nil
}

// Comment adds a comment and returns the updated comments list.
func (s *PostService) Comment(ctx context.Context, principalID, id, text string) ([]entity.Comment, error) {
	uid, err := principalOID(principalID)
	if err != nil {
		return nil, err
	}
	author, err := s.Users.GetByID(ctx, uid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Unauthorized("token is not valid")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	c := entity.NewComment(author, text)
	if err := s.Posts.AddComment(ctx, p.ID, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("no post with such id")
		}
		return nil, apperrors.Internal(err)
	}
	p.AddComment(c)
	return p.Comments, nil
}

// Uncomment removes a comment after existence and ownership checks and
// returns the updated list.
func (s *PostService) Uncomment(ctx context.Context, principalID, id, commentID string) ([]entity.Comment, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	c, ok := p.FindComment(commentID)
	if !ok {
		return nil, apperrors.NotFound("comment not found")
	}
	if !policy.OwnsComment(principalID, c) {
		return nil, apperrors.Unauthorized("not allowed to delete this comment")
	}

	if err := s.Posts.RemoveComment(ctx, p.ID, commentID); err != nil {
		switch {
		case errors.Is(err, entity.ErrCommentNotFound):
			return nil, apperrors.NotFound("comment not found")
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperrors.NotFound("no post with such id")
		default:
			return nil, apperrors.Internal(err)
		}
	}
	_ = p.RemoveComment(commentID)
	return p.Comments, nil
}

func (s *PostService) load(ctx context.Context, id string) (*entity.Post, error) {
	oid, err := aggregateOID(id)
	if err != nil {
		return nil, apperrors.NotFound("no post with such id")
	}
	p, err := s.Posts.GetByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("no post with such id")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return p, nil
}

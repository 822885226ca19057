package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"keijiban/internal/entity"
	"keijiban/internal/repo/persistent"
	"keijiban/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const likeLockTTL = 5 * time.Second

type LikeUseCase interface {
	ToggleLike(postID, userID string) (*entity.LikeResult, error)
}

type likeUseCase struct {
	postRepo    persistent.PostRepository
	likeRepo    persistent.LikeRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewLikeUseCase(
	postRepo persistent.PostRepository,
	likeRepo persistent.LikeRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// ToggleLike flips the like state for (postID, userID) and returns the
// freshly recomputed like count. The count is always a recount over the
// likes table, never an increment, so it cannot drift.
func (uc *likeUseCase) ToggleLike(postID, userID string) (*entity.LikeResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", entity.ErrInvalidArgument)
	}

	if _, err := uc.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	// Best-effort serialization of concurrent toggles from the same
	// user on the same post. The unique index on (post_id, user_id)
	// remains the authoritative guard; losing the lock only means the
	// constraint does the work instead.
	if uc.redisClient != nil {
		ctx := context.Background()
		lockKey := fmt.Sprintf("like_lock:%s:%s", postID, userID)
		acquired, err := uc.redisClient.SetNX(ctx, lockKey, "1", likeLockTTL).Result()
		if err != nil {
			uc.logger.Warn("Failed to acquire like lock for post %s: %v", postID, err)
		} else if acquired {
			defer uc.redisClient.Del(ctx, lockKey)
		}
	}

	like, err := uc.likeRepo.Find(postID, userID)
	if err != nil {
		return nil, err
	}

	var isLiked bool
	if like != nil {
		if err := uc.likeRepo.Delete(like.ID); err != nil {
			return nil, err
		}
		isLiked = false
	} else {
		if _, err := uc.likeRepo.Create(postID, userID); err != nil {
			if !errors.Is(err, entity.ErrAlreadyLiked) {
				return nil, err
			}
			// A concurrent toggle created the like between Find and
			// Create. The row exists, so resolve to the liked state
			// and report the authoritative count.
			uc.logger.Warn("Concurrent like detected for post %s, user %s", postID, userID)
		}
		isLiked = true
	}

	count, err := uc.likeRepo.CountByPost(postID)
	if err != nil {
		return nil, err
	}

	return &entity.LikeResult{
		LikeCount: count,
		IsLiked:   isLiked,
	}, nil
}

package application

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devlinkhq/devlink-backend/internal/domain/entity"
	"github.com/devlinkhq/devlink-backend/pkg/apperrors"
)

type postFixture struct {
	svc   *PostService
	users *fakeUserRepo
	posts *fakePostRepo
	ann   *entity.User
	bob   *entity.User
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()
	users := newFakeUserRepo()
	posts := newFakePostRepo()

	ann := &entity.User{Name: "Ann", Email: "a@x.com", Avatar: "av-ann"}
	bob := &entity.User{Name: "Bob", Email: "b@x.com", Avatar: "av-bob"}
	require.NoError(t, users.Create(context.Background(), ann))
	require.NoError(t, users.Create(context.Background(), bob))

	return &postFixture{
		svc:   NewPostService(posts, users, logrus.New()),
		users: users,
		posts: posts,
		ann:   ann,
		bob:   bob,
	}
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)

	p, err := f.svc.Create(ctx, f.ann.ID.Hex(), "first post")
	require.NoError(t, err)

	assert.Equal(t, "first post", p.Text)
	assert.Equal(t, f.ann.ID, p.User)
	// author snapshot taken at creation time
	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, "av-ann", p.Avatar)
	assert.False(t, p.ID.IsZero())
}

func TestGetPost(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)

	t.Run("malformed id reads as not found", func(t *testing.T) {
		_, err := f.svc.Get(ctx, "garbage")
		assert.Equal(t, apperrors.KindNotFound, apperrors.From(err).Kind)
	})

	t.Run("unknown id reads as not found", func(t *testing.T) {
		_, err := f.svc.Get(ctx, primitive.NewObjectID().Hex())
		assert.Equal(t, apperrors.KindNotFound, apperrors.From(err).Kind)
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	p, err := f.svc.Create(ctx, f.ann.ID.Hex(), "mine")
	require.NoError(t, err)

	t.Run("non-owner is rejected", func(t *testing.T) {
		err := f.svc.Delete(ctx, f.bob.ID.Hex(), p.ID.Hex())
		assert.Equal(t, apperrors.KindUnauthorized, apperrors.From(err).Kind)
	})

	t.Run("owner may delete", func(t *testing.T) {
		require.NoError(t, f.svc.Delete(ctx, f.ann.ID.Hex(), p.ID.Hex()))
		_, err := f.svc.Get(ctx, p.ID.Hex())
		assert.Equal(t, apperrors.KindNotFound, apperrors.From(err).Kind)
	})
}

func TestLikeIdempotency(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	p, err := f.svc.Create(ctx, f.ann.ID.Hex(), "likeable")
	require.NoError(t, err)

	likes, err := f.svc.Like(ctx, f.ann.ID.Hex(), p.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	_, err = f.svc.Like(ctx, f.ann.ID.Hex(), p.ID.Hex())
	assert.Equal(t, apperrors.KindConflict, apperrors.From(err).Kind)
}

func TestLikeOrdering(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	p, err := f.svc.Create(ctx, f.ann.ID.Hex(), "popular")
	require.NoError(t, err)

	_, err = f.svc.Like(ctx, f.ann.ID.Hex(), p.ID.Hex())
	require.NoError(t, err)
	likes, err := f.svc.Like(ctx, f.bob.ID.Hex(), p.ID.Hex())
	require.NoError(t, err)

	// most recent liker first
	require.Len(t, likes, 2)
	assert.Equal(t, f.bob.ID, likes[0].User)
	assert.Equal(t, f.ann.ID, likes[1].User)
}

func TestUnlike(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	p, err := f.svc.Create(ctx, f.ann.ID.Hex(), "fickle")
	require.NoError(t, err)

	t.Run("without prior like", func(t *testing.T) {
		_, err := f.svc.Unlike(ctx, f.bob.ID.Hex(), p.ID.Hex())
		assert.Equal(t, apperrors.KindConflict, apperrors.From(err).Kind)
	})

	t.Run("after a like", func(t *testing.T) {
		_, err := f.svc.Like(ctx, f.bob.ID.Hex(), p.ID.Hex())
		require.NoError(t, err)
		likes, err := f.svc.Unlike(ctx, f.bob.ID.Hex(), p.ID.Hex())
		require.NoError(t, err)
		assert.Empty(t, likes)
	})
}

func TestComments(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	p, err := f.svc.Create(ctx, f.ann.ID.Hex(), "discuss")
	require.NoError(t, err)

	comments, err := f.svc.Comment(ctx, f.ann.ID.Hex(), p.ID.Hex(), "A")
	require.NoError(t, err)
	require.Len(t, comments, 1)

	comments, err = f.svc.Comment(ctx, f.bob.ID.Hex(), p.ID.Hex(), "B")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "B", comments[0].Text)
	assert.Equal(t, "A", comments[1].Text)

	bobComment := comments[0]

	t.Run("unknown comment id", func(t *testing.T) {
		_, err := f.svc.Uncomment(ctx, f.bob.ID.Hex(), p.ID.Hex(), "missing")
		assert.Equal(t, apperrors.KindNotFound, apperrors.From(err).Kind)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		_, err := f.svc.Uncomment(ctx, f.ann.ID.Hex(), p.ID.Hex(), bobComment.ID)
		assert.Equal(t, apperrors.KindUnauthorized, apperrors.From(err).Kind)
	})

	t.Run("owner deletes own comment", func(t *testing.T) {
		comments, err := f.svc.Uncomment(ctx, f.bob.ID.Hex(), p.ID.Hex(), bobComment.ID)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "A", comments[0].Text)
	})
}

package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devlinkhq/devlink-backend/internal/domain/entity"
	"github.com/devlinkhq/devlink-backend/internal/domain/repository"
)

// In-memory fakes implementing the repository ports, honoring the same
// contracts the mongo adapters do (guarded atomic like/comment edits,
// merge-upsert for profiles).

type fakeUserRepo struct {
	users map[primitive.ObjectID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = primitive.NewObjectID()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.users, id)
	return nil
}

type fakePostRepo struct {
	posts map[primitive.ObjectID]*entity.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[primitive.ObjectID]*entity.Post{}}
}

func (r *fakePostRepo) Create(_ context.Context, p *entity.Post) error {
	p.ID = primitive.NewObjectID()
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) List(_ context.Context) ([]entity.Post, error) {
	out := []entity.Post{}
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePostRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) DeleteByAuthor(_ context.Context, userID primitive.ObjectID) error {
	for id, p := range r.posts {
		if p.User == userID {
			delete(r.posts, id)
		}
	}
	return nil
}

func (r *fakePostRepo) AddLike(_ context.Context, postID primitive.ObjectID, like entity.Like) error {
	p, ok := r.posts[postID]
	if !ok {
		return repository.ErrNotFound
	}
	return p.AddLike(like.User)
}

func (r *fakePostRepo) RemoveLike(_ context.Context, postID, userID primitive.ObjectID) error {
	p, ok := r.posts[postID]
	if !ok {
		return repository.ErrNotFound
	}
	return p.RemoveLike(userID)
}

func (r *fakePostRepo) AddComment(_ context.Context, postID primitive.ObjectID, c entity.Comment) error {
	p, ok := r.posts[postID]
	if !ok {
		return repository.ErrNotFound
	}
	p.AddComment(c)
	return nil
}

func (r *fakePostRepo) RemoveComment(_ context.Context, postID primitive.ObjectID, commentID string) error {
	p, ok := r.posts[postID]
	if !ok {
		return repository.ErrNotFound
	}
	return p.RemoveComment(commentID)
}

type fakeProfileRepo struct {
	profiles map[primitive.ObjectID]*entity.Profile
	upserts  int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[primitive.ObjectID]*entity.Profile{}}
}

func (r *fakeProfileRepo) GetByUser(_ context.Context, userID primitive.ObjectID) (*entity.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) List(_ context.Context) ([]entity.Profile, error) {
	out := []entity.Profile{}
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, userID primitive.ObjectID, fields entity.ProfileFields) (*entity.Profile, error) {
	r.upserts++
	p, ok := r.profiles[userID]
	if !ok {
		p = &entity.Profile{
			ID:         primitive.NewObjectID(),
			User:       userID,
			Experience: []entity.Experience{},
			Education:  []entity.Education{},
		}
		r.profiles[userID] = p
	}
	if fields.Company != "" {
		p.Company = fields.Company
	}
	if fields.Website != "" {
		p.Website = fields.Website
	}
	if fields.Location != "" {
		p.Location = fields.Location
	}
	if fields.Bio != "" {
		p.Bio = fields.Bio
	}
	if fields.Status != "" {
		p.Status = fields.Status
	}
	if fields.GithubUsername != "" {
		p.GithubUsername = fields.GithubUsername
	}
	if len(fields.Skills) > 0 {
		p.Skills = fields.Skills
	}
	p.Social = fields.Social
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) Replace(_ context.Context, p *entity.Profile) error {
	if _, ok := r.profiles[p.User]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	r.profiles[p.User] = &cp
	return nil
}

func (r *fakeProfileRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	delete(r.profiles, userID)
	return nil
}

var (
	_ repository.UserRepository    = (*fakeUserRepo)(nil)
	_ repository.PostRepository    = (*fakePostRepo)(nil)
	_ repository.ProfileRepository = (*fakeProfileRepo)(nil)
)

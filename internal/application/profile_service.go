package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devlinkhq/devlink-backend/internal/domain/entity"
	"github.com/devlinkhq/devlink-backend/internal/domain/repository"
	"github.com/devlinkhq/devlink-backend/pkg/apperrors"
	"github.com/devlinkhq/devlink-backend/pkg/github"
)

// ProfileService owns the Profile aggregate and the account cascade.
// Experience and education edits are scoped to the principal's own
// profile by construction: the lookup key is the principal, so no
// separate ownership check exists on those paths.
type ProfileService struct {
	Profiles repository.ProfileRepository
	Posts    repository.PostRepository
	Users    repository.UserRepository
	Github   github.RepoLister
	Logger   *logrus.Logger
}

func NewProfileService(
	profiles repository.ProfileRepository,
	posts repository.PostRepository,
	users repository.UserRepository,
	gh github.RepoLister,
	logger *logrus.Logger,
) *ProfileService {
	return &ProfileService{Profiles: profiles, Posts: posts, Users: users, Github: gh, Logger: logger}
}

// Mine returns the principal's profile.
func (s *ProfileService) Mine(ctx context.Context, principalID string) (*entity.Profile, error) {
	oid, err := principalOID(principalID)
	if err != nil {
		return nil, err
	}
	return s.byUser(ctx, oid, apperrors.Conflict("no profile for this user"))
}

// UpsertInput carries the fields a profile create/update may provide.
// Skills arrives as the comma-separated string the client sends.
type UpsertInput struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// Upsert merges the provided fields into the principal's profile, or
// creates it. Two upserts for the same principal always land on the same
// document.
func (s *ProfileService) Upsert(ctx context.Context, principalID string, in UpsertInput) (*entity.Profile, error) {
	oid, err := principalOID(principalID)
	if err != nil {
		return nil, err
	}

	fields := entity.ProfileFields{
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Bio:            in.Bio,
		Status:         in.Status,
		GithubUsername: in.GithubUsername,
		Skills:         splitSkills(in.Skills),
		Social: entity.Social{
			Youtube:   in.Youtube,
			Twitter:   in.Twitter,
			Facebook:  in.Facebook,
			Linkedin:  in.Linkedin,
			Instagram: in.Instagram,
		},
	}
	p, err := s.Profiles.Upsert(ctx, oid, fields)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return p, nil
}

// All returns every profile.
func (s *ProfileService) All(ctx context.Context) ([]entity.Profile, error) {
	profiles, err := s.Profiles.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return profiles, nil
}

// ByUser returns the profile owned by the given user id; malformed ids
// read as not found.
func (s *ProfileService) ByUser(ctx context.Context, userID string) (*entity.Profile, error) {
	oid, err := aggregateOID(userID)
	if err != nil {
		return nil, apperrors.NotFound("profile not found")
	}
	return s.byUser(ctx, oid, apperrors.NotFound("profile not found"))
}

// AddExperience prepends a work-experience entry to the principal's
// profile and returns the updated profile.
func (s *ProfileService) AddExperience(ctx context.Context, principalID string, e entity.Experience) (*entity.Profile, error) {
	oid, err := principalOID(principalID)
	if err != nil {
		return nil, err
	}
	p, err := s.byUser(ctx, oid, apperrors.Conflict("no profile for this user"))
	if err != nil {
		return nil, err
	}
	p.AddExperience(e)
	if err := s.Profiles.Replace(ctx, p); err != nil {
		return nil, apperrors.Internal(err)
	}
	return p, nil
}

// RemoveExperience deletes the entry with the given id; an unknown id is
// a silent no-op and the unchanged profile is returned.
func (s *ProfileService) RemoveExperience(ctx context.Context, principalID, id string) (*entity.Profile, error) {
	oid, err := principalOID(principalID)
	if err != nil {
		return nil, err
	}
	p, err := s.byUser(ctx, oid, apperrors.Conflict("no profile for this user"))
	if err != nil {
		return nil, err
	}
	p.RemoveExperience(id)
	if err := s.Profiles.Replace(ctx, p); err != nil {
		return nil, apperrors.Internal(err)
	}
	return p, nil
}

// AddEducation prepends an education entry to the principal's profile.
func (s *ProfileService) AddEducation(ctx context.Context, principalID string, e entity.Education) (*entity.Profile, error) {
	oid, err := principalOID(principalID)
	if err != nil {
		return nil, err
	}
	p, err := s.byUser(ctx, oid, apperrors.Conflict("no profile for this user"))
	if err != nil {
		return nil, err
	}
	p.AddEducation(e)
	if err := s.Profiles.Replace(ctx, p); err != nil {
		return nil, apperrors.Internal(err)
	}
	return p, nil
}

// RemoveEducation deletes the entry with the given id; unknown ids are a
// silent no-op.
func (s *ProfileService) RemoveEducation(ctx context.Context, principalID, id string) (*entity.Profile, error) {
	oid, err := principalOID(principalID)
	if err != nil {
		return nil, err
	}
	p, err := s.byUser(ctx, oid, apperrors.Conflict("no profile for this user"))
	if err != nil {
		return nil, err
	}
	p.RemoveEducation(id)
	if err := s.Profiles.Replace(ctx, p); err != nil {
		return nil, apperrors.Internal(err)
	}
	return p, nil
}

// DeleteAccount cascades: the principal's posts, their profile, then the
// user record. Comments the principal left on other users' posts stay.
func (s *ProfileService) DeleteAccount(ctx context.Context, principalID string) error {
	oid, err := principalOID(principalID)
	if err != nil {
		return err
	}
	if err := s.Posts.DeleteByAuthor(ctx, oid); err != nil {
		return apperrors.Internal(err)
	}
	if err := s.Profiles.DeleteByUser(ctx, oid); err != nil {
		return apperrors.Internal(err)
	}
	if err := s.Users.Delete(ctx, oid); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// GithubRepos proxies the five most recently created public repositories
// of a GitHub user.
func (s *ProfileService) GithubRepos(ctx context.Context, username string) ([]github.Repo, error) {
	repos, err := s.Github.ListRepos(ctx, username, 5)
	if errors.Is(err, github.ErrUserNotFound) {
		return nil, apperrors.NotFound("no github profile found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return repos, nil
}

func (s *ProfileService) byUser(ctx context.Context, oid primitive.ObjectID, missing error) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUser(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, missing
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return p, nil
}

func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Social holds optional social-network links; replaced wholesale on every
// profile upsert.
type Social struct {
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

// Experience is immutable once added; removal is by id only.
type Experience struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Company     string `bson:"company" json:"company"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
	From        string `bson:"from" json:"from"`
	To          string `bson:"to,omitempty" json:"to,omitempty"`
	Current     bool   `bson:"current" json:"current"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Education is immutable once added; removal is by id only.
type Education struct {
	ID           string `bson:"id" json:"id"`
	School       string `bson:"school" json:"school"`
	Degree       string `bson:"degree" json:"degree"`
	FieldOfStudy string `bson:"fieldofstudy" json:"fieldofstudy"`
	From         string `bson:"from" json:"from"`
	To           string `bson:"to,omitempty" json:"to,omitempty"`
	Current      bool   `bson:"current" json:"current"`
	Description  string `bson:"description,omitempty" json:"description,omitempty"`
}

// Profile is an aggregate root. Exactly one profile exists per user,
// enforced by a unique index on the user reference. Experience and
// Education are prepend-ordered.
type Profile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User           primitive.ObjectID `bson:"user" json:"user"`
	Company        string             `bson:"company,omitempty" json:"company,omitempty"`
	Website        string             `bson:"website,omitempty" json:"website,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Status         string             `bson:"status" json:"status"`
	GithubUsername string             `bson:"githubusername,omitempty" json:"githubusername,omitempty"`
	Skills         []string           `bson:"skills" json:"skills"`
	Social         Social             `bson:"social" json:"social"`
	Experience     []Experience       `bson:"experience" json:"experience"`
	Education      []Education        `bson:"education" json:"education"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// ProfileFields carries the fields a profile upsert may provide. Empty
// strings mean "not provided" and are not merged; Social is always
// replaced as a whole.
type ProfileFields struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         []string
	Social         Social
}

// AddExperience prepends the entry with a fresh id assigned here; callers
// never pick sub-item ids.
func (p *Profile) AddExperience(e Experience) {
	e.ID = uuid.NewString()
	p.Experience = InsertFront(p.Experience, e)
}

// RemoveExperience removes the entry with the given id. Removing an
// unknown id is a documented no-op, not an error.
func (p *Profile) RemoveExperience(id string) {
	p.Experience, _ = RemoveWhere(p.Experience, func(e Experience) bool { return e.ID == id })
}

// AddEducation prepends the entry with a fresh id.
func (p *Profile) AddEducation(e Education) {
	e.ID = uuid.NewString()
	p.Education = InsertFront(p.Education, e)
}

// RemoveEducation removes the entry with the given id; unknown ids are a
// no-op.
func (p *Profile) RemoveEducation(id string) {
	p.Education, _ = RemoveWhere(p.Education, func(e Education) bool { return e.ID == id })
}

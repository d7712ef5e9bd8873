// Package user implements the user repository over the users collection.
package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pollwise/admin-tools/internal/domain"
)

// Collection is the name of the collection holding user documents.
// The schema is owned by the platform; the tools only read the fields
// modeled in userDoc and write the role field.
const Collection = "users"

// Repo provides user persistence backed by the users collection.
type Repo struct {
	coll *mongo.Collection
}

// New creates a new user repository on the given database.
func New(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(Collection)}
}

// userDoc is the wire shape of a user document. Name fields and role are
// optional on old documents; email is always present.
type userDoc struct {
	Email     string `bson:"email"`
	FirstName string `bson:"firstName,omitempty"`
	LastName  string `bson:"lastName,omitempty"`
	Role      string `bson:"role,omitempty"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Role:      domain.Role(d.Role),
	}
}

// GetByEmail returns the user with the given email address. The email must
// already be normalized; matching is exact.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", email, err)
	}

	u := doc.toDomain()
	return &u, nil
}

// SetRole sets the role field of the user with the given email and returns
// the number of documents actually modified. Zero with a nil error means the
// document vanished or already carried the role; the caller decides what that
// means.
func (r *Repo) SetRole(ctx context.Context, email string, role domain.Role) (int64, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role.String()}},
	)
	if err != nil {
		return 0, fmt.Errorf("user %s: set role: %w", email, err)
	}

	return res.ModifiedCount, nil
}

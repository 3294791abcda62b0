package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskdesk/internal/domain/entity"
	"taskdesk/internal/domain/repository"
	"taskdesk/pkg/errors"
)

const ownersCollection = "owners"

type firestoreOwnerRepository struct {
	client *firestore.Client
}

func NewFirestoreOwnerRepository(client *firestore.Client) repository.OwnerRepository {
	return &firestoreOwnerRepository{
		client: client,
	}
}

func (r *firestoreOwnerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	if owner.ID == "" {
		owner.ID = uuid.New().String()
	}
	owner.CreatedAt = time.Now()

	_, err := r.client.Collection(ownersCollection).Doc(owner.ID).Set(ctx, owner)
	if err != nil {
		return errors.Internal("Failed to create owner", err)
	}

	return nil
}

func (r *firestoreOwnerRepository) GetByID(ctx context.Context, id string) (*entity.Owner, error) {
	doc, err := r.client.Collection(ownersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Owner", err)
		}
		return nil, errors.Internal("Failed to get owner", err)
	}

	var owner entity.Owner
	if err := doc.DataTo(&owner); err != nil {
		return nil, errors.Internal("Failed to parse owner data", err)
	}
	owner.ID = doc.Ref.ID

	return &owner, nil
}

func (r *firestoreOwnerRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Owner, error) {
	query := r.client.Collection(ownersCollection).Where("phoneNumber", "==", phoneNumber).Limit(1)

	doc, err := query.Documents(ctx).Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Owner", nil)
		}
		return nil, errors.Internal("Failed to query owner by phone number", err)
	}

	var owner entity.Owner
	if err := doc.DataTo(&owner); err != nil {
		return nil, errors.Internal("Failed to parse owner data", err)
	}
	owner.ID = doc.Ref.ID

	return &owner, nil
}

func (r *firestoreOwnerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	owner.UpdatedAt = time.Now()

	_, err := r.client.Collection(ownersCollection).Doc(owner.ID).Set(ctx, owner)
	if err != nil {
		return errors.Internal("Failed to update owner", err)
	}

	return nil
}

func (r *firestoreOwnerRepository) List(ctx context.Context) ([]*entity.Owner, error) {
	iter := r.client.Collection(ownersCollection).Documents(ctx)

	var owners []*entity.Owner
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate owners", err)
		}

		var owner entity.Owner
		if err := doc.DataTo(&owner); err != nil {
			continue // Skip malformed documents
		}
		owner.ID = doc.Ref.ID
		owners = append(owners, &owner)
	}

	return owners, nil
}

package shows

import (
	"context"
	"errors"
	"fmt"

	"showsvc/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrPrecondition = errors.New("precondition failed")
)

// Error carries a client-facing message on top of a sentinel domain error.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

type Service struct {
	store ShowStore
}

func NewService(store ShowStore) *Service {
	return &Service{store: store}
}

// GetAllShows returns every stored show. Zero shows is a valid result, the
// caller gets an empty slice rather than an error.
func (s *Service) GetAllShows(ctx context.Context) ([]models.Show, error) {
	shows, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if shows == nil {
		shows = []models.Show{}
	}
	return shows, nil
}

// SearchShows returns shows whose name contains the given substring,
// case-insensitively. No matches is a valid, empty result.
func (s *Service) SearchShows(ctx context.Context, name string) ([]models.Show, error) {
	shows, err := s.store.FindByNameContains(ctx, name)
	if err != nil {
		return nil, err
	}
	if shows == nil {
		shows = []models.Show{}
	}
	return shows, nil
}

// CreateShow inserts a new show; the store assigns the id and creation date.
// Returns the persisted record.
func (s *Service) CreateShow(ctx context.Context, payload models.ShowPayload) (*models.Show, error) {
	show := models.Show{
		Name:  payload.Name,
		Image: payload.Image,
		Type:  payload.Type,
	}
	return s.store.Insert(ctx, show)
}

// EditShow applies the payload to the show matching payload.Name and requires
// that exactly one record was modified. A zero count covers both a missing
// name and a no-op patch; both are rejected.
func (s *Service) EditShow(ctx context.Context, payload models.ShowPayload) (*models.Show, error) {
	modified, err := s.store.UpdateByName(ctx, payload.Name, payload)
	if err != nil {
		return nil, err
	}
	if modified != 1 {
		return nil, &Error{
			Err:     ErrPrecondition,
			Message: "The show with that name does not exist in the system. Please try another name.",
		}
	}
	show, err := s.store.FindOneByName(ctx, payload.Name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// the record was deleted between the update and the re-fetch
			return nil, &Error{Err: ErrNotFound, Message: "The shows could not be found."}
		}
		return nil, err
	}
	return show, nil
}

// DeleteShow removes the show matching name and requires that exactly one
// record was removed. Returns a confirmation message on success.
func (s *Service) DeleteShow(ctx context.Context, name string) (string, error) {
	deleted, err := s.store.DeleteByName(ctx, name)
	if err != nil {
		return "", err
	}
	if deleted != 1 {
		return "", &Error{
			Err:     ErrPrecondition,
			Message: fmt.Sprintf("Failed to delete a show by the name of %s.", name),
		}
	}
	return fmt.Sprintf("Deleted %s from records", name), nil
}

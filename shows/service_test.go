package shows

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"showsvc/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeStore is an in-memory ShowStore mimicking mongo's modified/deleted
// count semantics.
type fakeStore struct {
	shows       []models.Show
	insertCalls int
}

func (f *fakeStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Show, error) {
	for i := range f.shows {
		if f.shows[i].ID == id {
			s := f.shows[i]
			return &s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStore) FindOneByName(_ context.Context, name string) (*models.Show, error) {
	for i := range f.shows {
		if f.shows[i].Name == name {
			s := f.shows[i]
			return &s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStore) FindAll(_ context.Context) ([]models.Show, error) {
	return append([]models.Show(nil), f.shows...), nil
}

func (f *fakeStore) FindByNameContains(_ context.Context, substr string) ([]models.Show, error) {
	var out []models.Show
	for _, s := range f.shows {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(substr)) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) Insert(_ context.Context, show models.Show) (*models.Show, error) {
	f.insertCalls++
	if show.ID.IsZero() {
		show.ID = primitive.NewObjectID()
	}
	if show.Date.IsZero() {
		show.Date = time.Now()
	}
	f.shows = append(f.shows, show)
	return &show, nil
}

// UpdateByName reports 0 modified when the matched document already holds
// the new values, the way mongo's ModifiedCount behaves.
func (f *fakeStore) UpdateByName(_ context.Context, name string, p models.ShowPayload) (int64, error) {
	for i := range f.shows {
		if f.shows[i].Name == name {
			if f.shows[i].Name == p.Name && f.shows[i].Image == p.Image && f.shows[i].Type == p.Type {
				return 0, nil
			}
			f.shows[i].Name = p.Name
			f.shows[i].Image = p.Image
			f.shows[i].Type = p.Type
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) DeleteByName(_ context.Context, name string) (int64, error) {
	for i := range f.shows {
		if f.shows[i].Name == name {
			f.shows = append(f.shows[:i], f.shows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func seed(names ...string) *fakeStore {
	store := &fakeStore{}
	for _, n := range names {
		store.shows = append(store.shows, models.Show{
			ID:    primitive.NewObjectID(),
			Name:  n,
			Image: "poster1",
			Type:  "drama",
			Date:  time.Now(),
		})
	}
	return store
}

func TestCreateShowAssignsIDAndDate(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	created, err := svc.CreateShow(context.Background(), models.ShowPayload{
		Name: "Breaking Bad", Image: "poster1", Type: "drama",
	})
	if err != nil {
		t.Fatalf("CreateShow: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected a generated id")
	}
	if created.Date.IsZero() {
		t.Error("expected a defaulted creation date")
	}

	all, err := svc.GetAllShows(context.Background())
	if err != nil {
		t.Fatalf("GetAllShows: %v", err)
	}
	if len(all) != 1 || all[0].Name != "Breaking Bad" {
		t.Fatalf("expected the created show in the listing, got %+v", all)
	}
}

func TestGetAllShowsEmptyIsNotAnError(t *testing.T) {
	svc := NewService(&fakeStore{})

	all, err := svc.GetAllShows(context.Background())
	if err != nil {
		t.Fatalf("GetAllShows: %v", err)
	}
	if all == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(all) != 0 {
		t.Fatalf("expected no shows, got %d", len(all))
	}
}

func TestSearchShowsCaseInsensitiveSubstring(t *testing.T) {
	svc := NewService(seed("Breaking Bad", "The Wire"))

	matches, err := svc.SearchShows(context.Background(), "bre")
	if err != nil {
		t.Fatalf("SearchShows: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "Breaking Bad" {
		t.Fatalf("expected only Breaking Bad, got %+v", matches)
	}

	none, err := svc.SearchShows(context.Background(), "sopranos")
	if err != nil {
		t.Fatalf("SearchShows: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %+v", none)
	}
}

func TestEditShowMissingNameFails(t *testing.T) {
	store := seed("The Wire")
	svc := NewService(store)

	_, err := svc.EditShow(context.Background(), models.ShowPayload{
		Name: "Oz", Image: "poster2", Type: "drama",
	})
	if !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition, got %v", err)
	}
	if len(store.shows) != 1 {
		t.Fatalf("edit must not create records, have %d", len(store.shows))
	}
}

func TestEditShowUpdatesFields(t *testing.T) {
	store := seed("The Wire")
	origImage := store.shows[0].Image
	origDate := store.shows[0].Date
	svc := NewService(store)

	updated, err := svc.EditShow(context.Background(), models.ShowPayload{
		Name: "The Wire", Image: origImage, Type: "crime",
	})
	if err != nil {
		t.Fatalf("EditShow: %v", err)
	}
	if updated.Type != "crime" {
		t.Errorf("type not updated, got %q", updated.Type)
	}
	if updated.Image != origImage {
		t.Errorf("image changed unexpectedly, got %q", updated.Image)
	}
	if !updated.Date.Equal(origDate) {
		t.Errorf("date changed unexpectedly")
	}
}

func TestDeleteShowTwice(t *testing.T) {
	svc := NewService(seed("The Wire"))

	msg, err := svc.DeleteShow(context.Background(), "The Wire")
	if err != nil {
		t.Fatalf("DeleteShow: %v", err)
	}
	if !strings.Contains(msg, "The Wire") {
		t.Errorf("confirmation does not name the show: %q", msg)
	}

	_, err = svc.DeleteShow(context.Background(), "The Wire")
	if !errors.Is(err, ErrPrecondition) {
		t.Fatalf("expected ErrPrecondition on second delete, got %v", err)
	}
}

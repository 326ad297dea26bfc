package subscription

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"meetapp/internal/models"
	"meetapp/internal/storage"
)

type fakeStorage struct {
	mu      sync.Mutex
	users   map[int64]*models.User
	meetups map[int64]*models.Meetup
	subs    map[int64]*models.Subscription
	nextID  int64

	// forces CreateSubscription to report a concurrent duplicate
	raceDuplicate bool
	failRead      error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		users:   map[int64]*models.User{},
		meetups: map[int64]*models.Meetup{},
		subs:    map[int64]*models.Subscription{},
		nextID:  100,
	}
}

func (f *fakeStorage) addUser(id int64, name string) *models.User {
	u := &models.User{ID: id, Name: name, Email: name + "@example.com"}
	f.users[id] = u
	return u
}

func (f *fakeStorage) addMeetup(id, organizer int64, title string, date time.Time) *models.Meetup {
	m := &models.Meetup{ID: id, UserID: organizer, Title: title, Description: title + " description", Date: date}
	f.meetups[id] = m
	return m
}

func (f *fakeStorage) UserByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failRead != nil {
		return nil, f.failRead
	}
	u, ok := f.users[id]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStorage) MeetupByID(_ context.Context, id int64) (*models.Meetup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failRead != nil {
		return nil, f.failRead
	}
	m, ok := f.meetups[id]
	if !ok {
		return nil, storage.ErrMeetupNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeStorage) details(sub *models.Subscription) models.SubscriptionDetails {
	m := f.meetups[sub.MeetupID]
	organizer := f.users[m.UserID]
	d := models.SubscriptionDetails{Subscription: *sub}
	d.Meetup.Meetup = *m
	if organizer != nil {
		d.Meetup.Organizer = models.Organizer{ID: organizer.ID, Name: organizer.Name}
	}
	return d
}

func (f *fakeStorage) filter(userID int64, keep func(models.SubscriptionDetails) bool) []models.SubscriptionDetails {
	var out []models.SubscriptionDetails
	for _, sub := range f.subs {
		if sub.UserID != userID {
			continue
		}
		d := f.details(sub)
		if keep(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Meetup.Date.Equal(out[j].Meetup.Date) {
			return out[i].Meetup.Date.Before(out[j].Meetup.Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (f *fakeStorage) SubscriptionsByUser(_ context.Context, userID int64) ([]models.SubscriptionDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.filter(userID, func(models.SubscriptionDetails) bool { return true }), nil
}

func (f *fakeStorage) UpcomingSubscriptions(_ context.Context, userID int64, after time.Time) ([]models.SubscriptionDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.filter(userID, func(d models.SubscriptionDetails) bool { return d.Meetup.Date.After(after) }), nil
}

func (f *fakeStorage) CreateSubscription(_ context.Context, userID, meetupID int64) (*models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.raceDuplicate {
		return nil, storage.ErrSubscriptionExists
	}
	for _, sub := range f.subs {
		if sub.UserID == userID && sub.MeetupID == meetupID {
			return nil, storage.ErrSubscriptionExists
		}
	}

	f.nextID++
	sub := &models.Subscription{ID: f.nextID, UserID: userID, MeetupID: meetupID}
	f.subs[sub.ID] = sub
	cp := *sub
	return &cp, nil
}

func (f *fakeStorage) SubscriptionByID(_ context.Context, id int64) (*models.SubscriptionDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub, ok := f.subs[id]
	if !ok {
		return nil, storage.ErrSubscriptionNotFound
	}
	d := f.details(sub)
	return &d, nil
}

func (f *fakeStorage) DeleteSubscription(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.subs[id]; !ok {
		return storage.ErrSubscriptionNotFound
	}
	delete(f.subs, id)
	return nil
}

type enqueued struct {
	kind    string
	payload any
}

type fakeDispatcher struct {
	mu    sync.Mutex
	tasks []enqueued
	err   error
}

func (d *fakeDispatcher) Enqueue(_ context.Context, kind string, payload any) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.err != nil {
		return d.err
	}
	d.tasks = append(d.tasks, enqueued{kind: kind, payload: payload})
	return nil
}

var errDatabaseDown = errors.New("database is down")

package service

import (
	"context"
	"strings"
	"time"

	"travelplanner/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes for the repository interfaces. Setting err makes every
// method fail with it; call counters let tests assert the store was (or was
// not) reached.

type fakeUsers struct {
	byID    map[primitive.ObjectID]*models.User
	byEmail map[string]*models.User
	err     error

	createCalls     int
	appendRefCalls  int
	removeRefCalls  int
	lastRefField    string
	lastRef         primitive.ObjectID
	addTokenCalls   int
	lastTokenID     string
	setPasswordHash string
	updated         *models.User
	deleted         *models.User
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{
		byID:    make(map[primitive.ObjectID]*models.User),
		byEmail: make(map[string]*models.User),
	}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUsers) Create(ctx context.Context, u models.User) (models.User, error) {
	f.createCalls++
	if f.err != nil {
		return models.User{}, f.err
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.byID[u.ID] = &u
	f.byEmail[u.Email] = &u
	return u, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

func (f *fakeUsers) Update(ctx context.Context, id primitive.ObjectID, upd models.UserUpdate) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u := f.byID[id]
	if u == nil {
		return nil, nil
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	f.updated = u
	return u, nil
}

func (f *fakeUsers) Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u := f.byID[id]
	if u == nil {
		return nil, nil
	}
	delete(f.byID, id)
	f.deleted = u
	return u, nil
}

func (f *fakeUsers) SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	if f.err != nil {
		return f.err
	}
	f.setPasswordHash = hash
	return nil
}

func (f *fakeUsers) AddToken(ctx context.Context, id primitive.ObjectID, tokenID string) error {
	f.addTokenCalls++
	f.lastTokenID = tokenID
	return f.err
}

func (f *fakeUsers) AppendRef(ctx context.Context, id primitive.ObjectID, field string, ref primitive.ObjectID) error {
	f.appendRefCalls++
	f.lastRefField = field
	f.lastRef = ref
	return f.err
}

func (f *fakeUsers) RemoveRef(ctx context.Context, id primitive.ObjectID, field string, ref primitive.ObjectID) error {
	f.removeRefCalls++
	f.lastRefField = field
	f.lastRef = ref
	return f.err
}

type fakeDestinations struct {
	byID map[primitive.ObjectID]*models.Destination
	err  error

	findByNameCalls   int
	lastName          string
	findByRangeCalls  int
	lastMin, lastMax  float64
	appendReviewCalls int
	removeReviewCalls int
	getByIDsCalls     int
	lastIDs           []primitive.ObjectID
}

func newFakeDestinations(dests ...*models.Destination) *fakeDestinations {
	f := &fakeDestinations{byID: make(map[primitive.ObjectID]*models.Destination)}
	for _, d := range dests {
		f.byID[d.ID] = d
	}
	return f
}

func (f *fakeDestinations) Create(ctx context.Context, d models.Destination) (models.Destination, error) {
	if f.err != nil {
		return models.Destination{}, f.err
	}
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	f.byID[d.ID] = &d
	return d, nil
}

func (f *fakeDestinations) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeDestinations) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Destination, error) {
	f.getByIDsCalls++
	f.lastIDs = ids
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Destination, 0, len(ids))
	for _, id := range ids {
		if d, ok := f.byID[id]; ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDestinations) List(ctx context.Context) ([]models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Destination, 0, len(f.byID))
	for _, d := range f.byID {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDestinations) Update(ctx context.Context, id primitive.ObjectID, upd models.DestinationUpdate) (*models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	d := f.byID[id]
	if d == nil {
		return nil, nil
	}
	if upd.Name != nil {
		d.Name = *upd.Name
	}
	if upd.Budget != nil {
		d.Budget = *upd.Budget
	}
	return d, nil
}

func (f *fakeDestinations) Delete(ctx context.Context, id primitive.ObjectID) (*models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	d := f.byID[id]
	if d == nil {
		return nil, nil
	}
	delete(f.byID, id)
	return d, nil
}

func (f *fakeDestinations) FindByName(ctx context.Context, name string) ([]models.Destination, error) {
	f.findByNameCalls++
	f.lastName = name
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Destination{}
	for _, d := range f.byID {
		if containsFold(d.Name, name) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDestinations) FindByCategory(ctx context.Context, category string) ([]models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Destination{}
	for _, d := range f.byID {
		if containsFold(d.Category, category) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDestinations) FindByBudgetRange(ctx context.Context, min, max float64) ([]models.Destination, error) {
	f.findByRangeCalls++
	f.lastMin, f.lastMax = min, max
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Destination{}
	for _, d := range f.byID {
		if d.Budget >= min && d.Budget <= max {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDestinations) AppendReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	f.appendReviewCalls++
	return f.err
}

func (f *fakeDestinations) RemoveReview(ctx context.Context, id, reviewID primitive.ObjectID) error {
	f.removeReviewCalls++
	return f.err
}

type fakeReviews struct {
	reviews []models.Review
	err     error

	listCalls        int
	findByDestsCalls int
	lastDests        []primitive.ObjectID
	findByRangeCalls int
	lastMin, lastMax float64
	createCalls      int
}

func (f *fakeReviews) Create(ctx context.Context, r models.Review) (models.Review, error) {
	f.createCalls++
	if f.err != nil {
		return models.Review{}, f.err
	}
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	f.reviews = append(f.reviews, r)
	return r, nil
}

func (f *fakeReviews) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			return &f.reviews[i], nil
		}
	}
	return nil, nil
}

func (f *fakeReviews) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := []models.Review{}
	for _, r := range f.reviews {
		if want[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) List(ctx context.Context) ([]models.Review, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.reviews, nil
}

func (f *fakeReviews) Update(ctx context.Context, id primitive.ObjectID, upd models.ReviewUpdate) (*models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			if upd.Rating != nil {
				f.reviews[i].Rating = *upd.Rating
			}
			if upd.Comment != nil {
				f.reviews[i].Comment = *upd.Comment
			}
			return &f.reviews[i], nil
		}
	}
	return nil, nil
}

func (f *fakeReviews) Delete(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			r := f.reviews[i]
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviews) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Review{}
	for _, r := range f.reviews {
		if r.User == user {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) FindByDestinations(ctx context.Context, dests []primitive.ObjectID) ([]models.Review, error) {
	f.findByDestsCalls++
	f.lastDests = dests
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[primitive.ObjectID]bool, len(dests))
	for _, d := range dests {
		want[d] = true
	}
	out := []models.Review{}
	for _, r := range f.reviews {
		if want[r.Destination] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) FindByRatingRange(ctx context.Context, min, max float64) ([]models.Review, error) {
	f.findByRangeCalls++
	f.lastMin, f.lastMax = min, max
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Review{}
	for _, r := range f.reviews {
		if r.Rating >= min && r.Rating <= max {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeTripPlans struct {
	trips []models.TripPlan
	err   error

	listCalls        int
	findByDestsCalls int
	createCalls      int
}

func (f *fakeTripPlans) Create(ctx context.Context, t models.TripPlan) (models.TripPlan, error) {
	f.createCalls++
	if f.err != nil {
		return models.TripPlan{}, f.err
	}
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	f.trips = append(f.trips, t)
	return t, nil
}

func (f *fakeTripPlans) GetByID(ctx context.Context, id primitive.ObjectID) (*models.TripPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.trips {
		if f.trips[i].ID == id {
			return &f.trips[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTripPlans) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.TripPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := []models.TripPlan{}
	for _, t := range f.trips {
		if want[t.ID] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTripPlans) List(ctx context.Context) ([]models.TripPlan, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.trips, nil
}

func (f *fakeTripPlans) Update(ctx context.Context, id primitive.ObjectID, upd models.TripPlanUpdate) (*models.TripPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.trips {
		if f.trips[i].ID == id {
			if upd.Budget != nil {
				f.trips[i].Budget = *upd.Budget
			}
			if upd.StartDate != nil {
				f.trips[i].StartDate = *upd.StartDate
			}
			if upd.EndDate != nil {
				f.trips[i].EndDate = *upd.EndDate
			}
			return &f.trips[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTripPlans) Delete(ctx context.Context, id primitive.ObjectID) (*models.TripPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.trips {
		if f.trips[i].ID == id {
			t := f.trips[i]
			f.trips = append(f.trips[:i], f.trips[i+1:]...)
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeTripPlans) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.TripPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.TripPlan{}
	for _, t := range f.trips {
		if t.User == user {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTripPlans) FindByDestinations(ctx context.Context, dests []primitive.ObjectID) ([]models.TripPlan, error) {
	f.findByDestsCalls++
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[primitive.ObjectID]bool, len(dests))
	for _, d := range dests {
		want[d] = true
	}
	out := []models.TripPlan{}
	for _, t := range f.trips {
		if want[t.Destination] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTripPlans) FindByBudgetRange(ctx context.Context, min, max float64) ([]models.TripPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.TripPlan{}
	for _, t := range f.trips {
		if t.Budget >= min && t.Budget <= max {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeBookings struct {
	bookings []models.Booking
	err      error

	listCalls     int
	upcomingCalls int
	lastFrom      time.Time
	createCalls   int
}

func (f *fakeBookings) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	f.createCalls++
	if f.err != nil {
		return models.Booking{}, f.err
	}
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeBookings) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookings) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := []models.Booking{}
	for _, b := range f.bookings {
		if want[b.ID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) List(ctx context.Context) ([]models.Booking, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

func (f *fakeBookings) Update(ctx context.Context, id primitive.ObjectID, upd models.BookingUpdate) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			if upd.Status != nil {
				f.bookings[i].Status = *upd.Status
			}
			return &f.bookings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookings) Delete(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookings) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Booking{}
	for _, b := range f.bookings {
		if b.User == user {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) FindByStatus(ctx context.Context, status string) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Booking{}
	for _, b := range f.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) FindByDestinations(ctx context.Context, dests []primitive.ObjectID) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[primitive.ObjectID]bool, len(dests))
	for _, d := range dests {
		want[d] = true
	}
	out := []models.Booking{}
	for _, b := range f.bookings {
		if want[b.Destination] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) FindUpcomingByUser(ctx context.Context, user primitive.ObjectID, from time.Time) ([]models.Booking, error) {
	f.upcomingCalls++
	f.lastFrom = from
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Booking{}
	for _, b := range f.bookings {
		if b.User == user && !b.StartDate.Before(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

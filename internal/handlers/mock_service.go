package handlers

import (
	"context"
	"net/http"

	"travelplanner/internal/models"
	"travelplanner/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginToken string
	loginErr   error
	changeErr  error
	authUser   *models.User
	authErr    error

	lastLoginEmail    string
	lastLoginPassword string
	lastChangeUserID  string
	lastNewPassword   string
	lastToken         string
	authCalls         int
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (string, error) {
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) ChangePassword(ctx context.Context, userID, newPassword string) error {
	m.lastChangeUserID = userID
	m.lastNewPassword = newPassword
	return m.changeErr
}

func (m *mockAuth) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	m.authCalls++
	m.lastToken = accessToken
	if m.authErr != nil {
		return nil, m.authErr
	}
	return m.authUser, nil
}

type mockUsers struct {
	user          *models.User
	trips         []models.TripPlan
	upcomingTrips []models.TripPlan
	pastTrips     []models.TripPlan
	bookings      []models.Booking
	reviews       []models.Review
	err           error

	lastCreateUsername string
	lastCreateEmail    string
	lastCreatePassword string
	lastUpdate         models.UserUpdate
	createCalls        int
	deleteCalls        int
}

func (m *mockUsers) Create(ctx context.Context, username, email, password string) (models.User, error) {
	m.createCalls++
	m.lastCreateUsername = username
	m.lastCreateEmail = email
	m.lastCreatePassword = password
	if m.err != nil {
		return models.User{}, m.err
	}
	if m.user != nil {
		return *m.user, nil
	}
	return models.User{Username: username, Email: email}, nil
}

func (m *mockUsers) Get(ctx context.Context, id string) (*models.User, error) {
	return m.user, m.err
}

func (m *mockUsers) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	m.lastUpdate = upd
	return m.user, m.err
}

func (m *mockUsers) Delete(ctx context.Context, id string) (*models.User, error) {
	m.deleteCalls++
	return m.user, m.err
}

func (m *mockUsers) TripPlans(ctx context.Context, id string) ([]models.TripPlan, error) {
	return m.trips, m.err
}

func (m *mockUsers) UpcomingTrips(ctx context.Context, id string) ([]models.TripPlan, error) {
	return m.upcomingTrips, m.err
}

func (m *mockUsers) PastTrips(ctx context.Context, id string) ([]models.TripPlan, error) {
	return m.pastTrips, m.err
}

func (m *mockUsers) Bookings(ctx context.Context, id string) ([]models.Booking, error) {
	return m.bookings, m.err
}

func (m *mockUsers) Reviews(ctx context.Context, id string) ([]models.Review, error) {
	return m.reviews, m.err
}

type mockDestinations struct {
	dest  *models.Destination
	dests []models.Destination
	err   error

	lastCreate      models.Destination
	lastName        string
	lastCategory    string
	lastMin         float64
	lastMax         float64
	createCalls     int
	topRatedCalls   int
	rangeCalls      int
	searchNameCalls int
}

func (m *mockDestinations) Create(ctx context.Context, d models.Destination) (models.Destination, error) {
	m.createCalls++
	m.lastCreate = d
	if m.err != nil {
		return models.Destination{}, m.err
	}
	return d, nil
}

func (m *mockDestinations) Get(ctx context.Context, id string) (*models.Destination, error) {
	return m.dest, m.err
}

func (m *mockDestinations) Update(ctx context.Context, id string, upd models.DestinationUpdate) (*models.Destination, error) {
	return m.dest, m.err
}

func (m *mockDestinations) Delete(ctx context.Context, id string) (*models.Destination, error) {
	return m.dest, m.err
}

func (m *mockDestinations) List(ctx context.Context) ([]models.Destination, error) {
	return m.dests, m.err
}

func (m *mockDestinations) SearchByName(ctx context.Context, name string) ([]models.Destination, error) {
	m.searchNameCalls++
	m.lastName = name
	return m.dests, m.err
}

func (m *mockDestinations) SearchByCategory(ctx context.Context, category string) ([]models.Destination, error) {
	m.lastCategory = category
	return m.dests, m.err
}

func (m *mockDestinations) SearchByBudgetRange(ctx context.Context, min, max float64) ([]models.Destination, error) {
	m.rangeCalls++
	m.lastMin, m.lastMax = min, max
	return m.dests, m.err
}

func (m *mockDestinations) TopRated(ctx context.Context) ([]models.Destination, error) {
	m.topRatedCalls++
	return m.dests, m.err
}

type mockReviews struct {
	review  *models.Review
	reviews []models.Review
	err     error

	lastCreate  models.Review
	lastName    string
	lastMin     float64
	lastMax     float64
	createCalls int
	rangeCalls  int
}

func (m *mockReviews) Create(ctx context.Context, r models.Review) (models.Review, error) {
	m.createCalls++
	m.lastCreate = r
	if m.err != nil {
		return models.Review{}, m.err
	}
	return r, nil
}

func (m *mockReviews) Get(ctx context.Context, id string) (*models.Review, error) {
	return m.review, m.err
}

func (m *mockReviews) Update(ctx context.Context, id string, upd models.ReviewUpdate) (*models.Review, error) {
	return m.review, m.err
}

func (m *mockReviews) Delete(ctx context.Context, id string) (*models.Review, error) {
	return m.review, m.err
}

func (m *mockReviews) List(ctx context.Context) ([]models.Review, error) {
	return m.reviews, m.err
}

func (m *mockReviews) SearchByDestination(ctx context.Context, destinationName string) ([]models.Review, error) {
	m.lastName = destinationName
	return m.reviews, m.err
}

func (m *mockReviews) SearchByRatingRange(ctx context.Context, min, max float64) ([]models.Review, error) {
	m.rangeCalls++
	m.lastMin, m.lastMax = min, max
	return m.reviews, m.err
}

type mockTrips struct {
	trip  *models.TripPlan
	trips []models.TripPlan
	err   error

	lastCreate   models.TripPlan
	lastName     string
	lastUserID   string
	createCalls  int
	popularCalls int
}

func (m *mockTrips) Create(ctx context.Context, t models.TripPlan) (models.TripPlan, error) {
	m.createCalls++
	m.lastCreate = t
	if m.err != nil {
		return models.TripPlan{}, m.err
	}
	return t, nil
}

func (m *mockTrips) Get(ctx context.Context, id string) (*models.TripPlan, error) {
	return m.trip, m.err
}

func (m *mockTrips) Update(ctx context.Context, id string, upd models.TripPlanUpdate) (*models.TripPlan, error) {
	return m.trip, m.err
}

func (m *mockTrips) Delete(ctx context.Context, id string) (*models.TripPlan, error) {
	return m.trip, m.err
}

func (m *mockTrips) List(ctx context.Context) ([]models.TripPlan, error) {
	return m.trips, m.err
}

func (m *mockTrips) ListByUser(ctx context.Context, userID string) ([]models.TripPlan, error) {
	m.lastUserID = userID
	return m.trips, m.err
}

func (m *mockTrips) SearchByDestination(ctx context.Context, destinationName string) ([]models.TripPlan, error) {
	m.lastName = destinationName
	return m.trips, m.err
}

func (m *mockTrips) SearchByBudgetRange(ctx context.Context, min, max float64) ([]models.TripPlan, error) {
	return m.trips, m.err
}

func (m *mockTrips) Popular(ctx context.Context) ([]models.TripPlan, error) {
	m.popularCalls++
	return m.trips, m.err
}

type mockBookings struct {
	booking  *models.Booking
	bookings []models.Booking
	err      error

	lastCreate    models.Booking
	lastStatus    string
	lastName      string
	lastUserID    string
	createCalls   int
	upcomingCalls int
}

func (m *mockBookings) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	m.createCalls++
	m.lastCreate = b
	if m.err != nil {
		return models.Booking{}, m.err
	}
	return b, nil
}

func (m *mockBookings) Get(ctx context.Context, id string) (*models.Booking, error) {
	return m.booking, m.err
}

func (m *mockBookings) Update(ctx context.Context, id string, upd models.BookingUpdate) (*models.Booking, error) {
	return m.booking, m.err
}

func (m *mockBookings) Delete(ctx context.Context, id string) (*models.Booking, error) {
	return m.booking, m.err
}

func (m *mockBookings) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	m.lastUserID = userID
	return m.bookings, m.err
}

func (m *mockBookings) SearchByStatus(ctx context.Context, status string) ([]models.Booking, error) {
	m.lastStatus = status
	return m.bookings, m.err
}

func (m *mockBookings) SearchByDestination(ctx context.Context, destinationName string) ([]models.Booking, error) {
	m.lastName = destinationName
	return m.bookings, m.err
}

func (m *mockBookings) UpcomingForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	m.upcomingCalls++
	m.lastUserID = userID
	return m.bookings, m.err
}

// ---- Test helpers ----

// newTestRouter builds a router around the given (mocked) services.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

// authHeader builds the Authorization header for an authenticated request.
func authHeader(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

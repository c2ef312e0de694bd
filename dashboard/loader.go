// Package dashboard loads and holds the data behind the authenticated
// screen: the restaurant directory for everyone, plus the personal orders
// panel for customers.
package dashboard

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"foodiefind-client/backend"
	"foodiefind-client/models"
)

// loadErrorMessage is deliberately generic; the underlying cause goes to
// the log, not the screen.
const loadErrorMessage = "Could not load dashboard data."

// ErrCreateForbidden rejects restaurant creation for roles without the
// capability, before any request is made.
var ErrCreateForbidden = errors.New("role may not create restaurants")

// DataClient is the slice of the backend client the loader needs.
type DataClient interface {
	ListRestaurants(ctx context.Context, opts backend.ListOptions) ([]models.Restaurant, error)
	ListOrders(ctx context.Context, opts backend.ListOptions) ([]models.Order, error)
	CreateRestaurant(ctx context.Context, fields backend.RestaurantFields) (*models.Restaurant, error)
}

// State is a snapshot of the dashboard data. A failed load keeps the lists
// from the last successful one.
type State struct {
	Restaurants []models.Restaurant
	Orders      []models.Order
	Phase       Phase
	Err         string
}

// RestaurantInput is the creation form. Title and address are required
// client-side; the rest is optional.
type RestaurantInput struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	Address     string `form:"address" validate:"required"`
	Phone       string `form:"phone"`
}

type Loader struct {
	client   DataClient
	validate *validator.Validate
	log      zerolog.Logger

	mu    sync.Mutex
	state State
}

func NewLoader(client DataClient, log zerolog.Logger) *Loader {
	return &Loader{
		client:   client,
		validate: validator.New(),
		log:      log.With().Str("component", "dashboard").Logger(),
		state:    State{Phase: PhaseIdle},
	}
}

// State returns the current snapshot.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Loader) setPhase(to Phase) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := CanTransition(l.state.Phase, to); err != nil {
		// Programming error; the loader is the only writer.
		l.log.Error().Err(err).Msg("dashboard phase misuse")
	}
	l.state.Phase = to
}

// Load fetches the dashboard data for the given user. Restaurants are
// fetched for every role; orders only for customers, filtered to their own.
// A failed load leaves previously loaded lists untouched and reports the
// generic error message.
func (l *Loader) Load(ctx context.Context, user *models.User) error {
	l.setPhase(PhaseLoading)
	l.mu.Lock()
	l.state.Err = ""
	l.mu.Unlock()

	restaurants, err := l.client.ListRestaurants(ctx, backend.ListOptions{
		Include: []string{"owner"},
		Sort:    backend.NewestFirst,
	})
	if err != nil {
		return l.fail(err)
	}

	var orders []models.Order
	if models.HasOrdersPanel(user.Role) {
		orders, err = l.client.ListOrders(ctx, backend.ListOptions{
			Filter:  map[string]string{"customerId": strconv.FormatUint(uint64(user.ID), 10)},
			Include: []string{"restaurant"},
			Sort:    backend.NewestFirst,
		})
		if err != nil {
			return l.fail(err)
		}
	}

	l.mu.Lock()
	l.state.Restaurants = restaurants
	if models.HasOrdersPanel(user.Role) {
		l.state.Orders = orders
	}
	l.mu.Unlock()
	l.setPhase(PhaseLoaded)
	l.log.Debug().Int("restaurants", len(restaurants)).Int("orders", len(orders)).Msg("dashboard loaded")
	return nil
}

func (l *Loader) fail(err error) error {
	l.log.Error().Err(err).Msg("dashboard load failed")
	l.mu.Lock()
	l.state.Err = loadErrorMessage
	l.mu.Unlock()
	l.setPhase(PhaseError)
	return err
}

// CreateRestaurant validates the form, checks the role capability and
// submits the record. On success the created restaurant is prepended to the
// in-memory list; on failure the list is unchanged so the form can retry.
func (l *Loader) CreateRestaurant(ctx context.Context, user *models.User, in RestaurantInput) (*models.Restaurant, error) {
	if user == nil || !models.CanCreateRestaurant(user.Role) {
		return nil, ErrCreateForbidden
	}
	if err := l.validate.Struct(in); err != nil {
		return nil, err
	}

	created, err := l.client.CreateRestaurant(ctx, backend.RestaurantFields{
		Title:       in.Title,
		Description: in.Description,
		Address:     in.Address,
		Phone:       in.Phone,
	})
	if err != nil {
		l.log.Error().Err(err).Str("title", in.Title).Msg("restaurant creation failed")
		return nil, err
	}

	l.mu.Lock()
	l.state.Restaurants = append([]models.Restaurant{*created}, l.state.Restaurants...)
	l.mu.Unlock()
	l.log.Info().Uint("id", created.ID).Str("title", created.Title).Msg("restaurant created")
	return created, nil
}

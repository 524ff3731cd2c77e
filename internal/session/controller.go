// Package session owns the process-wide current-user state. It is the only
// writer of that state: the two defined transitions (login/restore and
// logout/invalidation) are serialized here, and every consumer reads through
// Current.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"panel/internal/entities"
	"panel/pkg/logger"
)

// Notice is delivered to subscribers when the session is invalidated by the
// server, so surfaces can show a one-time "session expired" message.
type Notice struct {
	Reason string
}

type Controller struct {
	mu          sync.Mutex
	gateway     AuthGateway
	store       CredentialStore
	log         controllerLogger
	current     *entities.Session
	subscribers map[int]chan Notice
	nextSubID   int
}

// New builds the controller and registers it as the sole handler on the
// invalidation bus. The registration happens once per process lifetime.
func New(gateway AuthGateway, store CredentialStore, bus *InvalidationBus, log controllerLogger) *Controller {
	c := &Controller{
		gateway:     gateway,
		store:       store,
		log:         log,
		subscribers: make(map[int]chan Notice),
	}
	bus.bind(c.handleInvalidation)
	return c
}

// Restore adopts the persisted session at process start, if one exists.
func (c *Controller) Restore() (*entities.Session, error) {
	session, err := c.store.Load()
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	c.mu.Lock()
	c.current = session
	c.mu.Unlock()

	c.log.Info("session restored",
		logger.NewField("username", session.User.Username),
		logger.NewField("role", session.User.Role),
	)
	return session, nil
}

// Login transitions Anonymous -> Authenticated. The credential is persisted
// before the in-memory state is adopted so a non-nil session always mirrors
// durable storage.
func (c *Controller) Login(ctx context.Context, username, password string) (*entities.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, ErrMissingCredentials
	}

	session, err := c.gateway.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := c.store.Save(session); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	c.mu.Lock()
	c.current = session
	c.mu.Unlock()

	c.log.Info("login",
		logger.NewField("username", session.User.Username),
		logger.NewField("role", session.User.Role),
	)
	return session, nil
}

// Logout transitions Authenticated -> Anonymous, clearing the credential
// store synchronously.
func (c *Controller) Logout() error {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	c.log.Info("logout")
	return nil
}

// Current reports the session synchronously. The returned value is a copy;
// callers cannot mutate controller state through it.
func (c *Controller) Current() (entities.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return entities.Session{}, false
	}
	return *c.current, true
}

// Subscribe registers an expiry-notice channel. The returned function
// unregisters it. Delivery is non-blocking; a slow subscriber drops notices.
func (c *Controller) Subscribe() (<-chan Notice, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSubID
	c.nextSubID++

	ch := make(chan Notice, 1)
	c.subscribers[id] = ch

	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subscribers, id)
	}
}

// handleInvalidation is the bus handler. The transport client already
// cleared the credential store; clearing again is harmless and keeps the
// mirror invariant when the signal originates elsewhere. The transition and
// the notice happen at most once: a signal received while already anonymous
// is a no-op, however many concurrent requests observed the same 401.
func (c *Controller) handleInvalidation(reason string) {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		return
	}
	c.current = nil
	subscribers := make([]chan Notice, 0, len(c.subscribers))
	for _, ch := range c.subscribers {
		subscribers = append(subscribers, ch)
	}
	c.mu.Unlock()

	if err := c.store.Clear(); err != nil {
		c.log.Error("clear credentials on invalidation", logger.NewField("error", err))
	}

	c.log.Warn("session invalidated", logger.NewField("reason", reason))

	notice := Notice{Reason: reason}
	for _, ch := range subscribers {
		select {
		case ch <- notice:
		default:
		}
	}
}

// Package session keeps the per-user screen holders of signed-in clients.
//
// A session is keyed by the upstream bearer token. It lives in memory until it
// idles out or the token expires; after a restart it is rebuilt from the
// credential store on first use.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/viewmodel"
)

// ErrNoSession is returned for a missing, unknown or expired token.
var ErrNoSession = errors.New("no session")

// Repositories are shared by every session; the user is picked from the
// token carried in the request context.
type Repositories struct {
	Books      repository.BookRepository
	Authors    repository.AuthorRepository
	Categories repository.CategoryRepository
	Cart       repository.CartRepository
	Favorites  repository.FavoriteRepository
	Follows    repository.FollowRepository
	Orders     repository.OrderRepository
	Users      repository.UserRepository
}

// Session is one signed-in user and the state of their screens.
type Session struct {
	Token     string
	User      model.UserResponse
	ExpiresAt time.Time

	Home         *viewmodel.Home
	Search       *viewmodel.Search
	BookDetail   *viewmodel.BookDetail
	AuthorList   *viewmodel.AuthorList
	AuthorDetail *viewmodel.AuthorDetail
	Cart         *viewmodel.Cart
	Favorites    *viewmodel.Favorites
	Following    *viewmodel.Following
	Orders       *viewmodel.Orders
	Profile      *viewmodel.Profile

	mu       sync.Mutex
	lastSeen time.Time
}

func newSession(r Repositories, token string, user model.UserResponse, expiresAt, now time.Time) *Session {
	return &Session{
		Token:        token,
		User:         user,
		ExpiresAt:    expiresAt,
		Home:         viewmodel.NewHome(r.Books, r.Categories),
		Search:       viewmodel.NewSearch(r.Books),
		BookDetail:   viewmodel.NewBookDetail(r.Books, r.Favorites, r.Cart),
		AuthorList:   viewmodel.NewAuthorList(r.Authors),
		AuthorDetail: viewmodel.NewAuthorDetail(r.Authors, r.Books, r.Follows),
		Cart:         viewmodel.NewCart(r.Cart, r.Orders),
		Favorites:    viewmodel.NewFavorites(r.Favorites),
		Following:    viewmodel.NewFollowing(r.Follows),
		Orders:       viewmodel.NewOrders(r.Orders),
		Profile:      viewmodel.NewProfile(r.Users),
		lastSeen:     now,
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, idle time.Duration) bool {
	if !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt) {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return idle > 0 && now.Sub(s.lastSeen) >= idle
}

// Registry maps bearer tokens to sessions.
type Registry struct {
	repos Repositories
	creds repository.CredentialStore
	ttl   time.Duration
	log   logrus.FieldLogger
	now   func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(repos Repositories, creds repository.CredentialStore, ttl time.Duration, log logrus.FieldLogger) *Registry {
	return &Registry{
		repos:    repos,
		creds:    creds,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature;
// the upstream is the one that checks it. ok is false for opaque tokens.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Open starts a session for a fresh login and persists its credential.
func (r *Registry) Open(ctx context.Context, auth model.AuthResponse) (*Session, error) {
	if strings.TrimSpace(auth.Token) == "" {
		return nil, ErrNoSession
	}
	now := r.now()
	expiresAt, ok := TokenExpiry(auth.Token)
	if !ok && r.ttl > 0 {
		expiresAt = now.Add(r.ttl)
	}

	err := r.creds.Save(ctx, model.User{
		ID:        auth.User.ID,
		Name:      auth.User.Name,
		Email:     auth.User.Email,
		Token:     auth.Token,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("save credential: %w", err)
	}

	// Only a JWT's own expiry bounds the in-memory session; opaque tokens idle out.
	var hard time.Time
	if ok {
		hard = expiresAt
	}
	s := newSession(r.repos, auth.Token, auth.User, hard, now)

	r.mu.Lock()
	r.sessions[auth.Token] = s
	r.mu.Unlock()
	return s, nil
}

// Get returns the live session for token, restoring it from the credential
// store when it is not in memory.
func (r *Registry) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	now := r.now()

	r.mu.RLock()
	s, ok := r.sessions[token]
	r.mu.RUnlock()

	if ok {
		if s.expired(now, r.ttl) {
			r.drop(token)
			return nil, ErrNoSession
		}
		s.touch(now)
		return s, nil
	}

	u, err := r.creds.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	if u.Expired(now) {
		if err := r.creds.DeleteByToken(ctx, token); err != nil {
			r.log.WithError(err).Warn("delete expired credential")
		}
		return nil, ErrNoSession
	}

	var hard time.Time
	if exp, ok := TokenExpiry(token); ok {
		hard = exp
	}
	user := model.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.sessions[token]; ok {
		existing.touch(now)
		return existing, nil
	}
	s = newSession(r.repos, token, user, hard, now)
	r.sessions[token] = s
	r.log.WithFields(logrus.Fields{"component": "session", "event": "restore", "user_id": u.ID}).Info("session restored")
	return s, nil
}

// Close ends the session and forgets its credential.
func (r *Registry) Close(ctx context.Context, token string) error {
	r.drop(token)
	if err := r.creds.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

func (r *Registry) drop(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}

// Len is the number of sessions held in memory.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep evicts expired sessions and deletes expired credentials.
// It returns the number of evicted in-memory sessions.
func (r *Registry) Sweep(ctx context.Context) (int, error) {
	now := r.now()

	r.mu.Lock()
	evicted := 0
	for token, s := range r.sessions {
		if s.expired(now, r.ttl) {
			delete(r.sessions, token)
			evicted++
		}
	}
	r.mu.Unlock()

	deleted, err := r.creds.DeleteExpired(ctx, now)
	if err != nil {
		return evicted, fmt.Errorf("delete expired credentials: %w", err)
	}
	if evicted > 0 || deleted > 0 {
		r.log.WithFields(logrus.Fields{
			"component":   "session",
			"event":       "sweep",
			"evicted":     evicted,
			"credentials": deleted,
		}).Info("expired sessions removed")
	}
	return evicted, nil
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := r.Sweep(ctx); err != nil {
				r.log.WithError(err).Warn("session sweep failed")
			}
		}
	}
}

package router

import (
	"sync"

	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Token identifies one view activation. A query started under a token must
// check IsCurrent before applying its result; navigation supersedes every
// token issued before it.
type Token struct {
	gen uint64
	id  uuid.UUID
}

type Router struct {
	mu      sync.Mutex
	current Route
	token   Token
	log     *zap.Logger
}

func New(log *zap.Logger) *Router {
	return &Router{
		current: HomeRoute{},
		token:   Token{gen: 1, id: utils.GenerateActivationToken()},
		log:     log.With(zap.String("component", "router")),
	}
}

func (r *Router) Current() (Route, Token) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current, r.token
}

// Navigate replaces the current route wholesale and issues the activation
// token for the new view instance.
func (r *Router) Navigate(route Route) Token {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = route
	r.token = Token{gen: r.token.gen + 1, id: utils.GenerateActivationToken()}

	r.log.Debug("Route changed",
		zap.String("view", route.View()),
		zap.Uint64("generation", r.token.gen),
	)

	return r.token
}

// IsCurrent reports whether tok still belongs to the active view instance.
func (r *Router) IsCurrent(tok Token) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.token == tok
}

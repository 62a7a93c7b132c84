package common

import (
	"context"
	"fmt"
	"reflect"
)

// Request is a command or query value, usually a pointer to a struct
type Request interface{}

// Response is whatever a handler returns for its request
type Response interface{}

// RequestHandler handles one request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc adapts a function to the handler signature used by middleware
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

// Middleware runs around a handler. It must call next to reach the handler.
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)

// Mediator routes each request to the handler registered for its dynamic type
type Mediator interface {
	Send(ctx context.Context, request Request) (Response, error)
	Register(requestType reflect.Type, handler RequestHandler) error
	Use(middleware Middleware)
}

type mediator struct {
	routes      map[reflect.Type]HandlerFunc
	middlewares []Middleware
}

func NewMediator() Mediator {
	return &mediator{routes: make(map[reflect.Type]HandlerFunc)}
}

func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	switch {
	case requestType == nil:
		return fmt.Errorf("request type cannot be nil")
	case handler == nil:
		return fmt.Errorf("handler for %s cannot be nil", requestType)
	}

	if _, taken := m.routes[requestType]; taken {
		return fmt.Errorf("handler already registered for type %s", requestType)
	}
	m.routes[requestType] = handler.Handle
	return nil
}

// Use appends a middleware. The first one added is the outermost.
func (m *mediator) Use(middleware Middleware) {
	m.middlewares = append(m.middlewares, middleware)
}

func (m *mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	handle, ok := m.routes[reflect.TypeOf(request)]
	if !ok {
		return nil, fmt.Errorf("no handler registered for type %T", request)
	}

	return m.wrap(handle)(ctx, request)
}

// wrap folds the middlewares around handle, innermost last
func (m *mediator) wrap(handle HandlerFunc) HandlerFunc {
	for i := len(m.middlewares) - 1; i >= 0; i-- {
		handle = bind(m.middlewares[i], handle)
	}
	return handle
}

func bind(mw Middleware, next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, request Request) (Response, error) {
		return mw(ctx, request, next)
	}
}

// RegisterHandler registers handler for the request type T
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	return m.Register(reflect.TypeFor[T](), handler)
}

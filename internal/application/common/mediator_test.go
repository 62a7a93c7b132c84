package common_test

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/carpool-go/internal/application/common"
)

type pingRequest struct{ fail bool }

type pingHandler struct{}

func (pingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if request.(*pingRequest).fail {
		return nil, errors.New("ping failed")
	}
	return "pong", nil
}

func TestMediator_Send(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](m, pingHandler{}))

	resp, err := m.Send(context.Background(), &pingRequest{})

	require.NoError(t, err)
	assert.Equal(t, "pong", resp)
}

func TestMediator_Errors(t *testing.T) {
	m := common.NewMediator()

	_, err := m.Send(context.Background(), &pingRequest{})
	assert.ErrorContains(t, err, "no handler registered")

	_, err = m.Send(context.Background(), nil)
	assert.ErrorContains(t, err, "request cannot be nil")

	assert.Error(t, m.Register(nil, pingHandler{}))
	assert.Error(t, m.Register(reflect.TypeOf(&pingRequest{}), nil))

	require.NoError(t, m.Register(reflect.TypeOf(&pingRequest{}), pingHandler{}))
	assert.ErrorContains(t, m.Register(reflect.TypeOf(&pingRequest{}), pingHandler{}), "already registered")
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingRequest](m, pingHandler{}))

	var calls []string
	record := func(name string) common.Middleware {
		return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
			calls = append(calls, name+" before")
			resp, err := next(ctx, request)
			calls = append(calls, name+" after")
			return resp, err
		}
	}
	m.Use(record("outer"))
	m.Use(record("inner"))

	_, err := m.Send(context.Background(), &pingRequest{})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer before", "inner before", "inner after", "outer after"}, calls)
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	m := common.NewMediator()
	m.Use(common.LoggingMiddleware())
	require.NoError(t, common.RegisterHandler[*pingRequest](m, pingHandler{}))

	_, err := m.Send(ctx, &pingRequest{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.Contains(t, buf.String(), `"message":"request handled"`)
	assert.Contains(t, buf.String(), `*common_test.pingRequest`)

	buf.Reset()
	_, err = m.Send(ctx, &pingRequest{fail: true})
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"error":"ping failed"`)
}

package common_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/realmfleet-go/internal/application/common"
)

type pingCommand struct{ Value int }

type pingHandler struct{}

func (h *pingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd := request.(*pingCommand)
	if cmd.Value < 0 {
		return nil, errors.New("negative ping")
	}
	return cmd.Value * 2, nil
}

type recordingLogger struct {
	levels []string
}

func (l *recordingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.levels = append(l.levels, level)
}

func TestMediator_SendDispatchesThroughMiddleware(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingCommand](m, &pingHandler{}))
	var order []string
	m.Use(func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		order = append(order, "outer")
		return next(ctx, request)
	})
	m.Use(func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		order = append(order, "inner")
		return next(ctx, request)
	})

	response, err := m.Send(context.Background(), &pingCommand{Value: 21})

	require.NoError(t, err)
	assert.Equal(t, 42, response)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestMediator_RejectsDuplicatesAndUnknownRequests(t *testing.T) {
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingCommand](m, &pingHandler{}))

	assert.Error(t, common.RegisterHandler[*pingCommand](m, &pingHandler{}))
	_, err := m.Send(context.Background(), struct{}{})
	assert.Error(t, err)
	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestLoggingMiddleware_LogsFailures(t *testing.T) {
	logger := &recordingLogger{}
	ctx := common.WithLogger(context.Background(), logger)
	m := common.NewMediator()
	require.NoError(t, common.RegisterHandler[*pingCommand](m, &pingHandler{}))
	m.Use(common.LoggingMiddleware)

	_, err := m.Send(ctx, &pingCommand{Value: -1})
	assert.Error(t, err)
	_, err = m.Send(ctx, &pingCommand{Value: 1})
	assert.NoError(t, err)

	assert.Equal(t, []string{"ERROR", "DEBUG"}, logger.levels)
}

func TestLoggerFromContext_FallsBackToNoOp(t *testing.T) {
	logger := common.LoggerFromContext(context.Background())

	assert.NotPanics(t, func() { logger.Log("INFO", "nothing listens", nil) })
}

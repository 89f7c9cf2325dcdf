package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *MockChannel) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockCloser struct {
	mock.Mock
}

func (m *MockCloser) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestPublisher_PublishJSON(t *testing.T) {
	ch := &MockChannel{}
	var sent amqp.Publishing
	ch.On("PublishWithContext", mock.Anything, "", "site-events", false, false, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(5).(amqp.Publishing) }).
		Return(nil)

	p := newPublisher(ch, nil, "", "site-events", zap.NewNop())
	err := p.PublishJSON(context.Background(), map[string]interface{}{"type": "project.uploaded", "project": "site"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", sent.ContentType)
	assert.Equal(t, amqp.Persistent, sent.DeliveryMode)
	var body map[string]interface{}
	require.NoError(t, sonic.Unmarshal(sent.Body, &body))
	assert.Equal(t, "project.uploaded", body["type"])
	assert.Equal(t, "site", body["project"])
	ch.AssertExpectations(t)
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &MockChannel{}
	cause := errors.New("channel closed")
	ch.On("PublishWithContext", mock.Anything, "", "site-events", false, false, mock.Anything).Return(cause)

	p := newPublisher(ch, nil, "", "site-events", zap.NewNop())
	err := p.PublishJSON(context.Background(), map[string]string{"type": "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "publish to site-events")
}

func TestPublisher_CloseClosesChannelAndConnection(t *testing.T) {
	ch := &MockChannel{}
	conn := &MockCloser{}
	var order []string
	ch.On("Close").Run(func(mock.Arguments) { order = append(order, "channel") }).Return(nil)
	conn.On("Close").Run(func(mock.Arguments) { order = append(order, "connection") }).Return(nil)

	p := newPublisher(ch, conn, "", "site-events", zap.NewNop())
	require.NoError(t, p.Close())

	assert.Equal(t, []string{"channel", "connection"}, order)
	ch.AssertExpectations(t)
	conn.AssertExpectations(t)
}

func TestPublisher_CloseStillClosesConnectionOnChannelError(t *testing.T) {
	ch := &MockChannel{}
	conn := &MockCloser{}
	cause := errors.New("already closed")
	ch.On("Close").Return(cause)
	conn.On("Close").Return(nil)

	p := newPublisher(ch, conn, "", "site-events", zap.NewNop())
	err := p.Close()
	assert.ErrorIs(t, err, cause)
	conn.AssertExpectations(t)
}

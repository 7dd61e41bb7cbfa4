package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_relay/internal/feature/publish/domain/entity"
	"market_relay/internal/platform/contentstore"
	"market_relay/internal/shared/apperr"
)

type put struct {
	path    string
	payload any
}

// mockSink はSinkインターフェースのモック実装です。
type mockSink struct {
	puts     []put
	failOn   string
	restored []contentstore.Revision
}

func (m *mockSink) Path(name string) string { return "data/" + name }

func (m *mockSink) Put(_ context.Context, path string, payload any, _ string) (contentstore.Revision, error) {
	if path == m.failOn {
		return contentstore.Revision{}, apperr.ErrPublish
	}
	m.puts = append(m.puts, put{path: path, payload: payload})
	return contentstore.Revision{Path: path, SHA: "sha-" + path}, nil
}

func (m *mockSink) Restore(_ context.Context, rev contentstore.Revision, _ string) error {
	m.restored = append(m.restored, rev)
	return nil
}

var fixedNow = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func newUsecase(sink Sink, producers map[entity.Dataset]Producer) *PublishUsecase {
	u := NewPublishUsecase(sink, producers)
	u.now = func() time.Time { return fixedNow }
	return u
}

func producers(err error) map[entity.Dataset]Producer {
	return map[entity.Dataset]Producer{
		entity.CDSC: func(context.Context) (any, int, error) {
			if err != nil {
				return nil, 0, err
			}
			return []string{"a", "b"}, 2, nil
		},
	}
}

func TestPublishUsecase_Publish(t *testing.T) {
	t.Parallel()

	sink := &mockSink{}
	got, err := newUsecase(sink, producers(nil)).Publish(context.Background(), "cdsc")
	require.NoError(t, err)

	assert.Equal(t, entity.Publication{Dataset: entity.CDSC, Path: "data/cdsc.json", Count: 2, RefreshedAt: fixedNow}, got)
	require.Len(t, sink.puts, 2)
	assert.Equal(t, put{path: "data/cdsc.json", payload: []string{"a", "b"}}, sink.puts[0])
	assert.Equal(t, put{
		path:    "data/cdsc.meta.json",
		payload: entity.Meta{Dataset: entity.CDSC, Count: 2, RefreshedAt: "2024-01-15T09:30:00Z"},
	}, sink.puts[1])
	assert.Empty(t, sink.restored)
}

func TestPublishUsecase_Publish_Errors(t *testing.T) {
	t.Parallel()

	_, err := newUsecase(&mockSink{}, producers(nil)).Publish(context.Background(), "unknown")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = newUsecase(nil, producers(nil)).Publish(context.Background(), "cdsc")
	assert.ErrorIs(t, err, ErrSinkUnavailable)

	sink := &mockSink{}
	_, err = newUsecase(sink, producers(apperr.ErrParse)).Publish(context.Background(), "cdsc")
	assert.ErrorIs(t, err, apperr.ErrParse)
	assert.Empty(t, sink.puts)

	sink = &mockSink{failOn: "data/cdsc.json"}
	_, err = newUsecase(sink, producers(nil)).Publish(context.Background(), "cdsc")
	assert.True(t, errors.Is(err, apperr.ErrPublish))
	assert.Empty(t, sink.restored)
}

func TestPublishUsecase_Publish_RollsBackOnMetaFailure(t *testing.T) {
	t.Parallel()

	sink := &mockSink{failOn: "data/cdsc.meta.json"}
	_, err := newUsecase(sink, producers(nil)).Publish(context.Background(), "cdsc")
	assert.ErrorIs(t, err, apperr.ErrPublish)
	require.Len(t, sink.restored, 1)
	assert.Equal(t, contentstore.Revision{Path: "data/cdsc.json", SHA: "sha-data/cdsc.json"}, sink.restored[0])
}

package logic

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cricpredict/winprob-api/internal/models"
)

// MockClassifier implements Classifier for testing
type MockClassifier struct {
	PredictProbaFunc func(ctx context.Context, rec models.FeatureRecord) ([2]float64, error)
	calls            atomic.Int32
	last             models.FeatureRecord
	mu               sync.Mutex
}

func (m *MockClassifier) PredictProba(ctx context.Context, rec models.FeatureRecord) ([2]float64, error) {
	m.calls.Add(1)
	m.mu.Lock()
	m.last = rec
	m.mu.Unlock()
	if m.PredictProbaFunc != nil {
		return m.PredictProbaFunc(ctx, rec)
	}
	return [2]float64{0.5, 0.5}, nil
}

func (m *MockClassifier) Calls() int { return int(m.calls.Load()) }

func (m *MockClassifier) Last() models.FeatureRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// MockCacheStore implements CacheStore over an in-memory map
type MockCacheStore struct {
	GetErr  error
	SetErr  error
	PingErr error

	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func NewMockCacheStore() *MockCacheStore {
	return &MockCacheStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *MockCacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	return b, ok, nil
}

func (m *MockCacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *MockCacheStore) Ping(ctx context.Context) error { return m.PingErr }

func (m *MockCacheStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

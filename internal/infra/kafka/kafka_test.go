package kafka

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"starwars-api/internal/config"
	"starwars-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMessageRoundTrip(t *testing.T) {
	planet := &model.Planet{ID: 3, PlanetName: "Hoth", Climate: "frozen"}
	event, err := model.NewCatalogEvent(model.EventCreated, planet)
	require.NoError(t, err)

	msg, err := eventMessage(event)
	require.NoError(t, err)
	assert.Equal(t, "planet-3", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "created", string(msg.Headers[0].Value))

	decoded, err := decodeEvent(msg.Value)
	require.NoError(t, err)
	assert.Equal(t, model.KindPlanet, decoded.Kind)
	assert.Equal(t, int64(3), decoded.ID)
	assert.JSONEq(t, `{"planet_id":3,"planet_name":"Hoth","diameter":0,"rotation_period":0,"orbital_period":0,"climate":"frozen"}`, string(decoded.Payload))
}

func TestDecodeEventRejectsIncomplete(t *testing.T) {
	_, err := decodeEvent([]byte(`{"id":1}`))
	assert.Error(t, err)

	_, err = decodeEvent([]byte(`not json`))
	assert.Error(t, err)
}

// silentBroker 接受连接但从不应答
func silentBroker(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})
	return ln.Addr().String()
}

func TestPublishGivesUpWhenBrokerHangs(t *testing.T) {
	p := NewPublisher(&config.KafkaConfig{Brokers: []string{silentBroker(t)}})
	p.timeout = 200 * time.Millisecond
	t.Cleanup(func() { _ = p.Close() })

	event, err := model.NewCatalogEvent(model.EventCreated, &model.Planet{ID: 1, PlanetName: "Endor"})
	require.NoError(t, err)

	start := time.Now()
	err = p.Publish(context.Background(), event)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewPublisherBoundsWrites(t *testing.T) {
	p := NewPublisher(&config.KafkaConfig{Brokers: []string{"127.0.0.1:9092"}})
	t.Cleanup(func() { _ = p.Close() })

	assert.Equal(t, publishTimeout, p.timeout)
	assert.Equal(t, publishTimeout, p.writer.WriteTimeout)
	assert.Equal(t, 3, p.writer.MaxAttempts)
	assert.Equal(t, "catalog-events", p.topic)
}

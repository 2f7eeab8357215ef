package pulsar

import (
	"fmt"
	"sync"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/dashboard-auth/pkg/log"
)

const defaultConnectionTimeout = 20 * time.Second

type (
	Config struct {
		Address           string
		ConnectionTimeout time.Duration
	}

	Connection interface {
		Producer(topic string) (pulsar.Producer, error)
		Close()
	}
)

type connection struct {
	client pulsar.Client

	mu        sync.Mutex
	producers map[string]pulsar.Producer
}

func NewConnection(config Config, logger log.Logger) (Connection, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL:    fmt.Sprintf("pulsar://%s", config.Address),
		Logger: newLoggerAdapter(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("create pulsar client: %w", err)
	}

	conn := &connection{
		client:    client,
		producers: make(map[string]pulsar.Producer),
	}

	connTimeout := defaultConnectionTimeout
	if config.ConnectionTimeout > 0 {
		connTimeout = config.ConnectionTimeout
	}

	err = conn.awaitBroker(connTimeout)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return conn, nil
}

func (c *connection) Producer(topic string) (pulsar.Producer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	producer, ok := c.producers[topic]
	if ok {
		return producer, nil
	}

	producer, err := c.client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic,
	})
	if err != nil {
		return nil, fmt.Errorf("create producer for topic %s: %w", topic, err)
	}

	c.producers[topic] = producer
	return producer, nil
}

func (c *connection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, producer := range c.producers {
		producer.Flush()
		producer.Close()
	}
	c.client.Close()
}

func (c *connection) awaitBroker(timeout time.Duration) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = timeout / 4
	eb.MaxElapsedTime = timeout

	return backoff.Retry(func() error {
		p, err := c.client.CreateProducer(pulsar.ProducerOptions{
			Topic: "non-persistent://public/default/healthcheck",
		})
		if err == nil {
			p.Close()
		}
		return err
	}, eb)
}

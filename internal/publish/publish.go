// internal/publish/publish.go
package publish

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/tamzrod/touchhand/internal/config"
	"github.com/tamzrod/touchhand/internal/poller"
	"github.com/tamzrod/touchhand/internal/status"
)

// API is the slice of the paho client the publisher uses.
type API interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
	IsConnectionOpen() bool
}

// ErrTimeout means the broker did not acknowledge in time.
var ErrTimeout = errors.New("mqtt: timeout")

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
)

// Frame is the JSON payload published once per poll cycle.
type Frame struct {
	TS     time.Time `json:"ts"`
	Seq    uint64    `json:"seq"`
	Rows   int       `json:"rows"`
	Cols   int       `json:"cols"`
	Values []int     `json:"values,omitempty"`
	Health string    `json:"health"`
	Error  string    `json:"error,omitempty"`
}

// Publisher implements poller.Sink over MQTT.
type Publisher struct {
	api    API
	topic  string
	qos    byte
	retain bool
}

// NewPublisher wraps an already connected client.
func NewPublisher(api API, topic string, qos byte, retain bool) *Publisher {
	return &Publisher{api: api, topic: topic, qos: qos, retain: retain}
}

// ClientID returns cfg's client id, or touchhand-<8 hex> when unset.
func ClientID(cfg config.MQTTConfig) string {
	if cfg.ClientID != "" {
		return cfg.ClientID
	}
	return "touchhand-" + uuid.NewString()[:8]
}

// New connects to the broker. One attempt; paho reconnects on its own afterwards.
func New(cfg config.MQTTConfig) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(ClientID(cfg)).
		SetKeepAlive(30 * time.Second).
		SetConnectTimeout(5 * time.Second).
		SetPingTimeout(3 * time.Second).
		SetAutoReconnect(true).
		SetOrderMatters(false)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	if cfg.TLS {
		opts.SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	client := mqtt.NewClient(opts)
	t := client.Connect()
	if ok := t.WaitTimeout(connectTimeout); !ok {
		return nil, fmt.Errorf("%w: connect %s", ErrTimeout, cfg.Broker)
	}
	if err := t.Error(); err != nil {
		return nil, fmt.Errorf("mqtt: connect %s: %w", cfg.Broker, err)
	}
	return NewPublisher(client, cfg.Topic, cfg.QoS, cfg.Retain), nil
}

// Encode builds the payload for one result.
func Encode(res poller.Result) ([]byte, error) {
	f := Frame{
		TS:     res.At.UTC(),
		Seq:    res.Seq,
		Health: status.HealthName(res.Status.Health),
	}
	if res.OK() {
		f.Rows, f.Cols = res.Grid.Dims()
		f.Values = res.Grid.Values()
	} else if res.Err != nil {
		f.Error = res.Err.Error()
	}
	return json.Marshal(f)
}

// Show implements poller.Sink. Failed cycles are published without values.
func (p *Publisher) Show(_ context.Context, res poller.Result) error {
	payload, err := Encode(res)
	if err != nil {
		return fmt.Errorf("mqtt: encode: %w", err)
	}

	t := p.api.Publish(p.topic, p.qos, p.retain, payload)
	if ok := t.WaitTimeout(publishTimeout); !ok {
		return fmt.Errorf("%w: publish %s", ErrTimeout, p.topic)
	}
	if err := t.Error(); err != nil {
		return fmt.Errorf("mqtt: publish %s: %w", p.topic, err)
	}
	return nil
}

// Close disconnects, giving in-flight messages up to 250ms.
func (p *Publisher) Close() error {
	if p.api.IsConnectionOpen() {
		p.api.Disconnect(250)
	}
	return nil
}

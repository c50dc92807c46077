// Package events announces reservation requests to interested consumers.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rentx-lk/rentx-api/internal/models"
	log "github.com/sirupsen/logrus"
)

var ErrPublishTimeout = errors.New("publish timed out")

// TypeReservationRequested is the event type of a new reservation request.
const TypeReservationRequested = "reservation.requested"

// ReservationEvent is the payload published for a reservation request.
type ReservationEvent struct {
	Type        string             `json:"type"`
	OccurredAt  time.Time          `json:"occurred_at"`
	Reservation models.Reservation `json:"reservation"`
}

// Publisher sends reservation events.
type Publisher interface {
	PublishReservation(ctx context.Context, r models.Reservation) error
}

// NopPublisher logs events and drops them.
type NopPublisher struct{}

func (NopPublisher) PublishReservation(_ context.Context, r models.Reservation) error {
	log.WithFields(log.Fields{
		"reservation_id": r.ID.Hex(),
		"vehicle_id":     r.VehicleID,
	}).Debug("No event broker configured, dropping reservation event")
	return nil
}

// tokenPublisher is the part of mqtt.Client the publisher needs.
type tokenPublisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTPublisher publishes events as JSON to an MQTT topic.
type MQTTPublisher struct {
	client  tokenPublisher
	topic   string
	qos     byte
	timeout time.Duration
}

// NewMQTTPublisher wraps a connected client.
func NewMQTTPublisher(client tokenPublisher, topic string) *MQTTPublisher {
	return &MQTTPublisher{client: client, topic: topic, qos: 1, timeout: 5 * time.Second}
}

// ConnectMQTT connects to broker and returns the client.
func ConnectMQTT(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.WithError(err).Warn("MQTT connection lost")
		})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect to %s: %w", broker, ErrPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", broker, err)
	}
	return client, nil
}

// PublishReservation publishes a reservation.requested event and waits for
// the broker acknowledgement, the publisher timeout, or ctx.
func (p *MQTTPublisher) PublishReservation(ctx context.Context, r models.Reservation) error {
	payload, err := json.Marshal(ReservationEvent{
		Type:        TypeReservationRequested,
		OccurredAt:  time.Now().UTC(),
		Reservation: r,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	token := p.client.Publish(p.topic, p.qos, false, payload)
	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("failed to publish event: %w", err)
		}
	case <-timer.C:
		return ErrPublishTimeout
	case <-ctx.Done():
		return ctx.Err()
	}

	log.WithFields(log.Fields{
		"topic":          p.topic,
		"reservation_id": r.ID.Hex(),
	}).Info("Published reservation event")
	return nil
}

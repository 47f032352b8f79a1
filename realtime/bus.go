package realtime

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Bus publie des évènements temps réel vers les sessions connectées du
// dashboard. Livraison at-least-once, non ordonnée, fire-and-forget.
type Bus interface {
	Publish(topic string, payload any) error
}

const exchangeName = "realtime"

type AMQPBus struct {
	conn *amqp.Connection
	chn  *amqp.Channel
}

func Connect(url string) (*AMQPBus, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	chn, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	// Topic exchange: routing key = topic (ex: user.<id>.threads)
	if err := chn.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		chn.Close()
		conn.Close()
		return nil, err
	}

	return &AMQPBus{conn: conn, chn: chn}, nil
}

func (b *AMQPBus) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return b.chn.PublishWithContext(
		ctx,
		exchangeName,
		topic, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

func (b *AMQPBus) Close() error {
	if err := b.chn.Close(); err != nil {
		return err
	}
	return b.conn.Close()
}

// NoopBus remplace le bus quand RabbitMQ n'est pas joignable: les
// évènements temps réel sont best-effort, on les laisse tomber.
type NoopBus struct{}

func (NoopBus) Publish(topic string, payload any) error { return nil }

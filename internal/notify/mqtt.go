package notify

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
)

// toastPayload is the JSON shape published to the toast topic.
type toastPayload struct {
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

// MQTTNotifier publishes toasts to an MQTT topic the console subscribes to.
type MQTTNotifier struct {
	client mqtt.Client
	topic  string
}

// NewMQTTNotifier connects to the broker and returns a notifier
// publishing to topic.
func NewMQTTNotifier(broker, clientID, topic string) (*MQTTNotifier, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect timeout for broker %s", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect error: %w", err)
	}

	return &MQTTNotifier{client: client, topic: topic}, nil
}

// Toast publishes the message. Delivery is fire-and-forget: a toast that
// cannot be published is logged and dropped, it never fails the request
// that produced it.
func (n *MQTTNotifier) Toast(message string, kind Kind) {
	payload, err := json.Marshal(toastPayload{
		Message:   message,
		Kind:      kind,
		Timestamp: time.Now(),
	})
	if err != nil {
		log.WithError(err).Error("failed to marshal toast payload")
		return
	}

	token := n.client.Publish(n.topic, 1, false, payload)
	go func() {
		if token.WaitTimeout(5*time.Second) && token.Error() != nil {
			log.WithError(token.Error()).WithField("topic", n.topic).Error("failed to publish toast")
		}
	}()
}

// Close disconnects from the broker.
func (n *MQTTNotifier) Close() {
	n.client.Disconnect(250)
}

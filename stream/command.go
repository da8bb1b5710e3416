package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/styletx/tween"
)

// Command types understood on the command topic.
const (
	CommandAnimate = "animate"
	CommandStop    = "stop"
)

// Command is a request to animate or stop the element.
type Command struct {
	Type     string                 `json:"type" yaml:"type"`
	From     map[string]interface{} `json:"from,omitempty" yaml:"from"`
	To       map[string]interface{} `json:"to,omitempty" yaml:"to"`
	Duration float64                `json:"duration,omitempty" yaml:"duration"`
}

// FromStyle returns the start override, nil when none was given.
func (c Command) FromStyle() tween.StyleMap {
	if c.From == nil {
		return nil
	}
	return tween.StyleMap(c.From)
}

// ToStyle returns the end style.
func (c Command) ToStyle() tween.StyleMap {
	if c.To == nil {
		return nil
	}
	return tween.StyleMap(c.To)
}

// Subscriber is the part of an MQTT client a Commander needs.
type Subscriber interface {
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// Commander feeds commands received over MQTT to a Controller.
type Commander struct {
	controller *Controller
	client     Subscriber
	topic      string
	qos        byte
}

// NewCommander creates an instance of a Commander.
func NewCommander(controller *Controller, client Subscriber, topic string, qos byte) *Commander {
	c := new(Commander)
	c.controller = controller
	c.client = client
	c.topic = topic
	c.qos = qos
	return c
}

// Subscribe listens on the command topic.
func (c *Commander) Subscribe() error {
	token := c.client.Subscribe(c.topic, c.qos, c.handleMessage)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", c.topic, token.Error())
	}
	log.Printf("Subscribed to %s", c.topic)
	return nil
}

func (c *Commander) handleMessage(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s", msg.MessageID(), msg.Topic(), msg.Payload())

	var cmd Command
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		log.Printf("Bad command on %s: %v", msg.Topic(), err)
		return
	}
	if err := c.Dispatch(cmd); err != nil {
		log.Printf("Command %q: %v", cmd.Type, err)
	}
}

// Dispatch executes one command.
func (c *Commander) Dispatch(cmd Command) error {
	switch cmd.Type {
	case CommandAnimate:
		res, err := c.controller.Animate(cmd)
		if err != nil {
			if errors.Is(err, tween.ErrMissingAddon) {
				return fmt.Errorf("no colour addon configured: %w", err)
			}
			return err
		}
		if res.Outcome == tween.AlreadyRunning {
			log.Printf("Animation already running, ignoring")
			return nil
		}
		log.Printf("Animation %s scheduled for %.3fs", res.ID, cmd.Duration)
		return nil
	case CommandStop:
		c.controller.Stop()
		return nil
	}
	return fmt.Errorf("unknown command type %q", cmd.Type)
}

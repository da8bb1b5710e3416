package stream

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/styletx/tween"
)

const publishTimeout = 5 * time.Second

// Publisher is the part of an MQTT client a Streamer needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer is an element that keeps its style on a Surface and publishes every
// applied batch as a StylePatch over MQTT.
type Streamer struct {
	surface *Surface
	client  Publisher
	topic   string
	qos     byte
	metrics *Metrics
	seq     atomic.Uint64
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(surface *Surface, client Publisher, topic string, qos byte, metrics *Metrics) *Streamer {
	s := new(Streamer)
	s.surface = surface
	s.client = client
	s.topic = topic
	s.qos = qos
	s.metrics = metrics
	return s
}

// Surface returns the local style surface.
func (s *Streamer) Surface() *Surface {
	return s.surface
}

// ComputedStyle reads the current value from the surface.
func (s *Streamer) ComputedStyle(property string) string {
	return s.surface.ComputedStyle(property)
}

// ApplyStyle updates the surface then publishes the batch. Publish failures
// are logged and counted; the surface keeps the new values regardless.
func (s *Streamer) ApplyStyle(style tween.StyleMap) {
	s.surface.ApplyStyle(style)
	s.SendPatch(style)
}

// SendPatch publishes style as a StylePatch. It hands the patch to the client
// and returns; the broker acknowledgement is awaited on its own goroutine so a
// slow broker never holds up the frame that produced the patch.
func (s *Streamer) SendPatch(style tween.StyleMap) {
	p := NewStylePatch(s.surface.Name(), s.seq.Add(1), style)
	b, err := p.MarshalBinary()
	if err != nil {
		log.Printf("Marshal patch %d: %v", p.Seq, err)
		s.metrics.PublishErrors.Inc()
		return
	}

	token := s.client.Publish(s.topic, s.qos, false, b)
	go s.await(p.Seq, token)
}

func (s *Streamer) await(seq uint64, token mqtt.Token) {
	if !token.WaitTimeout(publishTimeout) {
		log.Printf("Publish patch %d to %s timed out", seq, s.topic)
		s.metrics.PublishErrors.Inc()
		return
	}
	if err := token.Error(); err != nil {
		log.Printf("Publish patch %d to %s: %v", seq, s.topic, err)
		s.metrics.PublishErrors.Inc()
		return
	}
	s.metrics.FramesPublished.Inc()
}

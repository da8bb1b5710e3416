package stream

import (
	"context"
	"log"
	"sync"

	"github.com/matt-g-everett/styletx/tween"
)

// Controller runs animations on a single element.
type Controller struct {
	engine  *tween.Engine
	loop    *tween.FrameLoop
	metrics *Metrics

	mu         sync.Mutex
	ctx        context.Context
	cancelWait context.CancelFunc
}

// NewController creates an instance of a Controller animating element with
// frames from loop.
func NewController(element tween.Element, loop *tween.FrameLoop, addon tween.Addon, metrics *Metrics) *Controller {
	c := new(Controller)
	c.engine = tween.NewEngine(element, loop, tween.Addons{tween.ColorAddonName: addon})
	c.loop = loop
	c.metrics = metrics
	c.ctx = context.Background()
	return c
}

// Engine returns the underlying tween engine.
func (c *Controller) Engine() *tween.Engine {
	return c.engine
}

// State returns the engine state.
func (c *Controller) State() tween.State {
	return c.engine.State()
}

// Animate starts cmd on the element. The returned result tells whether a new
// run was scheduled or one was already active; a rejected command does not
// change the engine's configuration.
func (c *Controller) Animate(cmd Command) (tween.RunResult, error) {
	res, err := c.engine.RunWith(cmd.FromStyle(), cmd.ToStyle(), cmd.Duration)
	if err != nil {
		c.metrics.Runs.WithLabelValues(OutcomeFailed).Inc()
		return res, err
	}
	if res.Outcome == tween.AlreadyRunning {
		c.metrics.Runs.WithLabelValues(OutcomeAlreadyRunning).Inc()
		return res, nil
	}

	c.metrics.Runs.WithLabelValues(OutcomeScheduled).Inc()
	c.watch(res)
	return res, nil
}

// Stop interrupts the active animation, leaving the element as it is.
func (c *Controller) Stop() {
	running := c.engine.State() == tween.StateRunning
	c.engine.Stop()

	c.mu.Lock()
	if c.cancelWait != nil {
		c.cancelWait()
		c.cancelWait = nil
	}
	c.mu.Unlock()

	if running {
		c.metrics.Runs.WithLabelValues(OutcomeStopped).Inc()
	}
}

// watch counts the run as completed once its future resolves.
func (c *Controller) watch(res tween.RunResult) {
	c.mu.Lock()
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelWait = cancel
	c.mu.Unlock()

	go func() {
		defer cancel()
		if _, err := res.Future.Wait(ctx); err != nil {
			return
		}
		c.metrics.Runs.WithLabelValues(OutcomeCompleted).Inc()
		log.Printf("Animation %s completed", res.ID)
	}()
}

// Run drives the frame loop until ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	c.mu.Lock()
	c.ctx = ctx
	c.mu.Unlock()
	return c.loop.Run(ctx)
}

package submission

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-heartform/pkg/formstate"
	"github.com/goliatone/go-heartform/pkg/predict"
)

// SettleFunc observes the view after a submission settles.
type SettleFunc func(View)

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for attempt tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAttemptID overrides the attempt id generator.
func WithAttemptID(fn func() string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.attemptID = fn
		}
	}
}

// WithState binds the controller to an existing form state.
func WithState(state *formstate.State) Option {
	return func(c *Controller) {
		if state != nil {
			c.state = state
		}
	}
}

// Controller drives the submit lifecycle: clear the result and error slots,
// send the measurements, then store exactly one of the two.
//
// There is no in-flight guard. Concurrent submissions each clear the slots and
// whichever response settles last is the one displayed.
type Controller struct {
	predictor predict.Predictor
	logger    *slog.Logger
	attemptID func() string

	mu       sync.RWMutex
	state    *formstate.State
	view     View
	onSettle []SettleFunc
}

// NewController constructs a Controller. Without WithState the controller
// owns a fresh state seeded with formstate.FormFields.
func NewController(predictor predict.Predictor, opts ...Option) *Controller {
	c := &Controller{
		predictor: predictor,
		logger:    slog.Default(),
		attemptID: uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.state == nil {
		c.state = formstate.NewDefault()
	}
	return c
}

// State returns the form state the controller submits by default.
func (c *Controller) State() *formstate.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// View returns a copy of the current result and error slots.
func (c *Controller) View() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view.clone()
}

// OnSettle registers fn to run after every settled submission.
func (c *Controller) OnSettle(fn SettleFunc) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.onSettle = append(c.onSettle, fn)
	c.mu.Unlock()
}

// Submit runs one submission. ev.PreventDefault is called first, then both
// slots are cleared before the request is issued. A nil state falls back to
// the controller's own state. The request carries no timeout of its own; ctx
// is passed through untouched.
func (c *Controller) Submit(ctx context.Context, ev Event, state *formstate.State) Outcome {
	if ev != nil {
		ev.PreventDefault()
	}

	c.mu.Lock()
	c.view = View{}
	if state == nil {
		state = c.state
	}
	c.mu.Unlock()

	attempt := c.attemptID()
	logger := c.logger.With("attempt", attempt)

	if state == nil {
		return c.settle(logger, attempt, predict.Result{}, ErrNilState)
	}
	if c.predictor == nil {
		return c.settle(logger, attempt, predict.Result{}, ErrNilPredictor)
	}

	payload := state.Values()
	logger.Debug("submitting measurements", "fields", len(payload))

	result, err := c.predictor.Predict(predict.ContextWithRequestID(ctx, attempt), payload)
	return c.settle(logger, attempt, result, err)
}

func (c *Controller) settle(logger *slog.Logger, attempt string, result predict.Result, err error) Outcome {
	var view View
	if err != nil {
		view.Error = predict.Message(err)
		logger.Warn("prediction failed", "error", err)
	} else {
		res := result
		view.Result = &res
		logger.Info("prediction settled", "prediction", int(result.Prediction), "probability", result.Probability)
	}

	c.mu.Lock()
	c.view = view
	observers := append([]SettleFunc(nil), c.onSettle...)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(view.clone())
	}
	return Outcome{AttemptID: attempt, View: view.clone(), Err: err}
}

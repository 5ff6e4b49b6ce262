// Package session runs the interactive prompt, fetch, display loop.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fakhrymubarak/weather-station/internal/config"
	"github.com/fakhrymubarak/weather-station/internal/model"
	"github.com/fakhrymubarak/weather-station/internal/presenter"
	"github.com/fakhrymubarak/weather-station/internal/prompt"
	"github.com/fakhrymubarak/weather-station/internal/service"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	CityPrompt     = "Please enter the name of the city:"
	CountryPrompt  = "Please enter the country code:"
	ContinuePrompt = "Do you want to search for weather in another city? (yes/no):"
)

type State int

const (
	StatePrompting State = iota
	StateFetching
	StateDisplaying
	StateReporting
	StateContinuePrompt
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateFetching:
		return "fetching"
	case StateDisplaying:
		return "displaying"
	case StateReporting:
		return "reporting"
	case StateContinuePrompt:
		return "continue-prompt"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Session struct {
	Input     *prompt.Reader
	Out       io.Writer
	ErrOut    io.Writer
	Weather   service.WeatherServiceInterface
	Presenter *presenter.Presenter
	Logger    *zap.SugaredLogger
}

// iteration carries what one pass of the loop collected. Nothing survives into the next pass.
type iteration struct {
	city        string
	countryCode string
	weather     *model.WeatherResponse
	err         error
}

func New(in io.Reader, out, errOut io.Writer, weather service.WeatherServiceInterface, p *presenter.Presenter) *Session {
	return &Session{
		Input:     prompt.NewReader(in),
		Out:       out,
		ErrOut:    errOut,
		Weather:   weather,
		Presenter: p,
		Logger:    config.GetLogger(),
	}
}

// WantsToContinue reports whether answer asks for another lookup.
func WantsToContinue(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == "yes"
}

// Run prints the banner and loops until the user declines to continue. It returns nil after the
// farewell, an error wrapping prompt.ErrInputClosed when input runs out, or ctx.Err() on cancellation.
func (s *Session) Run(ctx context.Context) error {
	if _, err := fmt.Fprintln(s.Out, s.Presenter.Banner()); err != nil {
		return errors.Wrap(err, "write banner")
	}

	state := StatePrompting
	it := &iteration{}
	for state != StateTerminated {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := s.step(ctx, state, it)
		if err != nil {
			return errors.Wrapf(err, "session %s", state)
		}
		s.logger().Debugw("Session transition", "from", state, "to", next)
		state = next
	}
	return nil
}

func (s *Session) step(ctx context.Context, state State, it *iteration) (State, error) {
	switch state {
	case StatePrompting:
		*it = iteration{}
		city, err := s.ask(CityPrompt)
		if err != nil {
			return state, err
		}
		countryCode, err := s.ask(CountryPrompt)
		if err != nil {
			return state, err
		}
		it.city, it.countryCode = city, countryCode
		return StateFetching, nil

	case StateFetching:
		it.weather, it.err = s.Weather.GetWeather(ctx, it.city, it.countryCode)
		if it.err != nil {
			return StateReporting, nil
		}
		return StateDisplaying, nil

	case StateDisplaying:
		if err := s.Presenter.Print(s.Out, it.weather); err != nil {
			return state, errors.Wrap(err, "write weather")
		}
		return StateContinuePrompt, nil

	case StateReporting:
		if _, err := fmt.Fprintf(s.ErrOut, "Error: %v\n", it.err); err != nil {
			return state, errors.Wrap(err, "write error")
		}
		return StateContinuePrompt, nil

	case StateContinuePrompt:
		answer, err := s.ask(ContinuePrompt)
		if err != nil {
			return state, err
		}
		if WantsToContinue(answer) {
			return StatePrompting, nil
		}
		if _, err := fmt.Fprintln(s.Out, s.Presenter.Farewell()); err != nil {
			return state, errors.Wrap(err, "write farewell")
		}
		return StateTerminated, nil
	}
	return StateTerminated, errors.Errorf("unknown session state %d", int(state))
}

func (s *Session) ask(question string) (string, error) {
	return s.Input.Ask(s.Out, s.Presenter.Prompt(question))
}

func (s *Session) logger() *zap.SugaredLogger {
	if s.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return s.Logger
}

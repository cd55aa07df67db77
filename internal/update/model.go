package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/fitfocus/fitfocus/internal/clock"
	"github.com/fitfocus/fitfocus/internal/coach"
	"github.com/fitfocus/fitfocus/internal/model"
	"github.com/fitfocus/fitfocus/internal/storage"
)

type Screen string

const (
	ScreenOnboarding Screen = "Onboarding"
	ScreenDashboard  Screen = "Dashboard"
	ScreenWeighIn    Screen = "WeighIn"
	ScreenChat       Screen = "Chat"
	ScreenCustomize  Screen = "Customize"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	WeighIn   string
	Chat      string
	Customize string
	Language  string
	Help      string
	Quit      string
}

// Coach is the feedback collaborator boundary, satisfied by *coach.Client.
type Coach interface {
	DailyFeedback(ctx context.Context, req coach.FeedbackRequest) (string, error)
	Chat(ctx context.Context, message string, turns []coach.Turn, lang model.Language, persona model.Persona) (string, error)
}

type OnboardingState struct {
	Step   int
	Fields []textinput.Model
	Err    string
}

type WeighInState struct {
	Input    textinput.Model
	Pending  bool
	Feedback string
}

// ChatState is ephemeral: the transcript lives here, never in the
// persisted state, and resets on any persona change.
type ChatState struct {
	Input   textinput.Model
	Turns   []coach.Turn
	Pending bool
	Cursor  int
}

type CustomizeState struct {
	Cursor int
}

type Model struct {
	State       model.AppState
	Screen      Screen
	Status      StatusBar
	Keys        GlobalKeyMap
	HelpVisible bool
	Quitting    bool
	LastError   error

	Onboarding OnboardingState
	WeighIn    WeighInState
	Chat       ChatState
	Customize  CustomizeState

	store   storage.Store
	coach   Coach
	watcher *clock.Watcher
	now     func() time.Time

	planProgress progress.Model
	waitSpinner  spinner.Model
	transcript   viewport.Model
}

type StateSavedMsg struct{}

type AppErrorMsg struct {
	Err error
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

// FeedbackMsg carries the coach's daily sentence, or the failure the
// orchestrator replaces with the localized fallback.
type FeedbackMsg struct {
	Text string
	Err  error
}

type ChatReplyMsg struct {
	Text string
	Err  error
}

type DayChangedMsg struct {
	Date string
}

// NewModel builds the TUI around an already-loaded application state.
func NewModel(initial model.AppState, store storage.Store, coachClient Coach) Model {
	m := Model{
		State:  initial,
		Screen: ScreenDashboard,
		Keys: GlobalKeyMap{
			WeighIn:   "w",
			Chat:      "c",
			Customize: "t",
			Language:  "l",
			Help:      "?",
			Quit:      "q",
		},
		store: store,
		coach: coachClient,
		now:   time.Now,
	}
	m.initBubbleComponents()
	m.routeInitialScreen()
	return m
}

// NewModelWithWatcher additionally wires the midnight watcher so the daily
// gate reopens while the program stays running across a date change.
func NewModelWithWatcher(initial model.AppState, store storage.Store, coachClient Coach, watcher *clock.Watcher) Model {
	m := NewModel(initial, store, coachClient)
	m.watcher = watcher
	return m
}

// NewModelAt pins the clock, for tests exercising the daily-entry gate.
func NewModelAt(initial model.AppState, store storage.Store, coachClient Coach, now func() time.Time) Model {
	m := NewModel(initial, store, coachClient)
	m.now = now
	m.routeInitialScreen()
	return m
}

func (m *Model) routeInitialScreen() {
	if !m.State.Onboarded {
		m.Screen = ScreenOnboarding
		m.Onboarding.Step = 0
		m.Onboarding.Fields[0].Focus()
		return
	}
	if model.EntryDue(m.State, m.today()) {
		m.openWeighIn()
		return
	}
	m.Screen = ScreenDashboard
}

func (m *Model) initBubbleComponents() {
	prompts := []string{"initial> ", "target> ", "days> "}
	m.Onboarding.Fields = make([]textinput.Model, len(prompts))
	for i, prompt := range prompts {
		field := textinput.New()
		field.Prompt = prompt
		field.CharLimit = 8
		field.Width = 12
		m.Onboarding.Fields[i] = field
	}

	m.WeighIn.Input = textinput.New()
	m.WeighIn.Input.Prompt = "kg> "
	m.WeighIn.Input.Placeholder = "0.0"
	m.WeighIn.Input.CharLimit = 8
	m.WeighIn.Input.Width = 12

	m.Chat.Input = textinput.New()
	m.Chat.Input.Prompt = "> "
	m.Chat.Input.CharLimit = 512
	m.Chat.Input.Width = 48

	start, end := m.State.Theme.GradientStops()
	m.planProgress = progress.New(progress.WithGradient(start, end))

	m.waitSpinner = spinner.New()
	m.waitSpinner.Spinner = spinner.Dot

	m.transcript = viewport.New(54, 12)
}

func (m Model) today() string {
	return model.Today(m.now())
}

func (m *Model) openWeighIn() {
	m.Screen = ScreenWeighIn
	m.WeighIn.Feedback = ""
	m.WeighIn.Input.SetValue("")
	m.WeighIn.Input.Focus()
}

// personaOrDefault resolves the persona for coach requests; poetic serves
// until the user has picked one.
func (m Model) personaOrDefault() model.Persona {
	if m.State.Persona != nil {
		return *m.State.Persona
	}
	return model.PersonaPoetic
}

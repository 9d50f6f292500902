package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Veraticus/pennywise/internal/cli"
	"github.com/Veraticus/pennywise/internal/common"
	"github.com/Veraticus/pennywise/internal/insight"
	"github.com/Veraticus/pennywise/internal/model"
)

// errReported marks failures already explained to the user, so the exit
// path does not print them a second time.
var errReported = errors.New("insight request failed")

func insightCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:           "insight",
		Short:         "Ask the AI advisor about your finances",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `Send the transaction snapshot to a generative-AI service and get back a
structured review: an analysis of your financial health, concrete
suggestions, and a saving tip.

The request captures the snapshot when it starts; edits you make while it
is in flight are not included. Requests are never retried automatically —
if it fails, just run the command again.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.Transactions(ctx)
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing to analyze yet. Record some transactions first."))
				return nil
			}

			if language == "" {
				language, err = store.Locale(ctx)
				if err != nil {
					return err
				}
			}

			requester, err := createInsightRequester()
			if err != nil {
				return err
			}

			ins, err := requestWithSpinner(ctx, requester, txns, language)
			if err != nil {
				return renderInsightError(err)
			}

			renderInsight(ins)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "answer language tag (en, zh; default: stored locale)")

	return cmd
}

// insightResultMsg carries the finished request back into the spinner loop.
type insightResultMsg struct {
	err     error
	insight model.Insight
}

// spinnerModel shows a spinner while the remote request runs.
type spinnerModel struct {
	result  *insightResultMsg
	request tea.Cmd
	spinner spinner.Model
}

func newSpinnerModel(request tea.Cmd) spinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(cli.TitleStyle.UnsetMargins()),
	)
	return spinnerModel{spinner: s, request: request}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.request)
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case insightResultMsg:
		m.result = &msg
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.result != nil {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), cli.SubtleStyle.Render("Thinking about your finances..."))
}

// requestWithSpinner runs the insight request under a spinner and returns
// its outcome once the request settles or the user bails out.
func requestWithSpinner(ctx context.Context, requester *insight.Requester, txns []model.Transaction, language string) (model.Insight, error) {
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	request := func() tea.Msg {
		ins, err := requester.Request(reqCtx, txns, language)
		return insightResultMsg{insight: ins, err: err}
	}

	p := tea.NewProgram(newSpinnerModel(request), tea.WithContext(reqCtx))
	final, err := p.Run()
	if err != nil {
		return model.Insight{}, fmt.Errorf("spinner failed: %w", err)
	}

	m, ok := final.(spinnerModel)
	if !ok || m.result == nil {
		return model.Insight{}, context.Canceled
	}
	return m.result.insight, m.result.err
}

func renderInsight(ins model.Insight) {
	fmt.Println(cli.RenderBox(cli.RobotIcon+" Analysis", ins.Analysis))

	var suggestions strings.Builder
	for i, s := range ins.Suggestions {
		if i > 0 {
			suggestions.WriteByte('\n')
		}
		fmt.Fprintf(&suggestions, "%d. %s", i+1, s)
	}
	if suggestions.Len() > 0 {
		fmt.Println(cli.RenderBox("Suggestions", suggestions.String()))
	}

	fmt.Println(cli.RenderBox("Saving tip", ins.SavingTips))
}

// renderInsightError maps request failures onto user-facing messages. No
// insight failure is fatal; the store is untouched and retry is always an
// option. The returned error carries errReported so the failure is printed
// exactly once.
func renderInsightError(err error) error {
	switch {
	case errors.Is(err, insight.ErrBusy):
		fmt.Println(cli.FormatWarning("A request is already running. Wait for it to finish."))
	case errors.Is(err, insight.ErrTimeout):
		fmt.Println(cli.FormatError("The advisor took too long to answer. Try again."))
	case errors.Is(err, insight.ErrParse):
		fmt.Println(cli.FormatError("The advisor's answer made no sense. Try again."))
	case errors.Is(err, context.Canceled):
		fmt.Println(cli.SubtleStyle.Render("Request canceled."))
		return nil
	default:
		fmt.Println(cli.FormatError("Insight unavailable. Try again later."))
	}
	common.LogError(err, "Insight request failed", nil)
	return errReported
}

package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"turmas/internal/domain"
	"turmas/internal/logging"
	"turmas/internal/services"
	"turmas/internal/ui"
)

// sessionModel wraps ui.Model to log the end of a remote session
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	return s.newSession(sessionID), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// newSession builds an independent timetable for one connection. Export is
// not offered remotely: files and the clipboard belong to the server host.
func (s *Server) newSession(sessionID string) *sessionModel {
	timetable := domain.NewTimetable(s.index, s.opts.Palette, s.opts.HistoryDepth)
	model := ui.NewModel(
		services.NewTimetableService(timetable, s.opts.Grid),
		s.slots,
		nil,
		ui.ModelOptions{
			Display:         s.opts.Display,
			ErrorClearDelay: s.opts.ErrorClearDelay,
			Keys:            s.opts.Keys,
			Problems:        s.opts.Problems,
		},
	)

	return &sessionModel{
		Model:     model,
		sessionID: sessionID,
		startTime: time.Now(),
	}
}

package tasks

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	uuid "github.com/nu7hatch/gouuid"
	log "github.com/sirupsen/logrus"
)

// ErrBadNumber is returned by Run when the answer to the task number prompt is not an integer. The session
// can't continue after that.
var ErrBadNumber = errors.New("not a task number")

// These are the menu options, compared against the whole input line.
const (
	optionAdd    = "1"
	optionList   = "2"
	optionRemove = "3"
	optionExit   = "4"
)

const (
	menuPrompt   = "(1) Adicionar (2) Listar (3) Remover (4) Sair: "
	addPrompt    = "Nova tarefa: "
	removePrompt = "Número da tarefa: "
)

type sessionState int

const (
	stateAwaiting   sessionState = iota // showing the menu and waiting for a choice
	stateTerminated                     // exit chosen or input ended
)

type SessionOption func(*Session) error

// WithTranscript is a session option to append a JSON line per add, remove and exit to the specified file.
// Call Close on the session to close the file.
func WithTranscript(pathname string) SessionOption {
	return func(s *Session) error {
		f, err := os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err == nil {
			s.tlog = f
			s.closer = f
		}
		return err
	}
}

// WithTranscriptWriter is like WithTranscript but writes to w, which the session won't close.
func WithTranscriptWriter(w io.Writer) SessionOption {
	return func(s *Session) error {
		s.tlog = w
		return nil
	}
}

// WithLogger sets the entry the session logs through. The session adds its id as the "session" field.
func WithLogger(entry *log.Entry) SessionOption {
	return func(s *Session) error {
		s.log = entry
		return nil
	}
}

// Session reads menu choices from its input, one per line, and applies them to the task list it owns. Prompts
// and listings go to its output.
type Session struct {
	id    string
	in    *bufio.Reader
	out   io.Writer
	list  List
	state sessionState

	// Transcript of commands, one JSON object per line. Discarded unless set by an option.
	tlog   io.Writer
	closer io.Closer

	log *log.Entry
}

// NewSession creates a session with an empty task list.
func NewSession(in io.Reader, out io.Writer, opts ...SessionOption) (*Session, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("session id: %w", err)
	}
	s := &Session{
		id:   u.String(),
		in:   bufio.NewReader(in),
		out:  out,
		tlog: io.Discard,
		log:  log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	s.log = s.log.WithField("session", s.id)
	return s, nil
}

// ID returns the random identifier of this session, as found in log entries and transcript lines.
func (s *Session) ID() string {
	return s.id
}

// List returns the session's task list.
func (s *Session) List() *List {
	return &s.list
}

// Run shows the menu and executes the chosen commands until the exit option is chosen or the input ends, in
// which cases it returns nil. A non-numeric task number for removal ends the session with an error wrapping
// ErrBadNumber; any other error comes from reading the input.
func (s *Session) Run() error {
	s.log.Debug("Session started")
	for s.state != stateTerminated {
		err := s.step()
		if errors.Is(err, io.EOF) {
			s.log.Debug("Input ended")
			s.terminate()
		} else if err != nil {
			return err
		}
	}
	return nil
}

// Close closes the transcript file, if WithTranscript opened one.
func (s *Session) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

func (s *Session) step() error {
	_, _ = fmt.Fprint(s.out, menuPrompt)
	choice, err := s.readLine()
	if err != nil {
		return err
	}
	switch choice {
	case optionAdd:
		return s.add()
	case optionList:
		printList(s.out, &s.list)
		return nil
	case optionRemove:
		return s.remove()
	case optionExit:
		s.terminate()
		return nil
	default:
		s.log.WithField("choice", choice).Debug("Ignoring unknown option")
		return nil
	}
}

func (s *Session) add() error {
	_, _ = fmt.Fprint(s.out, addPrompt)
	content, err := s.readLine()
	if err != nil {
		return err
	}
	s.list.Add(content)
	n := s.list.Len()
	s.record(event{Type: eventAdd, Number: n, Content: content})
	s.log.WithField("number", n).Debug("Added task")
	return nil
}

func (s *Session) remove() error {
	_, _ = fmt.Fprint(s.out, removePrompt)
	line, err := s.readLine()
	if err != nil {
		return err
	}
	n, err := parseNumber(line)
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	content, err := s.list.Remove(n)
	if err != nil {
		s.log.WithField("cause", err).Debug("Ignoring removal")
		return nil
	}
	s.record(event{Type: eventRemove, Number: n, Content: content})
	s.log.WithField("number", n).Debug("Removed task")
	return nil
}

func (s *Session) terminate() {
	s.state = stateTerminated
	s.record(event{Type: eventExit})
	s.log.WithField("tasks", s.list.Len()).Debug("Session terminated")
}

// readLine returns the next input line without its terminator. A last line without terminator is returned
// like any other; after that, the error is io.EOF.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// parseNumber parses a task number, ignoring surrounding blanks. Numbers that overflow an int are returned
// clamped, with no error: they can't be valid task numbers, so removal will ignore them.
func parseNumber(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%q: %w", text, ErrBadNumber)
	}
	return n, nil
}

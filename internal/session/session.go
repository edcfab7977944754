/*
Package session implements the interactive menu through which a user
registers the components of an inventory, sorts them by name, type or
priority, and searches for the key component.

The session reads one line per answer. Answers that are longer than
the field they are meant for are truncated, and the rest of the line
is discarded. The end of the input ends the session as if the exit
option had been chosen. A registration that is interrupted before a
single component was entered leaves the inventory unchanged.

Input is read by a separate goroutine, so that canceling the context
of Run ends the session even while it waits for an answer.
*/
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/exascience/torre/component"
	"github.com/exascience/torre/internal/log"
	"github.com/exascience/torre/internal/metrics"
	"github.com/exascience/torre/inventory"
)

// The options of the main menu.
const (
	OptionExit = iota
	OptionRegister
	OptionSortByName
	OptionSortByType
	OptionSortByPriority
	OptionShow
)

const (
	maxOptionLen = 8
	maxAnswerLen = 4

	// maxLineLen bounds the bytes kept of a single input line. Every
	// answer is cut much shorter than this.
	maxLineLen = 1024
)

type inputLine struct {
	text string
	err  error
}

// A Session is one run of the interactive menu over a single inventory.
// Run must be called at most once.
type Session struct {
	in        *bufio.Reader
	out       io.Writer
	inventory inventory.Collection
	recorder  *metrics.Recorder

	lines <-chan inputLine

	// err is the error that ended the input early: the context's
	// error or a read error. It stays nil at the end of the input.
	err error
}

// New creates a session that reads answers from in, writes prompts and
// reports to out, and records its operations with recorder.
func New(in io.Reader, out io.Writer, recorder *metrics.Recorder) *Session {
	return &Session{
		in:       bufio.NewReader(in),
		out:      out,
		recorder: recorder,
	}
}

// Preload registers components before the session starts, as if they
// had been entered through the register option.
func (s *Session) Preload(components []component.Component) error {
	if err := s.inventory.Register(components...); err != nil {
		return err
	}
	s.recorder.ObserveRegistration()
	log.Infof("Preloaded %d components", len(components))
	return nil
}

// Inventory returns the components of the session, in their current
// order.
func (s *Session) Inventory() []component.Component {
	return s.inventory.Components()
}

// readBoundedLine reads the next line from r without its line end,
// keeping at most max bytes of it and discarding the rest.
func readBoundedLine(r *bufio.Reader, max int) (string, error) {
	var buf []byte
	for read := false; ; read = true {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if read && errors.Is(err, io.EOF) {
				return string(buf), nil
			}
			return "", err
		}
		if room := max - len(buf); room > 0 {
			buf = append(buf, chunk[:min(room, len(chunk))]...)
		}
		if !isPrefix {
			return string(buf), nil
		}
	}
}

// readLines sends the lines of s.in on the returned channel until the
// input ends, reading fails, or done is closed. A read error is sent
// before the channel is closed; the end of the input just closes it.
func (s *Session) readLines(done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		for {
			text, err := readBoundedLine(s.in, maxLineLen)
			if errors.Is(err, io.EOF) {
				return
			}
			select {
			case lines <- inputLine{text: text, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}

// readLine waits for the next line of input, cut to at most max bytes.
// ok is false when the input ended, reading failed, or ctx was
// canceled. In the latter two cases, s.err holds the reason.
func (s *Session) readLine(ctx context.Context, max int) (string, bool) {
	select {
	case <-ctx.Done():
		s.err = ctx.Err()
		return "", false
	case l, open := <-s.lines:
		switch {
		case !open:
			return "", false
		case l.err != nil:
			s.err = l.err
			return "", false
		}
		return component.Truncate(l.text, max), true
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) menu() {
	s.printf("\n\n#############################################\n")
	s.printf("###   COMPONENT ASSEMBLY ORGANIZER        ###\n")
	s.printf("#############################################\n")
	s.printf("%d. Register components\n", OptionRegister)
	s.printf("%d. Sort by NAME and search the key component (bubble sort)\n", OptionSortByName)
	s.printf("%d. Sort by TYPE (insertion sort)\n", OptionSortByType)
	s.printf("%d. Sort by PRIORITY (selection sort)\n", OptionSortByPriority)
	s.printf("%d. Show components\n", OptionShow)
	s.printf("%d. Exit\n", OptionExit)
	s.printf("---------------------------------------------\n")
	s.printf("Choose an option: ")
}

/*
Run shows the menu and executes the chosen options until the exit
option is chosen, the input ends, or ctx is canceled.

Run returns nil when the session ends normally, the context's error
when it is canceled, and the read error when reading the input fails.
*/
func (s *Session) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	s.lines = s.readLines(done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.menu()
		line, ok := s.readLine(ctx, maxOptionLen)
		if !ok {
			s.printf("\nShutting down. Bye!\n")
			return s.err
		}
		option, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			option = -1
		}
		log.Debugf("Menu option %q", line)

		switch option {
		case OptionRegister:
			s.register(ctx)
		case OptionSortByName:
			if s.requireComponents() {
				s.sort(inventory.ByName)
				s.search(ctx)
			}
		case OptionSortByType:
			if s.requireComponents() {
				s.sort(inventory.ByType)
			}
		case OptionSortByPriority:
			if s.requireComponents() {
				s.sort(inventory.ByPriority)
			}
		case OptionShow:
			RenderComponents(s.out, s.inventory.Components())
		case OptionExit:
			s.printf("\nShutting down. Bye!\n")
			return nil
		default:
			s.printf("\n[ERROR] Invalid option. Try again.\n")
		}
	}
}

func (s *Session) requireComponents() bool {
	if s.inventory.Len() == 0 {
		s.printf("[ALERT] Register the components first (option %d).\n", OptionRegister)
		return false
	}
	return true
}

// readPriority prompts until an integer in the valid priority range is
// entered.
func (s *Session) readPriority(ctx context.Context) (int, bool) {
	for {
		s.printf("Priority (%d to %d): ", component.MinPriority, component.MaxPriority)
		line, ok := s.readLine(ctx, maxOptionLen)
		if !ok {
			return 0, false
		}
		priority, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err != nil:
			s.printf("[ERROR] Please enter an integer.\n")
		case priority < component.MinPriority || priority > component.MaxPriority:
			s.printf("[ERROR] Priority must be between %d and %d.\n", component.MinPriority, component.MaxPriority)
		default:
			return priority, true
		}
	}
}

func isYes(answer string) bool {
	switch strings.TrimSpace(answer) {
	case "y", "Y", "s", "S":
		return true
	}
	return false
}

// readComponents prompts for components until the user declines to
// add another one, the capacity is reached, or the input ends. A
// component whose answers were cut short by the end of the input is
// dropped.
func (s *Session) readComponents(ctx context.Context) []component.Component {
	var components []component.Component
	for len(components) < inventory.Capacity {
		s.printf("\n--- Component #%d ---\n", len(components)+1)
		s.printf("Name: ")
		name, ok := s.readLine(ctx, component.MaxNameLen)
		if !ok {
			break
		}
		s.printf("Type: ")
		typ, ok := s.readLine(ctx, component.MaxTypeLen)
		if !ok {
			break
		}
		priority, ok := s.readPriority(ctx)
		if !ok {
			break
		}
		c, err := component.New(name, typ, priority)
		if err != nil {
			s.printf("[ERROR] %v\n", err)
			continue
		}
		components = append(components, c)

		if len(components) < inventory.Capacity {
			s.printf("\nAdd another component? (y/n): ")
			answer, ok := s.readLine(ctx, maxAnswerLen)
			if !ok || !isYes(answer) {
				break
			}
		}
	}
	return components
}

// register replaces the inventory with the components read from the
// input. The inventory is kept when the input ended before a component
// was complete, and when reading failed or ctx was canceled.
func (s *Session) register(ctx context.Context) {
	s.printf("\n### Component registration (max: %d) ###\n", inventory.Capacity)
	components := s.readComponents(ctx)
	switch {
	case s.err != nil:
		log.Warnf("Registration interrupted: %v", s.err)
		return
	case len(components) == 0:
		s.printf("\n[INFO] No component entered. The inventory is unchanged.\n")
		return
	}
	if err := s.inventory.Register(components...); err != nil {
		s.printf("\n[ERROR] %v\n", err)
		log.Errorf("Registration failed: %v", err)
		return
	}
	s.recorder.ObserveRegistration()
	log.Infof("Registered %d components", len(components))
	s.printf("\n[SUCCESS] %d components registered.\n", len(components))
}

func (s *Session) sort(o inventory.Ordering) {
	comparisons := s.inventory.Sort(o)
	s.recorder.ObserveSort(o.String(), comparisons)
	log.Infof("Sorted %d components by %s with %s: %d comparisons", s.inventory.Len(), o, o.Algorithm(), comparisons)
	s.printf("\n--- Analysis (%s, by %s) ---\n", o.Algorithm(), o)
	s.printf("Total comparisons: %d\n", comparisons)
	RenderComponents(s.out, s.inventory.Components())
}

func (s *Session) search(ctx context.Context) {
	s.printf("\n-- BINARY SEARCH --\n")
	s.printf("Enter the exact NAME of the key component: ")
	key, ok := s.readLine(ctx, component.MaxNameLen)
	if !ok {
		return
	}
	index, comparisons, err := s.inventory.SearchByName(key)
	if errors.Is(err, inventory.ErrNotSortedByName) {
		s.printf("\n[ERROR] %v\n", err)
		return
	}
	found := index != inventory.NotFound
	s.recorder.ObserveSearch(found, comparisons)
	log.Infof("Searched %q: index %d after %d comparisons", key, index, comparisons)

	s.printf("\n[INFO] Binary search comparisons: %d\n", comparisons)
	if found {
		s.printf("\n[SUCCESS] Component '%s' found! Assembly can begin.\n", s.inventory.At(index).Name)
		s.printf(">>> Rescue tower READY! <<<\n")
	} else {
		s.printf("\n[FAILURE] Key component '%s' NOT found in the inventory.\n", key)
	}
}

package session

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/exascience/torre/analysis"
	"github.com/exascience/torre/component"
	"github.com/exascience/torre/internal/metrics"
	"github.com/exascience/torre/inventory"
)

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func run(t *testing.T, input string, preload ...component.Component) (*Session, string, prometheus.Gatherer) {
	t.Helper()
	reg := prometheus.NewRegistry()
	var out bytes.Buffer
	s := New(strings.NewReader(input), &out, metrics.NewRecorder(reg))
	if len(preload) > 0 {
		require.NoError(t, s.Preload(preload))
	}
	require.NoError(t, s.Run(context.Background()))
	return s, out.String(), reg
}

var registerTower = []string{
	"1",
	"Chip", "Controle", "5", "s",
	"Antena", "Sinal", "2", "y",
	"Bateria", "Energia", "9", "n",
}

func TestRegisterSortAndSearch(t *testing.T) {
	input := append(registerTower, "2", "Bateria", "0")
	s, out, reg := run(t, lines(input...))

	require.Contains(t, out, "[SUCCESS] 3 components registered.")
	require.Contains(t, out, "--- Analysis (bubble sort, by name) ---\nTotal comparisons: 3\n")
	require.Contains(t, out, "[INFO] Binary search comparisons: 1")
	require.Contains(t, out, "[SUCCESS] Component 'Bateria' found!")
	require.True(t, strings.HasSuffix(out, "Shutting down. Bye!\n"))

	var got []string
	for _, c := range s.Inventory() {
		got = append(got, c.Name)
	}
	require.Equal(t, []string{"Antena", "Bateria", "Chip"}, got)

	n, err := testutil.GatherAndCount(reg, "torre_inventory_searches_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestSearchNotFound(t *testing.T) {
	input := append(registerTower, "2", "Motor", "0")
	_, out, _ := run(t, lines(input...))
	require.Contains(t, out, "[FAILURE] Key component 'Motor' NOT found in the inventory.")
	require.Contains(t, out, "[INFO] Binary search comparisons: 2")
}

func TestSortByTypeAndPriority(t *testing.T) {
	s, out, _ := run(t, lines("3", "0"), tower...)
	require.Contains(t, out, "--- Analysis (insertion sort, by type) ---\nTotal comparisons: 3\n")
	require.Equal(t, "Antena", s.Inventory()[2].Name)

	s, out, _ = run(t, lines("4", "5"), tower...)
	require.Contains(t, out, "--- Analysis (selection sort, by priority) ---\nTotal comparisons: 3\n")
	require.Contains(t, out, "--- Components (3) ---")
	require.Equal(t, []int{2, 5, 9}, []int{s.Inventory()[0].Priority, s.Inventory()[1].Priority, s.Inventory()[2].Priority})
}

func TestEmptyInventory(t *testing.T) {
	_, out, _ := run(t, lines("2", "3", "4", "5", "0"))
	require.Equal(t, 3, strings.Count(out, "[ALERT] Register the components first (option 1)."))
	require.Contains(t, out, "[INFO] No components registered.")
	require.NotContains(t, out, "Total comparisons")
}

func TestInvalidInput(t *testing.T) {
	input := lines(
		"9", "abc", "2x", "",
		"1", strings.Repeat("N", 40), strings.Repeat("T", 40), "x", "0", "11", "7", "n",
		"0",
	)
	s, out, _ := run(t, input)
	require.Equal(t, 4, strings.Count(out, "[ERROR] Invalid option. Try again."))
	require.Contains(t, out, "[ERROR] Please enter an integer.")
	require.Equal(t, 2, strings.Count(out, "[ERROR] Priority must be between 1 and 10."))

	require.Len(t, s.Inventory(), 1)
	c := s.Inventory()[0]
	require.Equal(t, strings.Repeat("N", component.MaxNameLen), c.Name)
	require.Equal(t, strings.Repeat("T", component.MaxTypeLen), c.Type)
	require.Equal(t, 7, c.Priority)
}

func TestRegisterOverwrites(t *testing.T) {
	input := append(registerTower, "2", "Chip", "1", "Motor", "Propulsao", "3", "n", "5", "0")
	s, out, _ := run(t, lines(input...))
	require.Contains(t, out, "[SUCCESS] 1 components registered.")
	require.Equal(t, []component.Component{{Name: "Motor", Type: "Propulsao", Priority: 3}}, s.Inventory())
}

func TestRegisterStopsAtCapacity(t *testing.T) {
	input := []string{"1"}
	for i := 0; i < inventory.Capacity; i++ {
		input = append(input, "part", "type", "1")
		if i < inventory.Capacity-1 {
			input = append(input, "y")
		}
	}
	input = append(input, "0")
	s, out, _ := run(t, lines(input...))
	require.Len(t, s.Inventory(), inventory.Capacity)
	require.Equal(t, inventory.Capacity-1, strings.Count(out, "Add another component?"))
	require.Contains(t, out, "Shutting down. Bye!")
}

var tower = []component.Component{
	{Name: "Chip", Type: "Controle", Priority: 5},
	{Name: "Antena", Type: "Sinal", Priority: 2},
	{Name: "Bateria", Type: "Energia", Priority: 9},
}

func TestEndOfInput(t *testing.T) {
	s, out, _ := run(t, lines("1", "Chip", "Controle"))
	require.Contains(t, out, "[INFO] No component entered. The inventory is unchanged.")
	require.NotContains(t, out, "[SUCCESS]")
	require.True(t, strings.HasSuffix(out, "Shutting down. Bye!\n"))
	require.Empty(t, s.Inventory())
}

func TestEndOfInputKeepsInventory(t *testing.T) {
	s, out, _ := run(t, "1", tower...)
	require.Contains(t, out, "[INFO] No component entered. The inventory is unchanged.")
	require.Equal(t, tower, s.Inventory())

	s, out, _ = run(t, lines("1", "Motor", "Propulsao", "3", "y", "Cabo"), tower...)
	require.Contains(t, out, "[SUCCESS] 1 components registered.")
	require.Equal(t, []component.Component{{Name: "Motor", Type: "Propulsao", Priority: 3}}, s.Inventory())
}

func TestLongLine(t *testing.T) {
	input := lines("1", strings.Repeat("N", 70000), "Controle", "5", "n", "2", strings.Repeat("N", 70000), "0")
	s, out, _ := run(t, input)
	require.Contains(t, out, "[SUCCESS] 1 components registered.")
	require.Contains(t, out, "[SUCCESS] Component '"+strings.Repeat("N", component.MaxNameLen)+"' found!")
	require.Equal(t, []component.Component{
		{Name: strings.Repeat("N", component.MaxNameLen), Type: "Controle", Priority: 5},
	}, s.Inventory())
}

func TestReadBoundedLine(t *testing.T) {
	r := bufio.NewReaderSize(strings.NewReader("abcdefghijklmnopqrstuvwxyz\r\nshort\n\nlast"), 16)
	for _, want := range []string{"abcdefghij", "short", "", "last"} {
		got, err := readBoundedLine(r, 10)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := readBoundedLine(r, 10)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadError(t *testing.T) {
	errRead := errors.New("read failed")
	var out bytes.Buffer
	s := New(io.MultiReader(strings.NewReader(lines("1", "Motor")), iotest.ErrReader(errRead)), &out, metrics.NewRecorder(prometheus.NewRegistry()))
	require.NoError(t, s.Preload(tower))
	require.ErrorIs(t, s.Run(context.Background()), errRead)
	require.Equal(t, tower, s.Inventory())
	require.True(t, strings.HasSuffix(out.String(), "Shutting down. Bye!\n"))
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(strings.NewReader(lines("0")), &bytes.Buffer{}, metrics.NewRecorder(prometheus.NewRegistry()))
	require.ErrorIs(t, s.Run(ctx), context.Canceled)
}

// runOnPipe starts s.Run on input written to the returned pipe, and
// returns a channel that receives the result of Run.
func runOnPipe(ctx context.Context, t *testing.T, s *Session, pr *io.PipeReader) <-chan error {
	t.Helper()
	t.Cleanup(func() { pr.Close() })
	result := make(chan error, 1)
	go func() { result <- s.Run(ctx) }()
	return result
}

func TestCanceledWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	s := New(pr, io.Discard, metrics.NewRecorder(prometheus.NewRegistry()))
	require.NoError(t, s.Preload(tower))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	result := runOnPipe(ctx, t, s, pr)

	_, err := io.WriteString(pw, lines("5"))
	require.NoError(t, err)
	cancel()
	require.ErrorIs(t, <-result, context.Canceled)
}

func TestCanceledDuringRegistration(t *testing.T) {
	pr, pw := io.Pipe()
	s := New(pr, io.Discard, metrics.NewRecorder(prometheus.NewRegistry()))
	require.NoError(t, s.Preload(tower))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	result := runOnPipe(ctx, t, s, pr)

	_, err := io.WriteString(pw, lines("1", "Motor", "Propulsao"))
	require.NoError(t, err)
	cancel()
	require.ErrorIs(t, <-result, context.Canceled)
	require.Equal(t, tower, s.Inventory())
}

func TestPreloadRejectsInvalidComponents(t *testing.T) {
	s := New(strings.NewReader(""), &bytes.Buffer{}, metrics.NewRecorder(prometheus.NewRegistry()))
	require.ErrorIs(t, s.Preload([]component.Component{{Name: "Chip", Type: "Controle", Priority: 0}}), component.ErrPriorityRange)
	require.Empty(t, s.Inventory())
}

func TestRenderSummaries(t *testing.T) {
	summaries, err := analysis.Run(context.Background(), analysis.Config{Trials: 2, MaxSize: 2})
	require.NoError(t, err)

	var out bytes.Buffer
	RenderSummaries(&out, summaries)
	require.Contains(t, out.String(), "ALGORITHM")
	require.Contains(t, out.String(), "bubble sort")
	require.Contains(t, out.String(), "insertion sort")
	require.Contains(t, out.String(), "selection sort")
}

// internal/display/display_test.go
package display

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/touchhand/internal/frame"
	"github.com/tamzrod/touchhand/internal/poller"
	"github.com/tamzrod/touchhand/internal/status"
)

func okResult(t *testing.T, seq uint64) poller.Result {
	t.Helper()
	flat := make([]uint16, 80)
	for i := range flat {
		flat[i] = uint16(i * 25)
	}
	g, err := frame.Reshape(flat, 10, 8)
	require.NoError(t, err)
	return poller.Result{
		DeviceID: "hand",
		Seq:      seq,
		At:       time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Raw:      flat,
		Grid:     g,
		Image:    frame.ToImage(g, 2000),
		Status:   status.Snapshot{Health: status.HealthOK, Frames: seq},
	}
}

func TestCellWidth(t *testing.T) {
	assert.Equal(t, 2, CellWidth(50))
	assert.Equal(t, 2, CellWidth(1))
	assert.Equal(t, 4, CellWidth(100))
}

func TestCellColor_RedOnly(t *testing.T) {
	assert.Equal(t, "#FF0000", CellColor(color.RGBA{R: 255, A: 255}))
	assert.Equal(t, "#800000", CellColor(color.RGBA{R: 128, A: 255}))
	assert.Equal(t, "#000000", CellColor(color.RGBA{A: 255}))
}

func TestRenderHeatmap_Geometry(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 10))
	out := RenderHeatmap(img, 3)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	for _, l := range lines {
		assert.Equal(t, 24, lipgloss.Width(l))
	}
	assert.Equal(t, "", RenderHeatmap(nil, 2))
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		m := newModel("hand", 50)
		next, cmd := m.Update(key)
		require.NotNil(t, cmd, key.String())
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit, key.String())
		assert.Equal(t, "Shutting down...\n", next.View())
	}
}

func TestModel_OtherKeysIgnored(t *testing.T) {
	m := newModel("hand", 50)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
}

func TestModel_KeepsLastFrameOnFailedCycle(t *testing.T) {
	var m tea.Model = newModel("hand", 50)
	assert.Contains(t, m.View(), "Waiting for first frame")

	m, _ = m.Update(frameMsg(okResult(t, 1)))
	assert.Contains(t, m.View(), "frame #1")

	failed := poller.Result{
		Seq: 2,
		Err: errors.New("no data"),
		Status: status.Snapshot{
			Health:    status.HealthError,
			LastError: "no data",
			Failures:  1,
		},
	}
	m, _ = m.Update(frameMsg(failed))

	view := m.View()
	assert.Contains(t, view, "frame #1")
	assert.Contains(t, view, "no data")
}

func TestModel_WindowSize(t *testing.T) {
	next, _ := newModel("hand", 50).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	mm := next.(model)
	assert.Equal(t, 120, mm.width)
	assert.Equal(t, 40, mm.height)
}

func TestTUI_ShowAfterQuitRequestsStop(t *testing.T) {
	var out bytes.Buffer
	ui := NewTUI("hand", 50,
		tea.WithInput(nil),
		tea.WithOutput(&out),
		tea.WithoutSignalHandler(),
	)

	errc := make(chan error, 1)
	go func() { errc <- ui.Run() }()

	require.NoError(t, ui.Show(context.Background(), okResult(t, 1)))
	ui.Quit()

	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("TUI did not stop")
	}

	assert.ErrorIs(t, ui.Show(context.Background(), okResult(t, 2)), poller.ErrQuit)
}

func TestConsole_PrintsMatrixAndSkips(t *testing.T) {
	var buf bytes.Buffer
	c := Console{W: &buf}

	require.NoError(t, c.Show(context.Background(), okResult(t, 7)))
	require.NoError(t, c.Show(context.Background(), poller.Result{Seq: 8, Err: errors.New("no data")}))

	out := buf.String()
	assert.Contains(t, out, "#7 2024-01-01T12:00:00Z")
	assert.Contains(t, out, "1975")
	assert.Contains(t, out, "#8")
	assert.Contains(t, out, "skipped: no data")
}

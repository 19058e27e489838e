package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeDeck(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	writeDeck(t, path, "slides: [{title: a}, {title: b}]")

	w, err := New(path, nil)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	go w.Run(ctx)
	defer func() {
		cancel()
		<-w.Done()
	}()

	writeDeck(t, path, "slides: [{title: x}, {title: y}, {title: z}]")

	select {
	case slides := <-w.Decks():
		require.Len(t, slides, 3)
		require.Equal(t, "x", slides[0].Title)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestIgnoresOtherFilesAndBadDecks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	writeDeck(t, path, "slides: [{title: a}, {title: b}]")

	w, err := New(path, nil)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	go w.Run(ctx)
	defer func() {
		cancel()
		<-w.Done()
	}()

	writeDeck(t, filepath.Join(dir, "other.yaml"), "slides: [{title: q}]")
	writeDeck(t, path, "slides: {")

	select {
	case slides := <-w.Decks():
		t.Fatalf("unexpected reload: %v", slides)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	writeDeck(t, path, "slides: [{title: a}, {title: b}]")

	w, err := New(path, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go w.Run(ctx)
	cancel()

	select {
	case <-w.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

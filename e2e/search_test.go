//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWithFakeTMDB(t *testing.T) (*TUITestFramework, *fakeTMDB) {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	tmdb := newFakeTMDB(t)
	cfg, err := tf.WriteConfig(tmdb.URL)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp(cfg))
	require.True(t, tf.Ready(), "Should render the title")
	require.True(t, tf.SeePlain("Trending this week"), "Should load the home screen")
	return tf, tmdb
}

func TestTypeAheadDebouncesAndShowsLatestResults(t *testing.T) {
	t.Parallel()
	tf, tmdb := startWithFakeTMDB(t)

	require.NoError(t, tf.SendKeys(KeySearch))
	require.NoError(t, tf.Type("batm"))

	require.True(t, tf.SeePlain("[T] Batman"), "Should show the suggestions for the final query")
	assert.Equal(t, []string{"batm"}, tmdb.Queries(), "one lookup for the whole burst")
}

func TestSuggestionOpensDetailScreen(t *testing.T) {
	t.Parallel()
	tf, _ := startWithFakeTMDB(t)

	require.NoError(t, tf.SendKeys(KeySearch))
	require.NoError(t, tf.Type("bat"))
	require.True(t, tf.SeePlain("Batman Begins"))

	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyEnter))
	if !tf.SeePlain("Evil fears the knight.") {
		tf.DumpTailOnFail(t, "detail-failure", 4096)
		t.Fatal("Should open the movie screen")
	}
	require.True(t, tf.SeePlain("The Dark Knight"), "Should list similar titles")

	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyBack))
	require.True(t, tf.SeePlain("Dune: Part Two"), "Back should return to the home screen")
}

func TestSubmitShowsResultList(t *testing.T) {
	t.Parallel()
	tf, tmdb := startWithFakeTMDB(t)

	require.NoError(t, tf.SendKeys(KeySearch))
	require.NoError(t, tf.Type("nothing here"))
	require.NoError(t, tf.SendKeys(KeyEnter))

	require.True(t, tf.SeePlain(`Results for "nothing here"`))
	require.True(t, tf.SeePlain("Nothing matched"))
	assert.Contains(t, tmdb.Queries(), "nothing here")
}

func TestClickOutsideDismissesSuggestions(t *testing.T) {
	t.Parallel()
	tf, _ := startWithFakeTMDB(t)

	require.NoError(t, tf.SendKeys(KeySearch))
	require.NoError(t, tf.Type("bat"))
	require.True(t, tf.SeePlain("Batman Begins"))

	// let the last frame settle before watching for the redraw
	time.Sleep(100 * time.Millisecond)
	tf.Reset()
	require.NoError(t, tf.Click(60, 30))

	dismissed := tf.WaitFor(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return strings.Contains(plain, "Trending this week") && !strings.Contains(plain, "Batman Begins")
	}, 3*time.Second)
	if !dismissed {
		tf.DumpTailOnFail(t, "dismiss-failure", 4096)
		t.Fatal("Outside click should hide the suggestions")
	}
}

func TestHelpPopup(t *testing.T) {
	t.Parallel()
	tf, _ := startWithFakeTMDB(t)

	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SeePlain("cinegrip Help"))

	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyEsc))
	require.True(t, tf.SeePlain("Trending this week"))
}

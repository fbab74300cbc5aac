package stroke_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/strokeviz/stroke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestLookup_TriggerOnly returns the placeholder space with no framing.
func TestLookup_TriggerOnly(t *testing.T) {
	got, err := stroke.Lookup([]string{stroke.DefaultTrigger})
	require.NoError(t, err)
	assert.Equal(t, " ", got)
}

// TestLookup_Misses covers wrong triggers, empty keys and bad strokes.
func TestLookup_Misses(t *testing.T) {
	keys := [][]string{
		{},
		{"STR*"},
		{"KPWR"},
		{"STRZ", "KA"},
		{"STR*Z", "XYZ"},
		{"STR*Z", "ka"},
	}
	for _, key := range keys {
		got, err := stroke.Lookup(key)
		assert.ErrorIs(t, err, stroke.ErrNotFound, "key %v", key)
		assert.Empty(t, got)
	}
}

// TestLookup_TooLongPanics treats an oversized key as a caller defect.
func TestLookup_TooLongPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = stroke.Lookup([]string{stroke.DefaultTrigger, "KA", "KA"})
	})
	assert.Panics(t, func() {
		_, _, _ = stroke.New().Explain([]string{"X", "Y", "Z"})
	})
}

// TestLookup_Forms runs the whole pipeline for each form.
func TestLookup_Forms(t *testing.T) {
	got, err := stroke.Lookup([]string{"STR*Z", "KPWR"})
	require.NoError(t, err)
	assert.Equal(t, "\nP\nKWR\n", got)

	got, err = stroke.Lookup([]string{"STR*Z", "KPWR"}, stroke.WithAlwaysFullForm(true))
	require.NoError(t, err)
	assert.Equal(t, "\n- - p - -  - - - - - -\n- k w r -  - - - - - -\n      - -  - -\n", got)

	got, err = stroke.Lookup([]string{"STR*Z", "KA"})
	require.NoError(t, err)
	assert.Equal(t, "\n- - - - -\n- k - - -\n      a -\n", got)
}

// TestLookup_Idempotent renders the same key twice.
func TestLookup_Idempotent(t *testing.T) {
	tr := stroke.New()
	key := []string{"STR*Z", "STKPWHRAO*EUFRPBLGTSDZ"}
	first, err := tr.Lookup(key)
	require.NoError(t, err)
	second, err := tr.Lookup(key)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestTranslator_Options checks trigger replacement and option validation.
func TestTranslator_Options(t *testing.T) {
	tr := stroke.New(stroke.WithTrigger("SHOW"))
	assert.Equal(t, "SHOW", tr.Trigger())
	assert.Equal(t, stroke.LongestKey, tr.LongestKey())

	got, err := tr.Lookup([]string{"SHOW"})
	require.NoError(t, err)
	assert.Equal(t, " ", got)

	_, err = tr.Lookup([]string{stroke.DefaultTrigger})
	assert.ErrorIs(t, err, stroke.ErrNotFound)

	assert.Panics(t, func() { stroke.WithTrigger("") })
}

// TestTranslator_Explain reports the form without rendering.
func TestTranslator_Explain(t *testing.T) {
	tr := stroke.New()
	form, parts, err := tr.Explain([]string{"STR*Z", "-FR"})
	require.NoError(t, err)
	assert.Equal(t, stroke.RightConsonants, form)
	assert.Equal(t, []string{"F", "R"}, parts.Keys())

	_, _, err = tr.Explain([]string{"STR*Z"})
	assert.ErrorIs(t, err, stroke.ErrNotFound)
	_, _, err = tr.Explain([]string{"STR*Z", "Q"})
	assert.ErrorIs(t, err, stroke.ErrNotFound)
}

// TestTranslator_Concurrent shares one Translator across goroutines.
func TestTranslator_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)
	tr := stroke.New()
	want, err := tr.Lookup([]string{"STR*Z", "KPWR-FPL"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = tr.Lookup([]string{"STR*Z", "KPWR-FPL"})
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

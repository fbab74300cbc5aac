package stroke_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/strokeviz/stroke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, code string, alwaysFull bool) (string, stroke.Form) {
	t.Helper()
	p, err := stroke.Parse(code)
	require.NoError(t, err, "stroke %q", code)
	hands, star := stroke.Assemble(p)
	form := stroke.Classify(hands, alwaysFull)

	return stroke.Render(hands, star, form), form
}

// TestRender_Golden pins the exact diagram text of every form.
func TestRender_Golden(t *testing.T) {
	cases := []struct {
		name       string
		code       string
		alwaysFull bool
		form       stroke.Form
		want       string
	}{
		{
			name: "full with star",
			code: "STKPWHRAO*EUFRPBLGTSDZ",
			form: stroke.Full,
			want: "\n- t p h *  * f p l t d\ns k w r *  * r b g s z\n      a o  e u\n",
		},
		{
			name: "full with number key",
			code: "#STKPWHRAO*EUFRPBLGTSDZ",
			form: stroke.Full,
			want: "\n# t p h *  * f p l t d\ns k w r *  * r b g s z\n      a o  e u\n",
		},
		{
			name: "full both consonant skeletons",
			code: "KPWR-FPL",
			form: stroke.Full,
			want: "\n- - p - -  - f p l - -\n- k w r -  - - - - - -\n      - -  - -\n",
		},
		{
			name: "full vowel only",
			code: "A",
			form: stroke.Full,
			want: "\n- - - - -  - - - - - -\n- - - - -  - - - - - -\n      a -  - -\n",
		},
		{
			name: "full empty stroke",
			code: "",
			form: stroke.Full,
			want: "\n- - - - -  - - - - - -\n- - - - -  - - - - - -\n      - -  - -\n",
		},
		{
			name:       "forced full",
			code:       "KPWR",
			alwaysFull: true,
			form:       stroke.Full,
			want:       "\n- - p - -  - - - - - -\n- k w r -  - - - - - -\n      - -  - -\n",
		},
		{
			name: "left full",
			code: "KA",
			form: stroke.LeftFull,
			want: "\n- - - - -\n- k - - -\n      a -\n",
		},
		{
			name: "left full with star",
			code: "KA*",
			form: stroke.LeftFull,
			want: "\n- - - - *\n- k - - *\n      a -\n",
		},
		{
			name: "right full",
			code: "EF",
			form: stroke.RightFull,
			want: "\n- f - - - -\n- - - - - -\ne -\n",
		},
		{
			name: "left consonants",
			code: "KPWR",
			form: stroke.LeftConsonants,
			want: "\nP\nKWR\n",
		},
		{
			name: "left consonants drop star",
			code: "STKPW*",
			form: stroke.LeftConsonants,
			want: "\nTP\nSKW\n",
		},
		{
			name: "right consonants",
			code: "-FR",
			form: stroke.RightConsonants,
			want: "\nF\nR\n",
		},
		{
			name: "right consonants spread",
			code: "-PBLG",
			form: stroke.RightConsonants,
			want: "\nPL\nBG\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, form := render(t, tc.code, tc.alwaysFull)
			assert.Equal(t, tc.form, form)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestRender_LineCounts checks framing: two rows for consonant forms, three
// otherwise, each preceded by a newline with one trailing newline.
func TestRender_LineCounts(t *testing.T) {
	for code, rows := range map[string]int{"KPWR": 2, "-FR": 2, "KA": 3, "EF": 3, "KPWR-FPL": 3} {
		got, _ := render(t, code, false)
		assert.True(t, strings.HasPrefix(got, "\n"), code)
		assert.True(t, strings.HasSuffix(got, "\n"), code)
		assert.Equal(t, rows+1, strings.Count(got, "\n"), code)
	}
}

// TestRender_InvalidFormPanics treats an undeclared Form as a defect.
func TestRender_InvalidFormPanics(t *testing.T) {
	hands, star := stroke.Assemble(stroke.Parts{})
	assert.Panics(t, func() { stroke.Render(hands, star, stroke.Form(42)) })
}

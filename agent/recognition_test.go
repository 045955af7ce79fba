package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numvision/ocr-number-gate/internal/models"
	"github.com/numvision/ocr-number-gate/internal/ocr"
)

type stubRunner struct {
	text string
	err  error
}

func (s *stubRunner) RunRecognition(ctx context.Context, name string, image []byte, region models.Region) (*ocr.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &ocr.Result{Text: s.text}, nil
}

func TestNewByName(t *testing.T) {
	runner := &stubRunner{text: "1"}

	for _, name := range Names() {
		rec, err := New(name, runner)
		require.NoError(t, err)
		assert.Equal(t, name, rec.Name())
	}

	_, err := New("CountWidgets", runner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), NameGreaterThanZero)
	assert.Contains(t, err.Error(), NameComparison)
}

func TestGreaterThanZeroDetects(t *testing.T) {
	rec := NewGreaterThanZero(&stubRunner{text: "12"})

	res, ok := rec.Analyze(context.Background(), AnalyzeArg{
		TaskName: "CheckCoins",
		Image:    []byte("img"),
	})
	require.True(t, ok)
	assert.Equal(t, `{"number":12,"greater_than_zero":true}`, res.Detail)
	assert.True(t, res.Box.IsEmpty())
}

func TestComparisonDetects(t *testing.T) {
	rec := NewComparison(&stubRunner{text: "75"})

	res, ok := rec.Analyze(context.Background(), AnalyzeArg{
		TaskName: "CheckHealth",
		Image:    []byte("img"),
		Params:   []byte(`{"compare_value":50,"operator":">="}`),
	})
	require.True(t, ok)
	assert.Equal(t,
		`{"number":75,"compare_value":50,"operator":">=","result":true,"description":"75 >= 50"}`,
		res.Detail)
}

func TestEveryMissLooksTheSame(t *testing.T) {
	tests := []struct {
		name   string
		runner *stubRunner
		rec    string
		params string
	}{
		{"config error", &stubRunner{text: "5"}, NameComparison, `{}`},
		{"ocr failure", &stubRunner{err: errors.New("engine down")}, NameComparison, `{"compare_value":3}`},
		{"parse error", &stubRunner{text: "n/a"}, NameComparison, `{"compare_value":3}`},
		{"comparison false", &stubRunner{text: "2"}, NameComparison, `{"compare_value":3}`},
		{"unreadable integer", &stubRunner{text: "3.5"}, NameGreaterThanZero, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := New(tt.rec, tt.runner)
			require.NoError(t, err)

			res, ok := rec.Analyze(context.Background(), AnalyzeArg{
				TaskName: "Gate",
				Image:    []byte("img"),
				Params:   []byte(tt.params),
			})
			assert.False(t, ok)
			assert.Equal(t, AnalyzeResult{}, res, "a miss must not leak partial results")
		})
	}
}

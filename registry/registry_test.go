package registry

import (
	"testing"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopRecognition struct{}

func (nopRecognition) Run(*maa.Context, *maa.CustomRecognitionArg) (*maa.CustomRecognitionResult, bool) {
	return nil, false
}

type nopAction struct{}

func (nopAction) Run(*maa.Context, *maa.CustomActionArg) bool { return true }

type recordingSink struct {
	installed []string
	reject    string
}

func (s *recordingSink) RegisterRecognition(name string, _ RecognitionRunner) bool {
	s.installed = append(s.installed, "reco:"+name)
	return name != s.reject
}

func (s *recordingSink) RegisterAction(name string, _ ActionRunner) bool {
	s.installed = append(s.installed, "action:"+name)
	return name != s.reject
}

func TestRegistry_Add(t *testing.T) {
	reg := New()

	require.NoError(t, reg.AddRecognition("B", nopRecognition{}))
	require.NoError(t, reg.AddRecognition("A", nopRecognition{}))
	require.NoError(t, reg.AddAction("A", nopAction{}))

	assert.ErrorIs(t, reg.AddRecognition("A", nopRecognition{}), ErrDuplicate)
	assert.ErrorIs(t, reg.AddAction("A", nopAction{}), ErrDuplicate)
	assert.ErrorIs(t, reg.AddRecognition("", nopRecognition{}), ErrEmptyName)
	assert.ErrorIs(t, reg.AddAction("", nopAction{}), ErrEmptyName)

	assert.Equal(t, []string{"A", "B"}, reg.RecognitionNames())
	assert.Equal(t, []string{"A"}, reg.ActionNames())

	_, ok := reg.Recognition("B")
	assert.True(t, ok)
	_, ok = reg.Action("B")
	assert.False(t, ok)
}

func TestRegistry_Install(t *testing.T) {
	reg := New()
	require.NoError(t, reg.AddAction("Tap", nopAction{}))
	require.NoError(t, reg.AddRecognition("Find", nopRecognition{}))
	require.NoError(t, reg.AddRecognition("Check", nopRecognition{}))

	sink := &recordingSink{}
	require.NoError(t, reg.Install(sink))

	assert.Equal(t, []string{"reco:Check", "reco:Find", "action:Tap"}, sink.installed)
}

func TestRegistry_InstallReportsRejectedEntry(t *testing.T) {
	reg := New()
	require.NoError(t, reg.AddRecognition("Find", nopRecognition{}))
	require.NoError(t, reg.AddRecognition("Check", nopRecognition{}))
	require.NoError(t, reg.AddAction("Tap", nopAction{}))

	t.Run("recognition", func(t *testing.T) {
		sink := &recordingSink{reject: "Check"}
		err := reg.Install(sink)

		assert.ErrorIs(t, err, ErrRejected)
		assert.ErrorContains(t, err, `"Check"`)
		assert.Equal(t, []string{"reco:Check"}, sink.installed)
	})

	t.Run("action", func(t *testing.T) {
		sink := &recordingSink{reject: "Tap"}
		err := reg.Install(sink)

		assert.ErrorIs(t, err, ErrRejected)
		assert.ErrorContains(t, err, `action "Tap"`)
	})
}

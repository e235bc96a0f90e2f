package main

import (
	"errors"
	"testing"

	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/reel"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEngagement struct {
	mock.Mock
}

func (m *MockEngagement) Toggle(videoID uint, deviceID string) (*entity.LikeResult, error) {
	args := m.Called(videoID, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeResult), args.Error(1)
}

func (m *MockEngagement) IsLiked(videoID uint, deviceID string) (bool, error) {
	args := m.Called(videoID, deviceID)
	return args.Bool(0), args.Error(1)
}

var _ reel.Engagement = (*MockEngagement)(nil)

func newTestFeedModel(t *testing.T) (feedModel, *MockEngagement) {
	t.Helper()
	eng := new(MockEngagement)
	eng.On("IsLiked", mock.Anything, "device-1").Return(false, nil)

	videos := []*entity.Video{
		{ID: 1, Title: "Morning at the farm", LikesCount: 10},
		{ID: 2, Title: "Feeding time", LikesCount: 3},
	}
	seq := reel.NewSequencer(videos, "device-1", eng)

	return feedModel{seq: seq, engagement: eng, deviceID: "device-1"}, eng
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// The like command only does the ledger call; the sequencer is mutated on the
// event loop when the result message lands, never from the command goroutine.
func TestLikeKey_SequencerMutatesOnlyOnResultMessage(t *testing.T) {
	m, eng := newTestFeedModel(t)
	eng.On("Toggle", uint(1), "device-1").Return(&entity.LikeResult{Liked: true, LikesCount: 11}, nil).Once()

	updated, cmd := m.Update(keyMsg('l'))
	m = updated.(feedModel)
	assert.NotNil(t, cmd)
	assert.False(t, m.seq.Clip(0).Liked)

	msg := cmd()
	assert.False(t, m.seq.Clip(0).Liked, "running the command must not touch the sequencer")

	updated, _ = m.Update(msg)
	m = updated.(feedModel)

	assert.True(t, m.seq.Clip(0).Liked)
	assert.Equal(t, 11, m.seq.Clip(0).LikesCount)
	eng.AssertExpectations(t)
}

func TestLikeKey_TogglesTheActiveClip(t *testing.T) {
	m, eng := newTestFeedModel(t)
	eng.On("Toggle", uint(2), "device-1").Return(&entity.LikeResult{Liked: true, LikesCount: 4}, nil).Once()

	updated, _ := m.Update(keyMsg('j'))
	m = updated.(feedModel)

	updated, cmd := m.Update(keyMsg('l'))
	m = updated.(feedModel)
	updated, _ = m.Update(cmd())
	m = updated.(feedModel)

	assert.True(t, m.seq.Clip(1).Liked)
	assert.Equal(t, 4, m.seq.Clip(1).LikesCount)
	eng.AssertExpectations(t)
}

func TestLikeKey_ErrorSetsStatusAndLeavesProjection(t *testing.T) {
	m, eng := newTestFeedModel(t)
	eng.On("Toggle", uint(1), "device-1").Return(nil, errors.New("server down")).Once()

	updated, cmd := m.Update(keyMsg('l'))
	m = updated.(feedModel)
	updated, _ = m.Update(cmd())
	m = updated.(feedModel)

	assert.False(t, m.seq.Clip(0).Liked)
	assert.Equal(t, 10, m.seq.Clip(0).LikesCount)
	assert.Contains(t, m.status, "like failed")
}

func TestTick_AdvancesOnlyThePlayingClip(t *testing.T) {
	m, _ := newTestFeedModel(t)

	updated, _ := m.Update(tickMsg{})
	m = updated.(feedModel)
	assert.Equal(t, 1.0, m.seq.Position(0))

	m.seq.TogglePlayPause(0)
	updated, _ = m.Update(tickMsg{})
	m = updated.(feedModel)
	assert.Equal(t, 1.0, m.seq.Position(0))
}

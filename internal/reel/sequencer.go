// Package reel holds the client-side playback state for the vertical video
// feed: exactly one clip is active at a time, activation always restarts the
// clip from zero, and like state is a local projection of the ledger's toggle
// responses. The sequencer is plain state driven by discrete input events and
// expects single-threaded use.
package reel

import (
	"bakra-mandi/internal/entity"
)

// Engagement is the slice of the like ledger the sequencer needs. The HTTP
// usecase satisfies it on the server; cmd/reels wires an API-backed one.
type Engagement interface {
	Toggle(videoID uint, deviceID string) (*entity.LikeResult, error)
	IsLiked(videoID uint, deviceID string) (bool, error)
}

// Key is a navigation key press.
type Key int

const (
	KeyUp Key = iota
	KeyDown
)

// Clip is one feed entry plus the viewer-local like projection.
type Clip struct {
	ID           uint
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	LikesCount   int
	Liked        bool
}

type playbackState struct {
	playing  bool
	muted    bool
	position float64
}

type Sequencer struct {
	deviceID   string
	engagement Engagement
	clips      []Clip
	playback   []playbackState
	current    int
}

// NewSequencer snapshots the feed and primes each clip's liked flag from the
// ledger once. A failed status lookup just reads as "not liked"; the feed
// still loads.
func NewSequencer(videos []*entity.Video, deviceID string, engagement Engagement) *Sequencer {
	s := &Sequencer{
		deviceID:   deviceID,
		engagement: engagement,
		clips:      make([]Clip, 0, len(videos)),
		playback:   make([]playbackState, len(videos)),
		current:    -1,
	}

	for i, v := range videos {
		clip := Clip{
			ID:           v.ID,
			Title:        v.Title,
			Description:  v.Description,
			VideoURL:     v.VideoURL,
			ThumbnailURL: v.ThumbnailURL,
			LikesCount:   v.LikesCount,
		}
		if engagement != nil {
			if liked, err := engagement.IsLiked(v.ID, deviceID); err == nil {
				clip.Liked = liked
			}
		}
		s.clips = append(s.clips, clip)
		s.playback[i] = playbackState{muted: true}
	}

	if len(s.clips) > 0 {
		s.activate(0)
	}

	return s
}

func (s *Sequencer) Len() int { return len(s.clips) }

// Idle reports whether the feed is empty; every transition is a no-op then.
func (s *Sequencer) Idle() bool { return len(s.clips) == 0 }

// Current returns the active index, or -1 when idle.
func (s *Sequencer) Current() int { return s.current }

// Clip returns a copy of the clip at i.
func (s *Sequencer) Clip(i int) Clip {
	return s.clips[i]
}

// activate makes i the only playing clip and restarts it from zero. A clip
// never resumes mid-playback from an earlier activation.
func (s *Sequencer) activate(i int) {
	for j := range s.playback {
		s.playback[j].playing = false
	}
	s.playback[i].position = 0
	s.playback[i].playing = true
	s.current = i
}

// Next advances to the following clip. At the end of the feed it is a silent
// no-op: no wraparound, no playback side effect.
func (s *Sequencer) Next() bool {
	if s.Idle() || s.current >= len(s.clips)-1 {
		return false
	}
	s.activate(s.current + 1)
	return true
}

// Previous steps back one clip, no-op at the top of the feed.
func (s *Sequencer) Previous() bool {
	if s.Idle() || s.current <= 0 {
		return false
	}
	s.activate(s.current - 1)
	return true
}

// Wheel maps a scroll delta onto Next/Previous: scrolling down moves forward.
func (s *Sequencer) Wheel(delta int) bool {
	if delta > 0 {
		return s.Next()
	}
	if delta < 0 {
		return s.Previous()
	}
	return false
}

func (s *Sequencer) Key(k Key) bool {
	switch k {
	case KeyDown:
		return s.Next()
	case KeyUp:
		return s.Previous()
	}
	return false
}

// ToggleLike flips the like for clip i through the ledger and applies the
// delta the returned state implies. The local count is never re-read from the
// server, so likes from other devices cannot clobber it mid-session.
func (s *Sequencer) ToggleLike(i int) error {
	if i < 0 || i >= len(s.clips) || s.engagement == nil {
		return nil
	}

	result, err := s.engagement.Toggle(s.clips[i].ID, s.deviceID)
	if err != nil {
		return err
	}

	s.ApplyLike(i, result)
	return nil
}

// ApplyLike folds a toggle result into clip i's local projection. Callers that
// run the ledger call off the UI loop use this to land the result back on it.
func (s *Sequencer) ApplyLike(i int, result *entity.LikeResult) {
	if i < 0 || i >= len(s.clips) || result == nil {
		return
	}

	s.clips[i].Liked = result.Liked
	if result.Liked {
		s.clips[i].LikesCount++
	} else if s.clips[i].LikesCount > 0 {
		s.clips[i].LikesCount--
	}
}

// TogglePlayPause flips playback manually. Only the active clip accepts it.
func (s *Sequencer) TogglePlayPause(i int) bool {
	if i != s.current || s.Idle() {
		return false
	}
	s.playback[i].playing = !s.playback[i].playing
	return true
}

// ToggleMute flips the active clip's mute flag. Clips start muted.
func (s *Sequencer) ToggleMute(i int) bool {
	if i != s.current || s.Idle() {
		return false
	}
	s.playback[i].muted = !s.playback[i].muted
	return true
}

// ClipEnded loops the active clip: back to zero, keep playing. Natural
// completion never advances the feed.
func (s *Sequencer) ClipEnded(i int) {
	if i != s.current || s.Idle() {
		return
	}
	s.playback[i].position = 0
	s.playback[i].playing = true
}

// PlaybackFailed parks the active clip paused. The viewer stays on it and can
// retry with TogglePlayPause; a broken clip never auto-advances the feed.
func (s *Sequencer) PlaybackFailed(i int) {
	if i != s.current || s.Idle() {
		return
	}
	s.playback[i].playing = false
}

// Progress records the media element's playback position for clip i.
func (s *Sequencer) Progress(i int, position float64) {
	if i < 0 || i >= len(s.playback) {
		return
	}
	s.playback[i].position = position
}

func (s *Sequencer) Playing(i int) bool { return s.playback[i].playing }

func (s *Sequencer) Muted(i int) bool { return s.playback[i].muted }

func (s *Sequencer) Position(i int) float64 { return s.playback[i].position }

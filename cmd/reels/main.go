// Terminal previewer for the reels feed. It drives the same playback
// sequencer the web client uses, against a running API server.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bakra-mandi/internal/entity"
	"bakra-mandi/internal/reel"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("211"))
	activeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("211")).
			Padding(0, 2)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	likedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type apiClient struct {
	base     string
	deviceID string
	http     *http.Client
}

func newAPIClient(base string) (*apiClient, error) {
	c := &apiClient{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}

	deviceID, err := loadOrMintDevice(c)
	if err != nil {
		return nil, err
	}
	c.deviceID = deviceID
	return c, nil
}

// loadOrMintDevice reuses the device identity from the previous run so likes
// toggle instead of piling up. First run mints one from the server.
func loadOrMintDevice(c *apiClient) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	path := filepath.Join(configDir, "bakra-mandi", "device_id")

	if data, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	}

	resp, err := c.http.Post(c.base+"/api/v1/device-tokens", "application/json", nil)
	if err != nil {
		return "", fmt.Errorf("failed to mint device token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("failed to mint device token: status %d", resp.StatusCode)
	}

	var minted struct {
		DeviceID string `json:"device_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&minted); err != nil {
		return "", fmt.Errorf("failed to decode device token: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		_ = os.WriteFile(path, []byte(minted.DeviceID), 0o600)
	}
	return minted.DeviceID, nil
}

func (c *apiClient) FetchVideos() ([]*entity.Video, error) {
	resp, err := c.http.Get(c.base + "/api/v1/videos")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch videos: status %d", resp.StatusCode)
	}

	var videos []*entity.Video
	if err := json.NewDecoder(resp.Body).Decode(&videos); err != nil {
		return nil, fmt.Errorf("failed to decode videos: %w", err)
	}
	return videos, nil
}

func (c *apiClient) Toggle(videoID uint, deviceID string) (*entity.LikeResult, error) {
	body, _ := json.Marshal(map[string]string{"device_id": deviceID})
	url := fmt.Sprintf("%s/api/v1/videos/%d/like", c.base, videoID)

	resp, err := c.http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, entity.ErrVideoNotFound
	default:
		return nil, fmt.Errorf("failed to toggle like: status %d", resp.StatusCode)
	}

	var result entity.LikeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode like result: %w", err)
	}
	return &result, nil
}

func (c *apiClient) IsLiked(videoID uint, deviceID string) (bool, error) {
	url := fmt.Sprintf("%s/api/v1/videos/%d/like?device_id=%s", c.base, videoID, deviceID)

	resp, err := c.http.Get(url)
	if err != nil {
		return false, fmt.Errorf("failed to check like status: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("failed to check like status: status %d", resp.StatusCode)
	}

	var status struct {
		Liked bool `json:"liked"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return false, fmt.Errorf("failed to decode like status: %w", err)
	}
	return status.Liked, nil
}

var _ reel.Engagement = (*apiClient)(nil)

type tickMsg time.Time

// likeToggledMsg carries a ledger toggle result back onto the event loop. The
// sequencer is single-threaded, so the command goroutine only does the HTTP
// call; the projection is applied in Update.
type likeToggledMsg struct {
	index  int
	result *entity.LikeResult
	err    error
}

type feedModel struct {
	seq        *reel.Sequencer
	engagement reel.Engagement
	deviceID   string
	status     string
	width      int
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m feedModel) Init() tea.Cmd {
	return tick()
}

func (m feedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		// Stand-in for the media element's progress events. The feed has no
		// real player in a terminal, so one tick is one second of playback.
		if !m.seq.Idle() {
			i := m.seq.Current()
			if m.seq.Playing(i) {
				m.seq.Progress(i, m.seq.Position(i)+1)
			}
		}
		return m, tick()

	case likeToggledMsg:
		if msg.err != nil {
			m.status = errStyle.Render(fmt.Sprintf("like failed: %v", msg.err))
			return m, nil
		}
		m.seq.ApplyLike(msg.index, msg.result)
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			m.seq.Key(reel.KeyDown)
		case "up", "k":
			m.seq.Key(reel.KeyUp)
		case " ":
			m.seq.TogglePlayPause(m.seq.Current())
		case "m":
			m.seq.ToggleMute(m.seq.Current())
		case "l":
			i := m.seq.Current()
			if i < 0 {
				return m, nil
			}
			clip := m.seq.Clip(i)
			return m, func() tea.Msg {
				result, err := m.engagement.Toggle(clip.ID, m.deviceID)
				return likeToggledMsg{index: i, result: result, err: err}
			}
		}
		return m, nil
	}

	return m, nil
}

func (m feedModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Bakra Mandi Reels"))
	b.WriteString("\n\n")

	if m.seq.Idle() {
		b.WriteString(dimStyle.Render("No videos in the feed yet."))
		b.WriteString("\n")
		return b.String()
	}

	current := m.seq.Current()
	for i := 0; i < m.seq.Len(); i++ {
		clip := m.seq.Clip(i)

		heart := dimStyle.Render(fmt.Sprintf("♡ %d", clip.LikesCount))
		if clip.Liked {
			heart = likedStyle.Render(fmt.Sprintf("♥ %d", clip.LikesCount))
		}

		if i != current {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s  %s", clip.Title, heart)))
			b.WriteString("\n")
			continue
		}

		state := "▶ playing"
		if !m.seq.Playing(i) {
			state = "⏸ paused"
		}
		sound := "sound on"
		if m.seq.Muted(i) {
			sound = "muted"
		}

		card := fmt.Sprintf("%s\n%s\n%s  %s  %s  %02d:%02d",
			titleStyle.Render(clip.Title),
			clip.Description,
			heart, state, sound,
			int(m.seq.Position(i))/60, int(m.seq.Position(i))%60,
		)
		b.WriteString(activeStyle.Render(card))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("j/k or ↑/↓ scroll · space play/pause · m mute · l like · q quit"))
	b.WriteString("\n")
	return b.String()
}

func main() {
	var apiURL string
	flag.StringVar(&apiURL, "api", "http://localhost:8080", "Base URL of the API server")
	flag.Parse()

	client, err := newAPIClient(apiURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	videos, err := client.FetchVideos()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seq := reel.NewSequencer(videos, client.deviceID, client)

	p := tea.NewProgram(feedModel{
		seq:        seq,
		engagement: client,
		deviceID:   client.deviceID,
	})
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

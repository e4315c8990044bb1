package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// LeaderboardEntry is one user's best finished-quiz result.
type LeaderboardEntry struct {
	UserID     int64   `json:"user_id"`
	Username   string  `json:"username"`
	FirstName  string  `json:"first_name"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Date       string  `json:"date"`
}

// Leaderboard keeps the best result per user.
type Leaderboard interface {
	// AddResult records a finished quiz and reports whether it became the
	// user's new personal best.
	AddResult(userID int64, username, firstName string, correct, total int) bool
	GetTop(limit int) []LeaderboardEntry
	GetUserPosition(userID int64) (int, *LeaderboardEntry)
}

// NewLeaderboard picks Gist-backed storage when configured, otherwise
// in-memory (results are lost on restart).
func NewLeaderboard(gistID, githubToken string) Leaderboard {
	if gistID != "" && githubToken != "" {
		return NewGistLeaderboard(gistID, githubToken)
	}
	return NewMemoryLeaderboard()
}

func newLeaderboardEntry(userID int64, username, firstName string, correct, total int) LeaderboardEntry {
	return LeaderboardEntry{
		UserID:     userID,
		Username:   username,
		FirstName:  firstName,
		Correct:    correct,
		Total:      total,
		Percentage: ScorePercentage(correct, total),
		Date:       time.Now().Format("02.01.2006 15:04"),
	}
}

func betterResult(a, b LeaderboardEntry) bool {
	if a.Percentage == b.Percentage {
		return a.Correct > b.Correct
	}
	return a.Percentage > b.Percentage
}

// upsertBest replaces the user's entry when the new one beats it, or appends
// a first entry. It reports whether the slice changed.
func upsertBest(entries []LeaderboardEntry, entry LeaderboardEntry) ([]LeaderboardEntry, bool) {
	for i, existing := range entries {
		if existing.UserID == entry.UserID {
			if betterResult(entry, existing) {
				entries[i] = entry
				return entries, true
			}
			return entries, false
		}
	}
	return append(entries, entry), true
}

func sortByScore(entries []LeaderboardEntry) []LeaderboardEntry {
	sorted := make([]LeaderboardEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return betterResult(sorted[i], sorted[j])
	})
	return sorted
}

func topOf(entries []LeaderboardEntry, limit int) []LeaderboardEntry {
	sorted := sortByScore(entries)
	if limit > len(sorted) || limit < 0 {
		limit = len(sorted)
	}
	return sorted[:limit]
}

func positionOf(entries []LeaderboardEntry, userID int64) (int, *LeaderboardEntry) {
	for i, entry := range sortByScore(entries) {
		if entry.UserID == userID {
			return i + 1, &entry
		}
	}
	return -1, nil
}

// GistLeaderboard stores entries as a JSON document in a GitHub Gist.
type GistLeaderboard struct {
	gistID      string
	githubToken string
	filename    string
}

func NewGistLeaderboard(gistID, githubToken string) *GistLeaderboard {
	return &GistLeaderboard{
		gistID:      gistID,
		githubToken: githubToken,
		filename:    "leaderboard.json",
	}
}

func (gl *GistLeaderboard) load() ([]LeaderboardEntry, error) {
	url := fmt.Sprintf("https://api.github.com/gists/%s", gl.gistID)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "token "+gl.githubToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var gist struct {
		Files map[string]struct {
			Content string `json:"content"`
		} `json:"files"`
	}
	if err := json.Unmarshal(body, &gist); err != nil {
		return nil, err
	}

	var entries []LeaderboardEntry
	if file, ok := gist.Files[gl.filename]; ok && file.Content != "" {
		if err := json.Unmarshal([]byte(file.Content), &entries); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (gl *GistLeaderboard) save(entries []LeaderboardEntry) error {
	content, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]interface{}{
		"files": map[string]interface{}{
			gl.filename: map[string]interface{}{
				"content": string(content),
			},
		},
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("https://api.github.com/gists/%s", gl.gistID)
	req, err := http.NewRequest(http.MethodPatch, url, strings.NewReader(string(payload)))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "token "+gl.githubToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	return nil
}

func (gl *GistLeaderboard) AddResult(userID int64, username, firstName string, correct, total int) bool {
	entries, err := gl.load()
	if err != nil {
		fmt.Printf("Error loading leaderboard from gist: %v\n", err)
		return false
	}

	entries, improved := upsertBest(entries, newLeaderboardEntry(userID, username, firstName, correct, total))
	if !improved {
		return false
	}

	if err := gl.save(entries); err != nil {
		fmt.Printf("Error saving leaderboard to gist: %v\n", err)
		return false
	}
	return true
}

func (gl *GistLeaderboard) GetTop(limit int) []LeaderboardEntry {
	entries, err := gl.load()
	if err != nil {
		fmt.Printf("Error loading leaderboard from gist: %v\n", err)
		return nil
	}
	return topOf(entries, limit)
}

func (gl *GistLeaderboard) GetUserPosition(userID int64) (int, *LeaderboardEntry) {
	entries, err := gl.load()
	if err != nil {
		fmt.Printf("Error loading leaderboard from gist: %v\n", err)
		return -1, nil
	}
	return positionOf(entries, userID)
}

// MemoryLeaderboard is the fallback used when no Gist is configured.
type MemoryLeaderboard struct {
	mu      sync.RWMutex
	entries []LeaderboardEntry
}

func NewMemoryLeaderboard() *MemoryLeaderboard {
	return &MemoryLeaderboard{}
}

func (ml *MemoryLeaderboard) AddResult(userID int64, username, firstName string, correct, total int) bool {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	entries, improved := upsertBest(ml.entries, newLeaderboardEntry(userID, username, firstName, correct, total))
	ml.entries = entries
	return improved
}

func (ml *MemoryLeaderboard) GetTop(limit int) []LeaderboardEntry {
	ml.mu.RLock()
	defer ml.mu.RUnlock()
	return topOf(ml.entries, limit)
}

func (ml *MemoryLeaderboard) GetUserPosition(userID int64) (int, *LeaderboardEntry) {
	ml.mu.RLock()
	defer ml.mu.RUnlock()
	return positionOf(ml.entries, userID)
}

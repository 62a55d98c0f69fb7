// Package script defines the screenplay returned by the generator.
package script

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Character is a member of the cast.
type Character struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// Scene is one ordered unit of the screenplay.
type Scene struct {
	Number      int      `json:"scene_number"`
	Description string   `json:"description"`
	Dialogues   []string `json:"dialogues"`
	Location    string   `json:"location"`
	Mood        string   `json:"mood"`
}

// Result is a complete generated screenplay. It is produced in one piece by the
// generator and treated as immutable afterwards.
type Result struct {
	Title            string      `json:"title"`
	Characters       []Character `json:"characters"`
	PlotOutline      string      `json:"plot_outline"`
	PlotOutlineHindi string      `json:"plot_outline_hindi"`
	DetailedSynopsis string      `json:"detailed_synopsis"`
	Scenes           []Scene     `json:"scenes"`
}

var (
	ErrNoTitle  = errors.New("script has no title")
	ErrNoScenes = errors.New("script has no scenes")
)

// Validate checks the fields the renderer relies on.
func (r *Result) Validate() error {
	if r == nil {
		return errors.New("script is nil")
	}
	if strings.TrimSpace(r.Title) == "" {
		return ErrNoTitle
	}
	if len(r.Scenes) == 0 {
		return ErrNoScenes
	}
	seen := make(map[int]bool, len(r.Scenes))
	for _, sc := range r.Scenes {
		if sc.Number <= 0 {
			return fmt.Errorf("scene number %d must be positive", sc.Number)
		}
		if seen[sc.Number] {
			return fmt.Errorf("duplicate scene number %d", sc.Number)
		}
		seen[sc.Number] = true
	}
	return nil
}

// Normalize sorts scenes into display order and replaces missing lists with
// empty ones so the JSON form never carries null arrays.
func (r *Result) Normalize() {
	if r.Characters == nil {
		r.Characters = []Character{}
	}
	if r.Scenes == nil {
		r.Scenes = []Scene{}
	}
	for i := range r.Scenes {
		if r.Scenes[i].Dialogues == nil {
			r.Scenes[i].Dialogues = []string{}
		}
	}
	sort.SliceStable(r.Scenes, func(i, j int) bool {
		return r.Scenes[i].Number < r.Scenes[j].Number
	})
}

// DialogueCount returns the total number of dialogue lines across all scenes.
func (r *Result) DialogueCount() int {
	n := 0
	for _, sc := range r.Scenes {
		n += len(sc.Dialogues)
	}
	return n
}

package script

import (
	"fmt"
	"strings"
)

// Length is the user's preferred size and depth of the screenplay.
type Length string

const (
	LengthConcise  Length = "concise"
	LengthStandard Length = "standard"
	LengthExtended Length = "extended"
)

// DefaultLength is preselected in every front end.
const DefaultLength = LengthStandard

// LengthOption describes a length preset for pickers and prompts.
type LengthOption struct {
	ID          Length `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	MinScenes   int    `json:"min_scenes"`
	MaxScenes   int    `json:"max_scenes"`
}

// LengthOptions lists the presets in picker order.
var LengthOptions = []LengthOption{
	{ID: LengthConcise, Label: "Short", Description: "Punchy & Fast", MinScenes: 3, MaxScenes: 4},
	{ID: LengthStandard, Label: "Standard", Description: "Balanced depth", MinScenes: 5, MaxScenes: 7},
	{ID: LengthExtended, Label: "Long", Description: "Epic Magnum Opus", MinScenes: 8, MaxScenes: 12},
}

// ParseLength accepts concise, standard or extended in any case.
func ParseLength(s string) (Length, error) {
	l := Length(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := l.Option(); !ok {
		return "", fmt.Errorf("unknown length %q (want concise, standard or extended)", s)
	}
	return l, nil
}

// Option returns the preset for l.
func (l Length) Option() (LengthOption, bool) {
	for _, opt := range LengthOptions {
		if opt.ID == l {
			return opt, true
		}
	}
	return LengthOption{}, false
}

// Index returns the picker position of l, or -1.
func (l Length) Index() int {
	for i, opt := range LengthOptions {
		if opt.ID == l {
			return i
		}
	}
	return -1
}

func (l Length) String() string {
	return string(l)
}

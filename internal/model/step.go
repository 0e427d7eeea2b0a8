package model

import (
	"encoding/json"
	"fmt"
)

// Rect is a highlight box in image pixels. It is stored as [x, y, w, h].
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.W, r.H)
}

func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]int{r.X, r.Y, r.W, r.H})
}

func (r *Rect) UnmarshalJSON(data []byte) error {
	var v []int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("rect: %w", err)
	}
	if len(v) != 4 {
		return fmt.Errorf("rect: want 4 values, got %d", len(v))
	}
	*r = Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}
	return nil
}

// Step is one recorded operation with its annotated screenshot.
type Step struct {
	Original          string `json:"original"`
	Processed         string `json:"processed"`
	RelativeProcessed string `json:"relative_processed"`
	Rect              Rect   `json:"rect"`
	Caption           string `json:"caption"`
}

func (s *Step) Validate() error {
	if s.Original == "" {
		return fmt.Errorf("step screenshot is required")
	}
	if s.Processed == "" || s.RelativeProcessed == "" {
		return fmt.Errorf("step processed path is required")
	}
	return nil
}

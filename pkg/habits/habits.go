// Package habits holds the display catalog for the five challenge habits.
// The catalog is cosmetic only; the tracked habit set is fixed.
package habits

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/soft-challenge/soft75/pkg/model"
)

// Info describes one habit for presentation purposes.
type Info struct {
	Habit       model.Habit `yaml:"habit" json:"habit"`
	Label       string      `yaml:"label" json:"label"`
	Emoji       string      `yaml:"emoji" json:"emoji,omitempty"`
	Description string      `yaml:"description" json:"description,omitempty"`
}

// Catalog maps habits to their display info.
type Catalog struct {
	infos map[model.Habit]Info
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return newCatalog([]Info{
		{Habit: model.HabitDiet, Label: "Follow a diet", Emoji: "🥗"},
		{Habit: model.HabitWater, Label: "Drink water", Emoji: "💧"},
		{Habit: model.HabitBook, Label: "Read 10 pages", Emoji: "📖"},
		{Habit: model.HabitWorkout, Label: "Work out", Emoji: "🏋️"},
		{Habit: model.HabitPic, Label: "Progress photo", Emoji: "📸"},
	})
}

// LoadFile reads a catalog from a YAML file. Every entry must name a
// known habit; habits missing from the file keep their default info.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read habits file %s: %w", path, err)
	}

	var doc struct {
		Habits []Info `yaml:"habits"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse habits file %s: %w", path, err)
	}

	c := Default()
	for _, info := range doc.Habits {
		if _, err := model.ParseHabit(string(info.Habit)); err != nil {
			return nil, fmt.Errorf("habits file %s: %w", path, err)
		}
		if info.Label == "" {
			return nil, fmt.Errorf("habits file %s: habit %q has no label", path, info.Habit)
		}
		c.infos[info.Habit] = info
	}
	return c, nil
}

// Info returns the display info for a habit.
func (c *Catalog) Info(h model.Habit) Info {
	return c.infos[h]
}

// All returns every habit's info in display order.
func (c *Catalog) All() []Info {
	out := make([]Info, 0, len(model.AllHabits))
	for _, h := range model.AllHabits {
		out = append(out, c.infos[h])
	}
	return out
}

func newCatalog(infos []Info) *Catalog {
	c := &Catalog{infos: make(map[model.Habit]Info, len(infos))}
	for _, info := range infos {
		c.infos[info.Habit] = info
	}
	return c
}

package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soft-challenge/soft75/pkg/model"
)

func TestParseHabit(t *testing.T) {
	for _, h := range model.AllHabits {
		parsed, err := model.ParseHabit(string(h))
		require.NoError(t, err)
		assert.Equal(t, h, parsed)
	}

	_, err := model.ParseHabit("sleep")
	assert.Error(t, err)
	_, err = model.ParseHabit("")
	assert.Error(t, err)
}

func TestNewState(t *testing.T) {
	s := model.NewState()
	assert.Len(t, s, model.TotalDays)

	for day := 1; day <= model.TotalDays; day++ {
		rec, ok := s[day]
		require.True(t, ok, "day %d missing", day)
		for _, h := range model.AllHabits {
			assert.False(t, rec.Done(h))
		}
	}
}

func TestDayRecord_SetDone(t *testing.T) {
	var rec model.DayRecord
	rec.SetDone(model.HabitBook, true)
	assert.True(t, rec.Done(model.HabitBook))
	assert.False(t, rec.Done(model.HabitDiet))

	rec.SetDone(model.HabitBook, false)
	assert.False(t, rec.Done(model.HabitBook))
}

func TestState_Clone(t *testing.T) {
	s := model.NewState()
	rec := s[3]
	rec.SetDone(model.HabitWater, true)
	s[3] = rec

	c := s.Clone()
	assert.Equal(t, s, c)

	rec = c[3]
	rec.SetDone(model.HabitWater, false)
	c[3] = rec
	assert.True(t, s[3].Water, "clone must not share storage")
}

func TestState_Normalize(t *testing.T) {
	s := model.State{
		0:   {Diet: true},
		1:   {Water: true},
		75:  {Pic: true},
		76:  {Book: true},
		500: {Workout: true},
	}

	n := s.Normalize()
	assert.Len(t, n, model.TotalDays)
	assert.True(t, n[1].Water)
	assert.True(t, n[75].Pic)
	assert.False(t, n[2].Diet)
}

func TestState_JSONShape(t *testing.T) {
	s := model.NewState()
	rec := s[7]
	rec.SetDone(model.HabitWorkout, true)
	s[7] = rec

	data, err := json.Marshal(s)
	require.NoError(t, err)

	// Day numbers become string object keys, all five habit keys present.
	var raw map[string]map[string]bool
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, model.TotalDays)
	day7 := raw["7"]
	require.NotNil(t, day7)
	assert.True(t, day7["workout"])
	for _, key := range []string{"diet", "water", "book", "workout", "pic"} {
		_, ok := day7[key]
		assert.True(t, ok, "key %s missing", key)
	}

	var back model.State
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

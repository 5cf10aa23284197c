package dice

import (
	"errors"
	"math/rand"
)

type RollResult struct {
	Total   int
	Highest int
	Lowest  int
	Rolls   []int
	Bonus   int
	Count   int
	Sides   int
}

func Roll(count, size, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if size < 1 {
		return nil, errors.New("invalid dice size")
	}

	maxValue, minValue, total := 0, 0, 0

	out := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rand.Intn(size) + 1
		total += roll
		if i == 0 || minValue > roll {
			minValue = roll
		}
		if maxValue < roll {
			maxValue = roll
		}
		out[i] = roll
	}

	return &RollResult{
		Total:   total + bonus,
		Highest: maxValue,
		Lowest:  minValue,
		Rolls:   out,
		Bonus:   bonus,
		Count:   count,
		Sides:   size,
	}, nil
}

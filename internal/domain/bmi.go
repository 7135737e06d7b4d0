package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal"
	CategoryOverweight  Category = "Overweight"
)

// Category thresholds. Both bounds of the normal band are inclusive.
const (
	NormalLowerBound = 18.5
	NormalUpperBound = 24.9
)

var ErrUnknownCategory = errors.New("unknown bmi category")

// Measurement is a weight in kilograms and a height in meters.
type Measurement struct {
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
}

type Result struct {
	Index    float64  `json:"index"`
	Category Category `json:"category"`
}

// Classify computes the body-mass index and its category. ok is false when
// either input is not strictly positive; that is "not yet computable", not
// an error.
func Classify(weight, height float64) (Result, bool) {
	if !(weight > 0) || !(height > 0) {
		return Result{}, false
	}

	index := weight / (height * height)
	return Result{Index: index, Category: categorize(index)}, true
}

func (m Measurement) Classify() (Result, bool) {
	return Classify(m.Weight, m.Height)
}

func categorize(index float64) Category {
	switch {
	case index < NormalLowerBound:
		return CategoryUnderweight
	case index <= NormalUpperBound:
		return CategoryNormal
	default:
		return CategoryOverweight
	}
}

// Display returns the index rounded to two decimals.
func (r Result) Display() string {
	return strconv.FormatFloat(math.Round(r.Index*100)/100, 'f', 2, 64)
}

func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "underweight":
		return CategoryUnderweight, nil
	case "normal":
		return CategoryNormal, nil
	case "overweight":
		return CategoryOverweight, nil
	}
	return "", ErrUnknownCategory
}

func AllCategories() []Category {
	return []Category{CategoryUnderweight, CategoryNormal, CategoryOverweight}
}

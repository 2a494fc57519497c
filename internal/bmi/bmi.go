package bmi

import (
	"fmt"
	"math"
)

// Category is a BMI classification band.
type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

// Band thresholds, upper bounds exclusive.
const (
	underweightBelow = 18.5
	normalBelow      = 25
	overweightBelow  = 30
)

var advisories = map[Category]string{
	CategoryUnderweight: "Underweight – You may need nutritional improvement.",
	CategoryNormal:      "Normal – Keep maintaining a healthy lifestyle!",
	CategoryOverweight:  "Overweight – Consider light exercise and balanced diet.",
	CategoryObese:       "Obese – It is advisable to consult a doctor.",
}

// Message returns the fixed advisory text for the band.
func (c Category) Message() string {
	return advisories[c]
}

// Compute returns the body mass index for a weight in kilograms and a height
// in centimeters, rounded to two decimal places.
func Compute(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("weight must be positive, got %v", weightKg)
	}
	if heightCm <= 0 {
		return 0, fmt.Errorf("height must be positive, got %v", heightCm)
	}
	heightM := heightCm / 100
	value := weightKg / (heightM * heightM)
	return math.Round(value*100) / 100, nil
}

// Classify maps a BMI value onto its band.
func Classify(value float64) Category {
	switch {
	case value < underweightBelow:
		return CategoryUnderweight
	case value < normalBelow:
		return CategoryNormal
	case value < overweightBelow:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

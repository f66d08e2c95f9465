package model

import (
	"errors"
	"fmt"
)

var ErrInvalidCategory = errors.New("model: invalid category")

type Category string

const (
	CategoryExercise Category = "exercise"
	CategoryLearning Category = "learning"
	CategoryHabit    Category = "habit"
	CategoryFaith    Category = "faith"
	CategorySocial   Category = "social"
	CategoryFinance  Category = "finance"
	CategorySleep    Category = "sleep"
	CategoryDiet     Category = "diet"
	CategoryMental   Category = "mental"
)

// AllCategories returns the closed category set in display order.
func AllCategories() []Category {
	return []Category{
		CategoryExercise,
		CategoryLearning,
		CategoryHabit,
		CategoryFaith,
		CategorySocial,
		CategoryFinance,
		CategorySleep,
		CategoryDiet,
		CategoryMental,
	}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryExercise, CategoryLearning, CategoryHabit, CategoryFaith,
		CategorySocial, CategoryFinance, CategorySleep, CategoryDiet, CategoryMental:
		return true
	default:
		return false
	}
}

func (c Category) Label() string {
	switch c {
	case CategoryExercise:
		return "Exercise"
	case CategoryLearning:
		return "Learning"
	case CategoryHabit:
		return "Habits"
	case CategoryFaith:
		return "Faith"
	case CategorySocial:
		return "Social"
	case CategoryFinance:
		return "Finance"
	case CategorySleep:
		return "Sleep"
	case CategoryDiet:
		return "Diet"
	case CategoryMental:
		return "Mindset"
	default:
		return string(c)
	}
}

func (c Category) Validate() error {
	if !c.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, c)
	}
	return nil
}

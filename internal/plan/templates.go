package plan

import "questa/internal/model"

// templatePools holds the fixed per-category quest titles. Order matters:
// the day/category rotation indexes into these slices, so appending to the
// end is safe but reordering changes every generated plan.
var templatePools = map[model.Category][]string{
	model.CategoryExercise: {
		"Walk for 20 minutes",
		"Do 3 sets of push-ups",
		"Stretch for 10 minutes",
		"Take the stairs all day",
		"Do a 15-minute home workout",
		"Hold a 1-minute plank, twice",
		"Go for a light jog",
	},
	model.CategoryLearning: {
		"Read 10 pages of a book",
		"Learn 5 new vocabulary words",
		"Watch one short lecture and take notes",
		"Summarize yesterday's notes from memory",
		"Practice a skill drill for 15 minutes",
		"Teach someone one thing you learned",
		"Review flashcards for 10 minutes",
	},
	model.CategoryHabit: {
		"Make your bed right after waking",
		"No phone for the first 30 minutes of the day",
		"Tidy one small area for 5 minutes",
		"Write tomorrow's top 3 tasks tonight",
		"Drink a glass of water before each meal",
		"Put everything back where it belongs today",
		"Do the hardest task first",
	},
	model.CategoryFaith: {
		"Spend 10 quiet minutes in reflection",
		"Read one short passage and sit with it",
		"Write down 3 things you are grateful for",
		"Pray or meditate before bed",
		"Reach out to someone who needs encouragement",
		"Take a mindful walk without headphones",
		"Forgive one small grievance today",
	},
	model.CategorySocial: {
		"Message a friend you have not talked to in a while",
		"Give someone a genuine compliment",
		"Call a family member",
		"Have one conversation without checking your phone",
		"Thank someone specifically for something they did",
		"Ask a colleague how their week is going",
		"Plan one small get-together",
	},
	model.CategoryFinance: {
		"Record every expense today",
		"Review yesterday's spending",
		"Skip one impulse purchase",
		"Move a small amount into savings",
		"Check one recurring subscription",
		"Plan tomorrow's meals to avoid takeout",
		"Read one article on personal finance",
	},
	model.CategorySleep: {
		"No screens 30 minutes before bed",
		"Go to bed at the same time as yesterday",
		"No caffeine after 2pm",
		"Get 10 minutes of morning sunlight",
		"Keep the bedroom cool and dark tonight",
		"Wind down with 10 minutes of reading",
		"Wake up without snoozing",
	},
	model.CategoryDiet: {
		"Eat one extra serving of vegetables",
		"Drink 8 glasses of water",
		"No sugary drinks today",
		"Eat slowly and stop at 80% full",
		"Prepare one meal at home",
		"Swap one snack for fruit",
		"No eating after 9pm",
	},
	model.CategoryMental: {
		"Write 3 lines in a journal",
		"Do a 5-minute breathing exercise",
		"List one worry and one action for it",
		"Take a 10-minute break away from screens",
		"Name one thing that went well today",
		"Declutter your desk before finishing work",
		"Spend 10 minutes on a hobby",
	},
}

// TemplatePool returns the title pool for a category, nil if unknown.
func TemplatePool(c model.Category) []string {
	return templatePools[c]
}

// DefaultCategories is the fallback pair substituted when the user creates a
// plan without picking anything.
func DefaultCategories() []model.Category {
	return []model.Category{model.CategoryExercise, model.CategoryLearning}
}

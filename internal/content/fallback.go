package content

// Fallback returns the built-in library used when the vault is empty or
// unreachable.
func Fallback() Library {
	return Library{
		Quotes: []Quote{
			{Text: "The only bad workout is the one that didn't happen."},
			{Text: "Discipline is choosing between what you want now and what you want most.", Author: "Abraham Lincoln"},
			{Text: "It never gets easier, you just get stronger."},
			{Text: "Sweat is just fat crying."},
			{Text: "Your body can stand almost anything. It's your mind you have to convince."},
			{Text: "Success starts with self-discipline."},
			{Text: "The pain you feel today will be the strength you feel tomorrow."},
			{Text: "Don't count the days, make the days count.", Author: "Muhammad Ali"},
			{Text: "Strength does not come from the physical capacity. It comes from an indomitable will.", Author: "Mahatma Gandhi"},
			{Text: "A one hour workout is only four percent of your day. No excuses."},
		},
		Jokes: []Joke{
			{Text: "I would lose weight, but I hate losing."},
			{Text: "Why did the gym close down? It just didn't work out."},
			{Text: "I'm in shape. Round is a shape."},
			{Text: "My warm-up is called tying my shoes."},
			{Text: "Running late counts as cardio, right?"},
			{Text: "I named my dumbbells after my problems. Now I lift my problems every morning."},
			{Text: "Exercise? I thought you said extra fries."},
			{Text: "I do all my own stunts, but never intentionally."},
			{Text: "Why don't planks ever complain? They're used to holding it together."},
			{Text: "My gym teacher told me to touch my toes. I said I don't have that kind of relationship with my feet."},
		},
	}
}

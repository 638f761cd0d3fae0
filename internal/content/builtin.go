// Package content ships the built-in statement bank used when no database is configured.
package content

import "human-or-ai/internal/domain"

// DefaultBankID names the built-in text bank.
const DefaultBankID = "statements"

// DefaultBank returns a fresh copy of the built-in statement bank.
func DefaultBank() domain.Bank {
	statements := make([]domain.Statement, len(builtin))
	copy(statements, builtin)
	return domain.Bank{ID: DefaultBankID, Kind: domain.BankText, Statements: statements}
}

func s(text string, author domain.Label, d domain.Difficulty) domain.Statement {
	return domain.Statement{Text: text, Author: author, Difficulty: d}
}

var builtin = []domain.Statement{
	s("lol my cat just knocked my coffee off the desk AGAIN, third time this week", domain.Human, domain.Easy),
	s("As an AI language model, I do not have personal experiences, but I can describe what a sunrise is like.", domain.AI, domain.Easy),
	s("Can't believe the bus driver waved at me and then drove off. Classic Monday.", domain.Human, domain.Easy),
	s("In conclusion, effective time management is essential for achieving a healthy work-life balance.", domain.AI, domain.Easy),
	s("ok who ate the last slice of pizza, i am not mad just disappointed", domain.Human, domain.Easy),
	s("Certainly! Here are five tips to improve your productivity while working from home.", domain.AI, domain.Easy),
	s("My grandma still calls the TV remote 'the clicker' and honestly she's right.", domain.Human, domain.Easy),
	s("Overall, the benefits of regular exercise extend far beyond physical health, encompassing mental and emotional well-being.", domain.AI, domain.Easy),
	s("Dropped my phone in the sink while washing dishes. Rice is doing its best.", domain.Human, domain.Easy),
	s("It is important to note that every individual's journey is unique and valuable.", domain.AI, domain.Easy),

	s("The old lighthouse keeper had stopped counting the storms; he counted the quiet nights instead.", domain.AI, domain.Medium),
	s("I planted tomatoes in April and all I've harvested is a deep respect for farmers.", domain.Human, domain.Medium),
	s("Coffee is less a beverage than a daily negotiation with the morning.", domain.AI, domain.Medium),
	s("Tried a new route to work and discovered a bakery that now owns my paycheck.", domain.Human, domain.Medium),
	s("Every city has a sound at 3 a.m., and ours is a refrigerator truck humming beside the river.", domain.Human, domain.Medium),
	s("Learning a language is like tending a garden: growth is slow, but the blossoms are worth it.", domain.AI, domain.Medium),
	s("My kid asked why the moon follows the car and I said 'it likes us' and now that's canon.", domain.Human, domain.Medium),
	s("The rain tapped against the window like an old friend who had forgotten the knock.", domain.AI, domain.Medium),
	s("Spent two hours assembling a bookshelf; there's one screw left and I've chosen peace.", domain.Human, domain.Medium),
	s("Innovation thrives where curiosity meets the courage to fail.", domain.AI, domain.Medium),

	s("We buried the dog under the plum tree, and every July the fruit comes in heavier than it should.", domain.Human, domain.Hard),
	s("She kept her father's watch wound, not for the time, but for the sound of him ticking in the drawer.", domain.AI, domain.Hard),
	s("Some mornings the fog sits so low on the harbor that the gulls seem to be calling from inside it.", domain.Human, domain.Hard),
	s("Memory is a house we keep renovating, never noticing that the original rooms are gone.", domain.AI, domain.Hard),
	s("The night shift nurse knew which patients wanted the curtains open before they did.", domain.Human, domain.Hard),
	s("He learned to read the river the way other men read newspapers: for weather, for warnings, for news of home.", domain.AI, domain.Hard),
	s("My mother wrote recipes in the margins of bills, so the electricity statement from 1987 is how we make bread.", domain.Human, domain.Hard),
	s("The violinist played the final note and let the silence finish the song.", domain.AI, domain.Hard),
	s("There's a particular loneliness to airports at midnight, when even the announcements sound tired.", domain.Human, domain.Hard),
	s("Grief, she discovered, was not a wave but a tide: predictable, patient, and always returning.", domain.AI, domain.Hard),
}

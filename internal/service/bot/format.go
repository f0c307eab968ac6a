package bot

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/boozybot/boozy-backend/internal/domain"
)

// samples seed the "try it now" hint with a recognizable ingredient.
var samples = []string{"orange", "vodka", "lime", "rum", "ice", "mint", "cinnamon", "aperol", "syrup"}

func randomSample() string {
	return samples[rand.IntN(len(samples))]
}

// ---------------------------------------------------------------------------
// Catalog URLs
// ---------------------------------------------------------------------------

func ingredientURL(code string) string {
	return "http://www.absolutdrinks.com/en/drinks/with/" + code + "/"
}

func ingredientThumbURL(code string) string {
	return "http://assets.absolutdrinks.com/ingredients/200x200/" + code + ".png"
}

func drinkURL(id string) string {
	return "http://www.absolutdrinks.com/en/drinks/" + id
}

func drinkImageURL(id string) string {
	return "http://assets.absolutdrinks.com/drinks/" + id + ".png"
}

func drinkVideoURL(d domain.Drink) string {
	if id := d.YouTubeID(); id != "" {
		return "http://www.youtube.com/watch?v=" + id
	}
	return ""
}

// ---------------------------------------------------------------------------
// Message texts
// ---------------------------------------------------------------------------

// searchHelp is the "how to add an ingredient" fragment appended to several
// messages. tryQuery is non-empty in private chats, where an inline try
// button makes sense.
func searchHelp(botName string, private bool) (message, tryQuery string) {
	sample := randomSample()
	message = fmt.Sprintf("in the message field type '@%s %s' as an example.", botName, sample)
	if private {
		message += " Or press the button below 👇"
		tryQuery = sample
	}
	return message, tryQuery
}

func introductionMessage(help string) string {
	return "Hey! I'm here to help you to come up with party drink ideas based " +
		"on which ingredients you have in your bar. Add me to the group chat and I'll suggest " +
		"you recipes for ingredients people have on hand.\n" +
		"And yes, you have to be at least 18 years old and drink responsibly 🍸🍷🍹" +
		"\n\nTo try, " + help
}

func noChosenIngredientsMessage(help string) string {
	return "No ingredients are chosen currently. To add one, " + help
}

func chosenIngredientMessage(botName string, ing domain.CatalogIngredient) string {
	return fmt.Sprintf("/add@%s *%s*. I've got [%s](%s).",
		botName, ing.ID, ing.Name, ingredientURL(ing.ID))
}

func addedIngredientMessage(name string) string {
	return fmt.Sprintf("Added %s. "+
		"You may add more ingredients or use /search to find matching drinks. "+
		"To check already chosen ingredients use /list.", name)
}

func ingredientExistsMessage() string {
	return "You already have one. You may check your ingredients with /list."
}

func tooManyIngredientsMessage(max int) string {
	return fmt.Sprintf("You already have %d ingredients in this chat. I can't handle more.", max)
}

func ingredientNotInCatalogMessage(code string) string {
	return fmt.Sprintf("I couldn't find %s in the drink catalog. "+
		"Try picking an ingredient from the inline search results.", code)
}

func clearedIngredientsMessage() string {
	return "Cleared available ingredients."
}

func removePromptMessage() string {
	return "Which ingredient you would like to remove?"
}

func removedIngredientMessage(label string) string {
	return fmt.Sprintf("Removed %s.", label)
}

func nextPageHelpMessage() string {
	return "To view other results tap /next."
}

func noMoreResultsMessage() string {
	return "No more search results. Modify your ingredients list and do /search again."
}

func noDrinksFoundMessage(help string) string {
	return "I'm sorry, but I couldn't find any matching drinks. " +
		"Try the different set of ingredients. " +
		"To add an ingredient, " + help
}

func inlineHelpMessage() string {
	return "Start typing an ingredient or drink name. Tap for help."
}

// choiceLabel renders the removal keyboard button for an ingredient. The
// label doubles as the key of the session's choice map.
func choiceLabel(ing domain.Ingredient) string {
	return fmt.Sprintf("%s (%s)", ing.Name, ing.Code)
}

func ingredientsListMessage(ingredients []domain.Ingredient, private bool) string {
	var b strings.Builder
	b.WriteString("📋 Currently chosen ingredients:\n")
	for _, ing := range ingredients {
		fmt.Fprintf(&b, "- *%s* [(details)](%s)", ing.Name, ingredientURL(ing.Code))
		if !private && ing.AddedName != "" {
			fmt.Fprintf(&b, " by %s", ing.AddedName)
		}
		b.WriteByte('\n')
	}
	b.WriteString("Hit /search to find matching drink recipes.\n")
	b.WriteString("You may want to remove individual ingredients with /remove or start over with /clear.")
	return b.String()
}

// drinkMessage renders one recommended drink: links, the have / to-get
// ingredient split, and directions. Missing significant ingredients link to
// the catalog so they are easy to shop for.
func drinkMessage(d domain.Drink, owned domain.IngredientSet) string {
	var have, toGet []string
	for _, ing := range d.Ingredients {
		switch {
		case owned.Has(ing.Code):
			have = append(have, ing.Text)
		case ing.Category.Significant():
			toGet = append(toGet, fmt.Sprintf("[%s](%s)", ing.Text, ingredientURL(ing.Code)))
		default:
			toGet = append(toGet, ing.Text)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍸 *%s* ", d.Name)
	if videoURL := drinkVideoURL(d); videoURL != "" {
		fmt.Fprintf(&b, "[(video)](%s) ", videoURL)
	}
	fmt.Fprintf(&b, "[(picture)](%s) ", drinkImageURL(d.ID))
	fmt.Fprintf(&b, "[(details)](%s)\n", drinkURL(d.ID))
	fmt.Fprintf(&b, "*You have:* %s; *you'll need to get:* %s\n", joinOrNothing(have), joinOrNothing(toGet))
	fmt.Fprintf(&b, "*Directions:* %s\n", d.Description)
	b.WriteString(nextPageHelpMessage())
	return b.String()
}

func joinOrNothing(items []string) string {
	if len(items) == 0 {
		return "nothing"
	}
	return strings.Join(items, ", ")
}

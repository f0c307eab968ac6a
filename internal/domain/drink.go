package domain

// Drink is a catalog recipe: required ingredients, a rating, and
// descriptive text. It round-trips through the result cache as JSON.
type Drink struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Rating      int               `json:"rating"`
	Story       string            `json:"story,omitempty"`
	Description string            `json:"descriptionPlain,omitempty"`
	Ingredients []DrinkIngredient `json:"ingredients"`
	Videos      []DrinkVideo      `json:"videos,omitempty"`
}

// DrinkIngredient is one required ingredient of a drink recipe.
type DrinkIngredient struct {
	Code     string   `json:"id"`
	Category Category `json:"type"`
	Text     string   `json:"textPlain"`
}

// DrinkVideo is an external video reference attached to a drink.
type DrinkVideo struct {
	Type string `json:"type"`
	ID   string `json:"video"`
}

// YouTubeID returns the first youtube video ID, or "" when the drink has
// none.
func (d Drink) YouTubeID() string {
	for _, v := range d.Videos {
		if v.Type == "youtube" {
			return v.ID
		}
	}
	return ""
}

package model

// MemeImage is one captionable image in the catalog.
type MemeImage struct {
	ID      string `json:"id" bson:"_id"`
	URL     string `json:"url" bson:"url"`
	ThemeID string `json:"themeId" bson:"themeId"`
}

// ThemePack groups images into a purchasable theme.
type ThemePack struct {
	ID          string `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	CoverImage  string `json:"coverImage" bson:"coverImage"`
	Price       int    `json:"price" bson:"price"` // cents
}

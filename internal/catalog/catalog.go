// Package catalog embeds the built-in meme image and theme pack tables.
// cmd/seed loads them into MongoDB; tests use them directly through Static.
package catalog

import "memeclash/internal/model"

// ThemePacks is the built-in theme catalog.
var ThemePacks = []model.ThemePack{
	{ID: "starter", Name: "Starter Pack", Description: "The classics. Cats, weird stock photos, and chaos.", CoverImage: "🤡", Price: 0},
	{ID: "work", Name: "Corporate Life", Description: "Emails, meetings, and silent screaming.", CoverImage: "💼", Price: 499},
	{ID: "animals", Name: "Party Animals", Description: "Cute but psycho pets.", CoverImage: "🐾", Price: 299},
	{ID: "tech", Name: "Silicon Valley", Description: "Bugs, crypto, and broken wifi.", CoverImage: "💻", Price: 399},
}

func img(id, url, themeID string) model.MemeImage {
	return model.MemeImage{ID: id, URL: url, ThemeID: themeID}
}

// MemeImages is the built-in image catalog.
var MemeImages = []model.MemeImage{
	img("1", "https://images.unsplash.com/photo-1513360371669-4adf3dd7dff8?auto=format&fit=crop&w=800&q=80", "starter"),
	img("2", "https://images.unsplash.com/photo-1543852786-1cf6624b9987?auto=format&fit=crop&w=800&q=80", "starter"),
	img("3", "https://images.unsplash.com/photo-1583511655857-d19b40a7a54e?auto=format&fit=crop&w=800&q=80", "starter"),
	img("4", "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?auto=format&fit=crop&w=800&q=80", "tech"),
	img("5", "https://images.unsplash.com/photo-1566492031773-4fbc7527e053?auto=format&fit=crop&w=800&q=80", "starter"),
	img("6", "https://images.unsplash.com/photo-1500835556837-99ac94a94552?auto=format&fit=crop&w=800&q=80", "starter"),
	img("7", "https://images.unsplash.com/photo-1524481905007-ea072534b820?auto=format&fit=crop&w=800&q=80", "starter"),
	img("8", "https://images.unsplash.com/photo-1517849845537-4d257902454a?auto=format&fit=crop&w=800&q=80", "animals"),
	img("9", "https://images.unsplash.com/photo-1535930749574-1399327ce78f?auto=format&fit=crop&w=800&q=80", "animals"),
	img("10", "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=800&q=80", "starter"),
	img("11", "https://images.unsplash.com/photo-1503023345313-0f0261c96ed0?auto=format&fit=crop&w=800&q=80", "work"),
	img("13", "https://images.unsplash.com/photo-1504593811423-6dd665756598?auto=format&fit=crop&w=800&q=80", "work"),
	img("15", "https://images.unsplash.com/photo-1525609004556-c46c7d6cf023?auto=format&fit=crop&w=800&q=80", "work"),
	img("16", "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=800&q=80", "work"),
	img("18", "https://images.unsplash.com/photo-1504199367641-aba8151af406?auto=format&fit=crop&w=800&q=80", "animals"),
	img("20", "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?auto=format&fit=crop&w=800&q=80", "tech"),
	img("23", "https://images.unsplash.com/photo-1516574187841-69202d57e200?auto=format&fit=crop&w=800&q=80", "animals"),
	img("25", "https://images.unsplash.com/photo-1518020382113-a7e8fc38eac9?auto=format&fit=crop&w=800&q=80", "animals"),
	img("26", "https://images.unsplash.com/photo-1537151608828-ea2b11777ee8?auto=format&fit=crop&w=800&q=80", "animals"),
	img("28", "https://images.unsplash.com/photo-1611564227353-b652761309af?auto=format&fit=crop&w=800&q=80", "tech"),
	img("29", "https://images.unsplash.com/photo-1516139008210-96e45dccd83b?auto=format&fit=crop&w=800&q=80", "work"),
	img("30", "https://images.unsplash.com/photo-1499951360447-b19be8fe80f5?auto=format&fit=crop&w=800&q=80", "work"),
	img("32", "https://images.unsplash.com/photo-1529778873920-4da4926a7071?auto=format&fit=crop&w=800&q=80", "animals"),
	img("33", "https://images.unsplash.com/photo-1533738363-b7f9aef128ce?auto=format&fit=crop&w=800&q=80", "animals"),
	img("34", "https://images.unsplash.com/photo-1485965120184-e224f723d879?auto=format&fit=crop&w=800&q=80", "work"),
	img("36", "https://images.unsplash.com/photo-1521038199265-bc482db0f923?auto=format&fit=crop&w=800&q=80", "tech"),
	img("38", "https://images.unsplash.com/photo-1495366691023-cc4eadcc2d7e?auto=format&fit=crop&w=800&q=80", "work"),
	img("42", "https://images.unsplash.com/photo-1498036882173-b41c28a8ba34?auto=format&fit=crop&w=800&q=80", "work"),
	img("44", "https://images.unsplash.com/photo-1583337130417-3346a1be7dee?auto=format&fit=crop&w=800&q=80", "animals"),
	img("47", "https://images.unsplash.com/photo-1574158622682-e40e69881006?auto=format&fit=crop&w=800&q=80", "animals"),
	img("48", "https://images.unsplash.com/photo-1601758228041-f3b2795255f1?auto=format&fit=crop&w=800&q=80", "tech"),
}

// FallbackCaptions are dealt when the caption oracle is unavailable.
var FallbackCaptions = []string{
	"When the wifi goes out for 1 minute.",
	"Me trying to explain crypto to my grandma.",
	"My face when I see the waiter coming with food.",
	"When you realize it's only Tuesday.",
	"That moment you send a risky text.",
	"Trying to act normal after tripping in public.",
	"When the code compiles on the first try.",
	"Me looking at my bank account.",
}

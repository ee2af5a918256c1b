package pricetracker

// CommonItems lists goods commonly surveyed in Gambian markets. The entry
// form and shell completion suggest them; free-text item names remain valid.
var CommonItems = []string{
	"Rice (1kg)", "Bread", "Sugar (1kg)", "Oil (1L)", "Onions (1kg)",
	"Tomatoes (1kg)", "Fish (1kg)", "Chicken (1kg)", "Milk (1L)", "Eggs (dozen)",
	"Potatoes (1kg)", "Cassava (1kg)", "Groundnuts (1kg)", "Millet (1kg)",
	"Flour (1kg)", "Salt (1kg)", "Soap", "Detergent", "Cooking Gas", "Mango",
	"Banana", "Orange", "Lemon", "Garlic (1kg)", "Ginger (1kg)", "Pepper (1kg)",
	"Beans (1kg)", "Lentils (1kg)", "Tea", "Coffee", "Cocoa",
}

// GambianLocations lists towns and markets across The Gambia.
var GambianLocations = []string{
	"Banjul", "Serekunda", "Sukuta", "Bakau", "Fajara", "Kairaba", "Kololi",
	"Brikama", "Soma", "Farafenni", "Basse", "Janjanbureh", "Gunjur", "Tanji",
	"Lamin", "Brufut", "Tujereng", "Sanyang", "Kartong", "Bintang",
	"Kerewan", "Mansa Konko", "Kuntaur", "Barra", "Essau", "Bwiam",
}

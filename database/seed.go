package database

import (
	"gorm.io/gorm"

	"github.com/savoria/restaurant-backend/models"
)

// Migrate creates the schema for every collection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.MenuItem{},
		&models.GalleryItem{},
		&models.Review{},
		&models.Reservation{},
		&models.NewsletterSubscriber{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// Seed loads the fixed sample data. It is a no-op when the menu is already
// populated.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	menuItems := []models.MenuItem{
		{
			ID:          1,
			Name:        "Crispy Calamari",
			Description: "Tender calamari rings, lightly battered and fried to perfection. Served with tangy marinara sauce.",
			Price:       12.99,
			Image:       "https://placehold.co/300x200?text=Crispy+Calamari+Bangladesh+Style",
			Category:    "starters",
			Rating:      4.7,
		},
		{
			ID:          2,
			Name:        "Caprese Salad",
			Description: "Fresh mozzarella, ripe tomatoes, and basil leaves drizzled with balsamic glaze.",
			Price:       10.99,
			Image:       "https://placehold.co/300x200?text=Caprese+Salad+Fresh+Ingredients",
			Category:    "starters",
			Rating:      4.5,
		},
		{
			ID:          3,
			Name:        "Grilled Salmon",
			Description: "Atlantic salmon fillet grilled to perfection, served with seasonal vegetables and lemon butter sauce.",
			Price:       24.99,
			Image:       "https://placehold.co/300x200?text=Grilled+Salmon+with+Lemon+Butter",
			Category:    "mains",
			Rating:      4.8,
		},
		{
			ID:          4,
			Name:        "Beef Tenderloin",
			Description: "8oz prime beef tenderloin cooked to your preference, accompanied by truffle mashed potatoes and asparagus.",
			Price:       29.99,
			Image:       "https://placehold.co/300x200?text=Beef+Tenderloin+with+Truffle+Mashed+Potatoes",
			Category:    "mains",
			Rating:      4.9,
		},
		{
			ID:          5,
			Name:        "Tiramisu",
			Description: "Classic Italian dessert with layers of coffee-soaked ladyfingers and mascarpone cream.",
			Price:       8.99,
			Image:       "https://placehold.co/300x200?text=Tiramisu+Classic+Italian+Dessert",
			Category:    "desserts",
			Rating:      4.6,
		},
		{
			ID:          6,
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with a molten center, served with vanilla ice cream.",
			Price:       9.99,
			Image:       "https://placehold.co/300x200?text=Chocolate+Lava+Cake+with+Vanilla+Ice+Cream",
			Category:    "desserts",
			Rating:      4.8,
		},
		{
			ID:          7,
			Name:        "Signature Cocktail",
			Description: "Our house special blend of premium spirits with fresh fruit juices and herbs.",
			Price:       13.99,
			Image:       "https://placehold.co/300x200?text=Signature+Cocktail+Fresh+Fruits",
			Category:    "drinks",
			Rating:      4.7,
		},
		{
			ID:          8,
			Name:        "Craft Beer Selection",
			Description: "Rotating selection of local craft beers. Ask your server for today's options.",
			Price:       7.99,
			Image:       "https://placehold.co/300x200?text=Craft+Beer+Selection+Bangladesh",
			Category:    "drinks",
			Rating:      4.5,
		},
	}
	if err := db.Create(&menuItems).Error; err != nil {
		return err
	}

	galleryItems := []models.GalleryItem{
		{
			ID:       1,
			Image:    "https://placehold.co/600x400?text=Signature+Pasta+Bangladesh+Style",
			Title:    "Signature Pasta",
			Category: "dishes",
		},
		{
			ID:       2,
			Image:    "https://placehold.co/600x400?text=Grilled+Seafood+Platter+Fresh+Catch",
			Title:    "Grilled Seafood Platter",
			Category: "dishes",
		},
		{
			ID:       3,
			Image:    "https://placehold.co/600x400?text=Main+Dining+Area+Dhaka+Restaurant",
			Title:    "Main Dining Area",
			Category: "ambience",
		},
		{
			ID:       4,
			Image:    "https://placehold.co/600x400?text=Private+Dining+Room+Cozy+Ambience",
			Title:    "Private Dining Room",
			Category: "ambience",
		},
		{
			ID:       5,
			Image:    "https://placehold.co/600x400?text=Wine+Tasting+Event+Dhaka",
			Title:    "Wine Tasting Event",
			Category: "events",
		},
		{
			ID:       6,
			Image:    "https://placehold.co/600x400?text=Chef's+Special+Night+Event",
			Title:    "Chef's Special Night",
			Category: "events",
		},
	}
	if err := db.Create(&galleryItems).Error; err != nil {
		return err
	}

	reviews := []models.Review{
		{
			ID:      1,
			Name:    "Sarah Johnson",
			Rating:  5,
			Date:    "2023-08-15",
			Comment: "The food was absolutely amazing! I tried the beef tenderloin and it was cooked to perfection. The service was also outstanding. Will definitely be back!",
			Avatar:  "https://placehold.co/100x100?text=SJ",
		},
		{
			ID:      2,
			Name:    "Michael Brown",
			Rating:  4,
			Date:    "2023-08-10",
			Comment: "Great atmosphere and delicious food. The calamari appetizer was especially good. Only giving 4 stars because the wait time was a bit long, but it was a Saturday night.",
			Avatar:  "https://placehold.co/100x100?text=MB",
		},
		{
			ID:      3,
			Name:    "Emily Davis",
			Rating:  5,
			Date:    "2023-07-28",
			Comment: "We celebrated our anniversary here and it was perfect. The staff made us feel special and the chocolate lava cake was to die for!",
			Avatar:  "https://placehold.co/100x100?text=ED",
		},
	}
	return db.Create(&reviews).Error
}

package catalog

import "storefront-service/internal/domain"

func ptrTo[T any](v T) *T { return &v }

// SeedCategories is the fixed category registry in display order.
func SeedCategories() []domain.Category {
	return []domain.Category{
		{Slug: domain.CategoryHairCare, Title: "Hair Care", Blurb: "Nourish your hair naturally."},
		{Slug: domain.CategoryHealthWellness, Title: "Health & Wellness", Blurb: "Feel your best, every day."},
		{Slug: domain.CategorySkincareBody, Title: "Skincare & Body", Blurb: "Glow with gentle skincare."},
		{Slug: domain.CategoryAccessories, Title: "Accessories", Blurb: "Complete your routine."},
		{Slug: domain.CategoryBundles, Title: "Bundles", Blurb: "Curated value sets."},
	}
}

// SeedEntries is the production catalog. Entries are static; the service
// never mutates them after NewCatalog.
func SeedEntries() []domain.CatalogEntry {
	return []domain.CatalogEntry{
		{
			Kind:           domain.KindSingle,
			ID:             "hc1",
			Slug:           "signature-crown-curl-oil",
			Name:           "Signature Hair Oil",
			SizeLabel:      ptrTo("120 ml"),
			Price:          1499,
			CompareAtPrice: ptrTo(int64(1999)),
			Category:       domain.CategoryHairCare,
			Image:          "/images/oil1.png",
			Gallery: []domain.GalleryImage{
				{Src: "/images/oil1.png", Alt: "Signature Hair Oil bottle"},
				{Src: "/images/oil2.jpg", Alt: "Amla benefits"},
			},
			Benefits: []string{
				"Promotes growth and reduces hair fall",
				"Nourishes scalp & strengthens follicles",
				"Adds natural shine and softness",
				"Reduces dandruff and irritation",
				"Helps prevent split ends and breakage",
			},
			Bundles: []domain.BundleTier{
				{Quantity: 1, Price: 1499, CompareAtPrice: ptrTo(int64(1999)), Savings: ptrTo("25% OFF")},
				{Quantity: 2, Price: 2699, CompareAtPrice: ptrTo(int64(3998)), Badge: ptrTo("Most Popular"), Savings: ptrTo("33% OFF")},
				{Quantity: 3, Price: 3599, CompareAtPrice: ptrTo(int64(5997)), Badge: ptrTo("Best Value"), Savings: ptrTo("40% OFF")},
			},
			Rating:       ptrTo(4.8),
			ReviewsCount: ptrTo(128),
			Badges:       []string{"Bestseller"},
			Description:  "Premium blend of organic oils crafted to transform hair health with deep nourishment, growth, and shine.",
			KeyFeatures: []string{
				"100% organic and natural ingredients",
				"Suitable for all hair types",
				"Free from harmful chemicals and parabens",
				"Clinically tested for safety",
			},
			IdealFor: []string{
				"Hair growth and thickness",
				"Dry and damaged hair",
				"Hair fall prevention",
			},
			HowToUse: []domain.HowToUseStep{
				{Title: "Application", Text: "Massage into scalp 5-10 minutes in circular motions."},
				{Title: "Distribution", Text: "Work through lengths; comb to distribute evenly."},
				{Title: "Duration", Text: "Leave 2+ hours or overnight; 2-3x per week."},
				{Title: "Wash", Text: "Use mild, sulfate-free shampoo; rinse twice if needed."},
			},
			Ingredients: []string{
				"Coconut Oil", "Argan Oil", "Jojoba Oil", "Almond Oil", "Castor Oil",
				"Rosemary Extract", "Aloe Vera", "Amla", "Brahmi", "Vitamin E",
			},
			FAQs: []domain.FAQ{
				{Question: "How soon will I see results?", Answer: "Most users notice improvements in texture and reduced hair fall within 2-3 weeks; consistent use for 2-3 months is recommended for growth."},
				{Question: "Is this suitable for all hair types?", Answer: "Yes, the lightweight formula works for dry, oily, normal, curly, and straight hair."},
			},
			Stock: 19,
		},
		{
			Kind:           domain.KindSingle,
			ID:             "sb1",
			Slug:           "loofah-organic-soap",
			Name:           "Loofah Organic Soap",
			SizeLabel:      ptrTo("100 g"),
			Price:          599,
			CompareAtPrice: ptrTo(int64(799)),
			Category:       domain.CategorySkincareBody,
			Image:          "/images/loofah-soap-1.png",
			Benefits: []string{
				"Calms and relaxes senses",
				"Gentle enough for sensitive skin",
				"Moisturizes without clogging pores",
				"Natural antibacterial properties",
				"Eco-friendly and biodegradable",
			},
			Bundles: []domain.BundleTier{
				{Quantity: 1, Price: 599, CompareAtPrice: ptrTo(int64(799)), Savings: ptrTo("25% OFF")},
				{Quantity: 3, Price: 1599, CompareAtPrice: ptrTo(int64(2397)), Badge: ptrTo("Most Popular"), Savings: ptrTo("33% OFF")},
				{Quantity: 5, Price: 2499, CompareAtPrice: ptrTo(int64(3995)), Badge: ptrTo("Best Value"), Savings: ptrTo("38% OFF")},
			},
			Rating:       ptrTo(4.9),
			ReviewsCount: ptrTo(203),
			Badges:       []string{"Bestseller", "Eco-Friendly"},
			Description:  "Handcrafted cold-process soap with pure lavender essential oil and organic oils for a calming bathing experience.",
			KeyFeatures: []string{
				"Handcrafted cold-process method",
				"Pure lavender essential oil",
				"Eco-friendly and biodegradable",
			},
			HowToUse: []domain.HowToUseStep{
				{Title: "Wet & Lather", Text: "Wet soap and hands, work into rich lather."},
				{Title: "Cleanse", Text: "Massage over body in circular motions."},
				{Title: "Rinse", Text: "Rinse thoroughly with warm water."},
			},
			Ingredients: []string{
				"Organic Olive Oil", "Coconut Oil", "Shea Butter", "Castor Oil",
				"Lavender Essential Oil", "Dried Lavender Buds", "French Pink Clay",
			},
			Stock: 120,
		},
		{
			Kind:           domain.KindSingle,
			ID:             "hw2",
			Slug:           "moringa-superfood-powder",
			Name:           "Moringa Leaf Superfood Powder",
			SizeLabel:      ptrTo("200 g"),
			Price:          799,
			CompareAtPrice: ptrTo(int64(999)),
			Category:       domain.CategoryHealthWellness,
			Image:          "/images/moringa-powder.png",
			Benefits: []string{
				"Rich in vitamins and antioxidants",
				"Supports natural energy levels",
				"Aids digestion and gut health",
			},
			Bundles: []domain.BundleTier{
				{Quantity: 1, Price: 799, CompareAtPrice: ptrTo(int64(999)), Savings: ptrTo("20% OFF")},
				{Quantity: 2, Price: 1499, CompareAtPrice: ptrTo(int64(1998)), Badge: ptrTo("Most Popular"), Savings: ptrTo("25% OFF")},
				{Quantity: 4, Price: 2799, CompareAtPrice: ptrTo(int64(3996)), Badge: ptrTo("Best Value"), Savings: ptrTo("30% OFF")},
			},
			Rating:       ptrTo(4.7),
			ReviewsCount: ptrTo(64),
			Description:  "Pure shade-dried moringa leaf powder, a nutrient-dense superfood for smoothies, teas, and everyday wellness.",
			HowToUse: []domain.HowToUseStep{
				{Title: "Mix", Text: "Stir one teaspoon into water, juice, or a smoothie."},
				{Title: "Daily", Text: "Take once daily, ideally with a meal."},
			},
			Ingredients: []string{"Moringa Oleifera Leaf Powder"},
			Stock:       60,
		},
		{
			Kind:                 domain.KindSingle,
			ID:                   "ac1",
			Slug:                 "silk-scrunchies-set",
			Name:                 "Pure Silk Scrunchies",
			Colors:               []string{"Black", "Beige", "Blush", "White", "Grey"},
			AllowDuplicateColors: true,
			Price:                899,
			CompareAtPrice:       ptrTo(int64(1199)),
			Category:             domain.CategoryAccessories,
			Image:                "/images/scrunchies-1.png",
			Bundles: []domain.BundleTier{
				{Quantity: 1, Price: 899, CompareAtPrice: ptrTo(int64(1199)), Savings: ptrTo("25% OFF")},
				{Quantity: 2, Price: 1599, CompareAtPrice: ptrTo(int64(2398)), Badge: ptrTo("Most Popular"), Savings: ptrTo("33% OFF")},
				{Quantity: 3, Price: 2199, CompareAtPrice: ptrTo(int64(3597)), Badge: ptrTo("Best Value"), Savings: ptrTo("39% OFF")},
			},
			Rating:       ptrTo(4.8),
			ReviewsCount: ptrTo(91),
			Badges:       []string{"Hair-Safe", "Luxury"},
			Description:  "Luxury 100% mulberry silk scrunchies that treat your hair with care while adding elegant style to any look.",
			Benefits: []string{
				"Prevents creases and breakage",
				"Gentle on fine and fragile hair",
			},
			Ingredients: []string{"100% Mulberry Silk", "Elastic Core"},
			Stock:       15,
		},
		{
			Kind:           domain.KindSingle,
			ID:             "ac2",
			Slug:           "neem-wooden-comb",
			Name:           "Neem Wood Wide-Tooth Comb",
			Price:          449,
			CompareAtPrice: ptrTo(int64(599)),
			Category:       domain.CategoryAccessories,
			Image:          "/images/wooden-comb-main.jpg",
			Bundles: []domain.BundleTier{
				{Quantity: 1, Price: 449, CompareAtPrice: ptrTo(int64(599)), Savings: ptrTo("25% OFF")},
				{Quantity: 2, Price: 799, CompareAtPrice: ptrTo(int64(1198)), Badge: ptrTo("Best Value"), Savings: ptrTo("33% OFF")},
			},
			Rating:       ptrTo(4.6),
			ReviewsCount: ptrTo(55),
			Badges:       []string{"Anti-static", "Scalp Health"},
			Description:  "Handcrafted wide-tooth comb from sustainable neem wood, designed for gentle detangling and scalp health.",
			Benefits: []string{
				"Reduces static and frizz",
				"Stimulates the scalp while detangling",
			},
			Ingredients: []string{"Sustainable Neem Wood"},
			Stock:       75,
		},
		{
			Kind:           domain.KindKit,
			ID:             "kit-growth-duo",
			Slug:           "growth-duo-oil-comb",
			Name:           "Growth Duo: Hair Oil + Neem Comb",
			Category:       domain.CategoryBundles,
			Image:          "/images/bundles/growth-duo-main.jpg",
			Description:    "Nourish + detangle: bestseller oil paired with the anti-static neem comb.",
			Price:          1799,
			CompareAtPrice: ptrTo(int64(1999)),
			Items: []domain.KitItemRef{
				{ProductID: "hc1", Quantity: 1},
				{ProductID: "ac2", Quantity: 1},
			},
		},
		{
			Kind:           domain.KindKit,
			ID:             "kit-hair-care-essentials",
			Slug:           "hair-care-essentials-bundle",
			Name:           "Hair Care Essentials Bundle",
			Category:       domain.CategoryBundles,
			Image:          "/images/bundles/hair-care-essentials-main.jpg",
			Badges:         []string{"Ultimate Value", "Complete Routine", "Customer Favorite"},
			Rating:         ptrTo(4.9),
			ReviewsCount:   ptrTo(87),
			Description:    "The complete hair care trifecta: nourishing oil, antibacterial neem comb, and silk scrunchies to protect your style.",
			Price:          2299,
			CompareAtPrice: ptrTo(int64(3297)),
			Items: []domain.KitItemRef{
				{ProductID: "hc1", Quantity: 1},
				{ProductID: "ac1", Quantity: 2},
				{ProductID: "ac2", Quantity: 1},
			},
		},
	}
}

// NewSeedCatalog builds the catalog from the seed data.
func NewSeedCatalog() *Catalog {
	return NewCatalog(SeedEntries(), SeedCategories())
}

package account

// Seed loads the demo catalog used by a fresh storefront.
func Seed(s *Store) {
	for _, na := range demoCatalog {
		s.Create(na)
	}
}

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func boolp(v bool) *bool { return &v }

func decp(v Decimal) *Decimal { return &v }

var demoCatalog = []AccountNew{
	{
		SellerID:      1,
		Platform:      "instagram",
		AccountHandle: "@lifestyle_guru",
		Followers:     intp(125000),
		Engagement:    decp(3.2),
		Price:         2500.00,
		Description:   "Premium lifestyle account with high engagement rate. Niche focused on luxury travel and fashion.",
		Category:      "lifestyle",
		Verified:      boolp(true),
		Age:           intp(24),
		Status:        Available,
		SellerName:    "Sarah Martinez",
		SellerRating:  decp(4.8),
		SellerReviews: intp(127),
	},
	{
		SellerID:      2,
		Platform:      "twitter",
		AccountHandle: "@techreviews_pro",
		Followers:     intp(89000),
		Engagement:    decp(4.1),
		Price:         1800.00,
		Description:   "Tech review account with engaged audience. Great for tech product promotions.",
		Category:      "technology",
		Verified:      boolp(false),
		Age:           intp(18),
		Status:        Available,
		SellerName:    "Alex Chen",
		SellerRating:  decp(4.6),
		SellerReviews: intp(89),
	},
	{
		SellerID:      3,
		Platform:      "tiktok",
		AccountHandle: "@dance_moves",
		Followers:     intp(340000),
		Engagement:    decp(7.8),
		Price:         4200.00,
		Description:   "Viral dance content creator with young demographic. Perfect for fashion and music brands.",
		Category:      "entertainment",
		Verified:      boolp(true),
		Age:           intp(12),
		Status:        Available,
		SellerName:    "Maya Johnson",
		SellerRating:  decp(4.9),
		SellerReviews: intp(203),
	},
	{
		SellerID:      4,
		Platform:      "youtube",
		AccountHandle: "CookingMaster",
		Followers:     intp(78000),
		Engagement:    decp(5.2),
		Price:         3100.00,
		Description:   "Food and cooking channel with loyal subscriber base. Ideal for kitchen appliance and food brands.",
		Category:      "food",
		Verified:      boolp(false),
		Age:           intp(36),
		Status:        Available,
		SellerName:    "Roberto Silva",
		SellerRating:  decp(4.7),
		SellerReviews: intp(156),
	},
	{
		SellerID:      5,
		Platform:      "facebook",
		AccountHandle: "FitnessJourney",
		Followers:     intp(156000),
		Engagement:    decp(2.9),
		Price:         2200.00,
		Description:   "Fitness and wellness page with health-conscious audience. Great for supplement and gym equipment brands.",
		Category:      "fitness",
		Verified:      boolp(true),
		Age:           intp(28),
		Status:        Available,
		SellerName:    "Emma Thompson",
		SellerRating:  decp(4.5),
		SellerReviews: intp(92),
	},
	{
		SellerID:      6,
		Platform:      "instagram",
		AccountHandle: "@gaming_streams",
		Followers:     intp(67000),
		Engagement:    decp(6.4),
		Price:         1500.00,
		Description:   "Gaming content creator specializing in FPS games. Strong male 18-25 demographic.",
		Category:      "gaming",
		Verified:      boolp(false),
		Age:           intp(15),
		Status:        Available,
		SellerName:    "Tyler Brooks",
		SellerRating:  decp(4.4),
		SellerReviews: intp(67),
	},
}

package notes

import "time"

// Samples returns a small set of example notes dated relative to now.
func Samples(now time.Time) []Note {
	ago := func(days int) time.Time { return now.AddDate(0, 0, -days) }
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	list := []Note{
		{CreatedAt: ago(1), Category: CategoryLike, Title: "Morning Coffee Ritual", Content: "Flat white with oat milk"},
		{CreatedAt: ago(5), Category: CategoryLike, Title: "Lo-fi Jazz Sessions", Content: "Perfect for coding"},
		{CreatedAt: ago(10), Category: CategoryLike, Title: "Kyoto in Spring", Content: "Philosopher's Path during sakura season, matcha and wagashi halfway through."},
		{CreatedAt: ago(2), Category: CategoryDislike, Title: "Humid Summer Days", Content: "Makes them feel sluggish"},
		{CreatedAt: ago(7), Category: CategoryDislike, Title: "Overly Spicy Food", Content: "Can't taste the flavors"},
		{CreatedAt: ago(3), Category: CategoryHobby, Title: "Street Photography", Content: "Candid moments in Tokyo"},
		{CreatedAt: ago(8), Category: CategoryHobby, Title: "Growing Herbs", Content: "Basil and mint on the balcony"},
		{CreatedAt: ago(15), Category: CategoryHobby, Title: "Sci-fi Novels", Content: "Currently reading Foundation"},
		{CreatedAt: ago(20), Category: CategoryAnniversary, Title: "Wedding Day", AnniversaryDate: date(2020, 6, 15), Annual: true},
		{CreatedAt: ago(4), Category: CategoryAnniversary, Title: "App Launch", Content: "First version went live", AnniversaryDate: date(2024, 4, 1), Annual: true},
		{CreatedAt: ago(6), Category: CategoryFamily, Title: "Sunday Dinners", Content: "Grandma's curry recipe"},
		{CreatedAt: ago(12), Category: CategorySchool, Title: "Study Group", Content: "Library, Thursdays after class"},
		{CreatedAt: ago(9), Category: CategoryWork, Title: "Code Reviews", Content: "Prefers small, focused changes"},
	}
	for i := range list {
		list[i].ID = newID()
	}
	return list
}

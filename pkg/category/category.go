package category

// Category is one entry of the fixed expense category set. The set is closed:
// users cannot add or remove categories, so the registry lives in code rather
// than in the database.
type Category struct {
	Name        string // canonical label, used as the storage key
	EnglishName string
	Icon        string // lucide icon name, consumed by the frontend
	Color       string // UI color class
	ChartColor  string // hex color for chart slices and bars
	Position    int
}

var registry = []Category{
	{Name: "食費", EnglishName: "Food", Icon: "utensils", Color: "bg-orange-500", ChartColor: "#f97316", Position: 1},
	{Name: "日用品", EnglishName: "Daily Goods", Icon: "shopping-basket", Color: "bg-green-500", ChartColor: "#22c55e", Position: 2},
	{Name: "交通費", EnglishName: "Transport", Icon: "train", Color: "bg-blue-500", ChartColor: "#3b82f6", Position: 3},
	{Name: "娯楽", EnglishName: "Entertainment", Icon: "gamepad-2", Color: "bg-purple-500", ChartColor: "#a855f7", Position: 4},
	{Name: "衣服・美容", EnglishName: "Clothing & Beauty", Icon: "shirt", Color: "bg-pink-500", ChartColor: "#ec4899", Position: 5},
	{Name: "医療・健康", EnglishName: "Medical & Health", Icon: "heart-pulse", Color: "bg-red-500", ChartColor: "#ef4444", Position: 6},
	{Name: "住居費", EnglishName: "Housing", Icon: "home", Color: "bg-yellow-500", ChartColor: "#eab308", Position: 7},
	{Name: "通信費", EnglishName: "Communications", Icon: "smartphone", Color: "bg-cyan-500", ChartColor: "#06b6d4", Position: 8},
	{Name: "その他", EnglishName: "Other", Icon: "more-horizontal", Color: "bg-gray-500", ChartColor: "#6b7280", Position: 9},
}

var byName = func() map[string]Category {
	m := make(map[string]Category, len(registry))
	for _, c := range registry {
		m[c.Name] = c
	}
	return m
}()

// All returns every category in display order.
func All() []Category {
	out := make([]Category, len(registry))
	copy(out, registry)
	return out
}

// ByName resolves a category by its canonical name.
func ByName(name string) (Category, bool) {
	c, ok := byName[name]
	return c, ok
}
